package config

import "time"

// Config is the root configuration structure for chatrelay.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// Static contains configuration for the static asset collaborator.
	Static StaticConfig `yaml:"static"`

	// Provider contains configuration for the inference provider.
	Provider ProviderConfig `yaml:"provider"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. The default is 0 (no timeout): responses are long-lived
	// event streams and a write timeout would cut them off mid-stream.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// to complete during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes is the maximum size of request headers in bytes.
	// Default: 1MB
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

// StaticConfig contains configuration for the static asset collaborator.
type StaticConfig struct {
	// Dir is the directory the frontend assets are served from.
	// Default: "./public"
	Dir string `yaml:"dir"`
}

// ProviderConfig contains configuration for the inference provider.
type ProviderConfig struct {
	// BaseURL is the base URL of the provider's API.
	// Default: "https://ai-gateway.vercel.sh"
	BaseURL string `yaml:"base_url"`

	// APIKey is the API key used for bearer authentication.
	// Required.
	APIKey string `yaml:"api_key"`

	// Timeout is the timeout for establishing the provider request.
	// It does not bound the lifetime of the returned stream.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// Gateway carries optional gateway routing options forwarded to the
	// provider unmodified. Empty by default.
	Gateway GatewayConfig `yaml:"gateway"`
}

// GatewayConfig is an optional pass-through hook for provider-side gateway
// routing. The relay never populates it; it is forwarded as-is when set.
type GatewayConfig struct {
	// Order is the preferred ordering of upstream providers.
	Order []string `yaml:"order" json:"order,omitempty"`

	// Only restricts routing to the named upstream providers.
	Only []string `yaml:"only" json:"only,omitempty"`
}

// IsZero reports whether no gateway options are set.
func (g GatewayConfig) IsZero() bool {
	return len(g.Order) == 0 && len(g.Only) == 0
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format ("json", "text").
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path the metrics endpoint is mounted at.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus metric namespace.
	// Default: "chatrelay"
	Namespace string `yaml:"namespace"`
}
