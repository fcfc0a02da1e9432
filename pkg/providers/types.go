package providers

import "time"

// Config contains the settings needed to construct a provider adapter.
type Config struct {
	// Name is the provider's identifier used in logs and errors.
	Name string

	// BaseURL is the base URL of the provider's API, without a trailing slash.
	BaseURL string

	// APIKey is the bearer token used for authentication.
	APIKey string

	// Timeout bounds establishing the request and receiving response
	// headers. It does not bound the lifetime of the returned stream.
	Timeout time.Duration
}

// ResponsesRequest is the payload shape the inference provider expects.
//
// Invariants maintained by the relay: Instructions is always a non-empty
// string, and Input never contains a system-role entry (system intent
// reaches the provider only through Instructions).
type ResponsesRequest struct {
	// Model is the model identifier (e.g., "openai/gpt-5-nano").
	Model string `json:"model"`

	// Instructions is the system-level directive guiding model behavior.
	Instructions string `json:"instructions"`

	// Input is the ordered non-system conversation context.
	Input []InputMessage `json:"input"`

	// Reasoning carries the reasoning effort hint.
	Reasoning *Reasoning `json:"reasoning,omitempty"`

	// Stream requests an SSE-framed streaming response.
	Stream bool `json:"stream"`

	// Gateway carries optional gateway routing options, forwarded as-is.
	// Nil by default.
	Gateway *GatewayOptions `json:"gateway,omitempty"`
}

// InputMessage is a single conversation turn in the provider's input format.
type InputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reasoning is the reasoning configuration block of a responses request.
type Reasoning struct {
	// Effort is the reasoning effort hint ("low", "medium", "high").
	Effort string `json:"effort"`
}

// GatewayOptions is an opaque pass-through extension point for providers
// fronted by an API gateway. The relay never populates it.
type GatewayOptions struct {
	// Order is the preferred ordering of upstream providers.
	Order []string `json:"order,omitempty"`

	// Only restricts routing to the named upstream providers.
	Only []string `json:"only,omitempty"`
}
