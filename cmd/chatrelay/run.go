package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"chatrelay/pkg/config"
	"chatrelay/pkg/providers"
	"chatrelay/pkg/providers/openai"
	"chatrelay/pkg/server"
	"chatrelay/pkg/telemetry/logging"
	"chatrelay/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the chatrelay server",
	Long: `Start the chatrelay server with the specified configuration.

The server serves the static frontend, relays POST /api/chat to the
inference provider, and streams the response back to the caller.

Examples:
  # Start with default config
  chatrelay run

  # Start with custom config
  chatrelay run --config /etc/chatrelay/config.yaml

  # Override listen address
  chatrelay run --listen 0.0.0.0:8080

  # Validate config without starting server
  chatrelay run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	// Initialize logging based on config
	if err := logging.Setup(cfg.Telemetry.Logging); err != nil {
		return err
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	// Create provider adapter
	provider := openai.NewClient(providers.Config{
		Name:    "gateway",
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.Provider.Timeout,
	})
	defer provider.Close()

	// Create metrics collector
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	// Start server (blocks until shutdown)
	srv := server.NewServer(cfg, provider, collector)
	return srv.Start(context.Background())
}
