package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "chatrelay",
	Short: "Chatrelay - streaming chat edge relay",
	Long: `Chatrelay is a minimal HTTP edge service that serves a chat frontend,
relays conversations to a hosted LLM inference endpoint, and streams the
response back as server-sent events.

It performs no buffering and holds no state; each request is shaped into
the provider's payload schema and the resulting byte stream is passed
through unmodified.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
}
