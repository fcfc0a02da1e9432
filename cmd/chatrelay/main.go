// Chatrelay is a minimal HTTP edge service for a chat frontend.
//
// It serves the static frontend UI, relays chat conversations to a hosted
// LLM inference endpoint, and streams the provider's server-sent-events
// response back to the browser verbatim.
//
// Usage:
//
//	# Start server with default configuration
//	chatrelay run
//
//	# Start with custom configuration file
//	chatrelay run --config /path/to/config.yaml
//
//	# Show version information
//	chatrelay version
package main

func main() {
	Execute()
}
