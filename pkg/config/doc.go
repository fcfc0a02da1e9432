// Package config provides configuration management for chatrelay.
//
// Configuration is loaded from a YAML file, then defaults are applied,
// then environment variable overrides, then the result is validated.
// Environment variables follow the naming convention CHATRELAY_SECTION_FIELD:
//
//   - CHATRELAY_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - CHATRELAY_PROVIDER_API_KEY overrides provider.api_key
//   - CHATRELAY_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// A minimal configuration file:
//
//	server:
//	  listen_address: "127.0.0.1:8080"
//
//	static:
//	  dir: "./public"
//
//	provider:
//	  base_url: "https://ai-gateway.vercel.sh"
//	  api_key: "${AI_GATEWAY_API_KEY}"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
//
// The chat model identifier and the default system prompt are deliberately
// not configurable; they are compile-time constants in the relay package.
package config
