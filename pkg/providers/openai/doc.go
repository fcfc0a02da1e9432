// Package openai implements the provider adapter for OpenAI-compatible
// Responses APIs, including gateway-fronted deployments.
//
// The adapter POSTs the responses payload with bearer authentication and
// hands back the raw SSE body without parsing it.
package openai
