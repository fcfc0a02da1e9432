// Package providers defines the abstraction for hosted LLM inference
// providers consumed by the relay.
//
// A provider accepts a Responses-style payload and returns the raw byte
// stream of its HTTP response for verbatim pass-through. The relay never
// inspects, reframes, or buffers the stream; SSE framing is entirely the
// provider's responsibility.
package providers
