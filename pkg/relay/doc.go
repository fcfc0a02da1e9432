// Package relay implements the HTTP edge surface: request routing and the
// chat relay that shapes conversation payloads and streams provider
// responses back to the caller.
//
// The relay performs no buffering and no validation beyond checking that
// the messages field is a list. Each request is fully isolated; failures
// are terminal per-request and nothing is fatal to the process.
package relay
