package providers

import (
	"context"
	"io"
)

// Provider is the interface the relay consumes to invoke hosted inference.
//
// Implementations must respect context cancellation while establishing the
// request. Once the stream is returned, ownership passes to the caller:
// the caller must close it, and transport-level cancellation behavior is
// governed by the request context.
//
// Example usage:
//
//	stream, err := provider.Stream(ctx, &providers.ResponsesRequest{
//	    Model:        "openai/gpt-5-nano",
//	    Instructions: "You are a helpful assistant.",
//	    Input:        []providers.InputMessage{{Role: "user", Content: "Hello!"}},
//	    Stream:       true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//	io.Copy(w, stream)
type Provider interface {
	// Stream sends a streaming responses request to the provider and returns
	// the live, unparsed body of the provider's HTTP response.
	//
	// Returns an error if the request cannot be established or the provider
	// answers with a non-2xx status. Errors occurring after the stream has
	// been handed over surface as read errors on the returned stream.
	Stream(ctx context.Context, req *ResponsesRequest) (io.ReadCloser, error)

	// GetName returns the provider's configured name (e.g., "gateway").
	GetName() string

	// Close closes the provider and releases any resources (idle HTTP
	// connections, etc.). After calling Close, the provider should not
	// be used.
	Close() error
}
