package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"chatrelay/pkg/providers"
)

// responsesPath is the endpoint for the Responses API, relative to the
// provider base URL.
const responsesPath = "/v1/responses"

// maxErrorBodySize limits how much of an error response body is read for
// inclusion in error messages.
const maxErrorBodySize = 8 * 1024

// Client is a provider adapter for OpenAI-compatible Responses APIs.
type Client struct {
	// config contains the provider configuration
	config providers.Config

	// client is the HTTP client with connection pooling
	client *http.Client
}

// NewClient creates a new Responses API client with connection pooling.
//
// The configured timeout applies to establishing the request and receiving
// response headers only. It is deliberately not set as http.Client.Timeout,
// which would also bound reading the response body and cut off long-lived
// streams.
func NewClient(cfg providers.Config) *Client {
	transport := &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: cfg.Timeout,
		ForceAttemptHTTP2:     true,
	}

	return &Client{
		config: cfg,
		client: &http.Client{Transport: transport},
	}
}

// Stream sends a streaming responses request and returns the live response
// body. The caller owns the returned stream and must close it.
func (c *Client) Stream(ctx context.Context, req *providers.ResponsesRequest) (io.ReadCloser, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &providers.ProviderError{
			Provider: c.config.Name,
			Message:  "failed to marshal request",
			Cause:    err,
		}
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + responsesPath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &providers.ProviderError{
			Provider: c.config.Name,
			Message:  "failed to create request",
			Cause:    err,
		}
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	slog.DebugContext(ctx, "sending request to provider",
		"provider", c.config.Name,
		"url", url,
		"model", req.Model,
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &providers.ProviderError{
			Provider: c.config.Name,
			Message:  "request failed",
			Cause:    err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		resp.Body.Close()

		return nil, &providers.ProviderError{
			Provider:   c.config.Name,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %s", strings.TrimSpace(string(errBody))),
		}
	}

	return resp.Body, nil
}

// GetName returns the provider's configured name.
func (c *Client) GetName() string {
	return c.config.Name
}

// Close closes idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
