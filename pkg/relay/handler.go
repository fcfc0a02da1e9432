package relay

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"chatrelay/pkg/providers"
	"chatrelay/pkg/telemetry/metrics"
)

// ChatHandler relays chat conversations to the inference provider and
// streams the provider's response body back verbatim.
type ChatHandler struct {
	provider providers.Provider
	gateway  *providers.GatewayOptions
	metrics  *metrics.RelayMetrics
}

// NewChatHandler creates a new chat relay handler. The gateway options are
// an optional pass-through hook and may be nil; metrics may be nil to
// disable recording.
func NewChatHandler(p providers.Provider, gateway *providers.GatewayOptions, rm *metrics.RelayMetrics) *ChatHandler {
	return &ChatHandler{
		provider: p,
		gateway:  gateway,
		metrics:  rm,
	}
}

// ServeHTTP implements http.Handler for POST /api/chat.
//
// The pipeline is linear with a single branch point: either the provider
// stream begins, or a complete error response is returned. All failures
// are terminal per-request; there are no retries.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, startTime, err)
		return
	}

	payload := BuildPayload(parseMessages(req.Messages))
	payload.Gateway = h.gateway

	stream, err := h.provider.Stream(ctx, payload)
	if err != nil {
		h.fail(w, r, startTime, err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	// Pass-through: bytes reach the client as the provider produces them,
	// with no transformation, re-framing, or inspection.
	written, err := io.Copy(&flushWriter{w: w}, stream)
	h.metrics.RecordStreamedBytes(written)

	if err != nil {
		// The stream already started; nothing can be surfaced to the
		// client beyond what the transport does on its own.
		slog.ErrorContext(ctx, "provider stream interrupted",
			"provider", h.provider.GetName(),
			"bytes_relayed", written,
			"error", err,
		)
	}

	h.metrics.RecordRequest(DefaultModel, metrics.OutcomeStream, time.Since(startTime))
}

// fail logs the error and writes the generic JSON error envelope. The
// underlying cause is never disclosed to the client.
func (h *ChatHandler) fail(w http.ResponseWriter, r *http.Request, startTime time.Time, err error) {
	slog.ErrorContext(r.Context(), "failed to process chat request",
		"provider", h.provider.GetName(),
		"error", err,
	)

	h.metrics.RecordRequest(DefaultModel, metrics.OutcomeError, time.Since(startTime))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorBody{Error: "Failed to process request"})
}

// parseMessages decodes the raw messages field into a message list. A
// missing or mis-shaped field degrades silently to an empty list; this is
// a defensive default, not a reported error.
func parseMessages(raw json.RawMessage) []ChatMessage {
	if len(raw) == 0 {
		return nil
	}

	var messages []ChatMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}

// BuildPayload shapes a conversation into the provider's expected schema.
//
// Instructions is the content of the first system-role message, or
// DefaultInstructions when none is present; it is always non-empty. Input
// is the subsequence of non-system messages with only role and content
// retained.
func BuildPayload(messages []ChatMessage) *providers.ResponsesRequest {
	instructions := DefaultInstructions
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			if msg.Content != "" {
				instructions = msg.Content
			}
			break
		}
	}

	input := make([]providers.InputMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			continue
		}
		input = append(input, providers.InputMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return &providers.ResponsesRequest{
		Model:        DefaultModel,
		Instructions: instructions,
		Input:        input,
		Reasoning:    &providers.Reasoning{Effort: ReasoningEffort},
		Stream:       true,
	}
}

// flushWriter flushes after every write so stream chunks are not held in
// the server's response buffer.
type flushWriter struct {
	w http.ResponseWriter
}

func (fw *flushWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if f, ok := fw.w.(http.Flusher); ok {
		f.Flush()
	}
	return n, err
}
