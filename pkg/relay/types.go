package relay

import "encoding/json"

const (
	// DefaultModel is the fixed model identifier sent with every
	// provider invocation.
	DefaultModel = "openai/gpt-5-nano"

	// DefaultInstructions is the system prompt used when the conversation
	// contains no system-role message.
	DefaultInstructions = "You are a helpful, friendly assistant. Provide concise and accurate responses."

	// ReasoningEffort is the reasoning effort hint sent with every
	// provider invocation.
	ReasoningEffort = "medium"
)

// ChatMessage is a single conversation turn supplied by the client.
// Any other fields present in the request body are dropped.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RoleSystem is the role carrying system intent. System messages are never
// forwarded as input; their content becomes the instructions field.
const RoleSystem = "system"

// chatRequest is the request body of POST /api/chat. Messages is kept raw
// so a missing or mis-shaped field degrades to an empty list instead of a
// decode error.
type chatRequest struct {
	Messages json.RawMessage `json:"messages"`
}

// errorBody is the generic JSON error envelope returned on failure. The
// underlying cause is never disclosed to the client.
type errorBody struct {
	Error string `json:"error"`
}
