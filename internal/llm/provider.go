package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every LLM-backed feature talks to.
// The lab agent, the lab tutor, and any future generator all go through
// Generate.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. For the lab agent this is the current
	// level's hidden instruction; for the tutor it is the fixed pedagogical
	// instruction.
	System string

	// Messages is the conversation history, oldest first. The final entry
	// is the current user turn.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. Nil for the
	// free-text conversational calls the lab makes.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema. Kebab-case.
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. With a Schema this is validated
	// JSON; without one it is the raw text wrapped as json.RawMessage.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Text returns the response content as a plain string. Conversational
// callers use this instead of touching the raw JSON.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
