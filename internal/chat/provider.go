// Package chat is the NPC conversation layer: per-location personas, an
// LLM provider abstraction with tool calling, and the chat endpoint.
package chat

import (
	"context"
	"encoding/json"
)

// Message is one turn of a conversation, in the neutral role convention
// ("user" / "assistant"); adapters translate to each provider's wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolDef describes one callable game action offered to the model.
type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"input_schema"`
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// ToolOutcome pairs a requested call with the result of executing it, for
// the second-phase request that lets the model narrate what happened.
type ToolOutcome struct {
	Call    ToolCall `json:"call"`
	Content string   `json:"content"`
}

// CompletionRequest is a provider-neutral chat request. When ToolOutcomes is
// non-empty the request is the follow-up phase: adapters replay the
// assistant's tool calls and attach each outcome in their own wire format.
type CompletionRequest struct {
	System       string        `json:"system"`
	Messages     []Message     `json:"messages"`
	Tools        []ToolDef     `json:"tools,omitempty"`
	ToolOutcomes []ToolOutcome `json:"tool_outcomes,omitempty"`
}

// CompletionResponse is what a provider returns: the assistant text and any
// tool calls the model wants executed.
type CompletionResponse struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Provider is the pluggable LLM backend.
type Provider interface {
	// Name is the display name used in player-facing error messages.
	Name() string
	// Available reports whether the provider is configured (has its key).
	Available() bool
	// Complete sends one request and returns the model's reply.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
