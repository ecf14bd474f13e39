package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/annakobylinska4-wq/life-game/internal/config"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider talks to the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   config.ModelConfig
	client  *http.Client
}

// NewOpenAIProvider builds the adapter. baseURL overrides the public API
// endpoint, mainly for tests.
func NewOpenAIProvider(apiKey, baseURL string, model config.ModelConfig) *OpenAIProvider {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "OpenAI" }

// Available implements Provider.
func (p *OpenAIProvider) Available() bool { return p.apiKey != "" }

type oaMessage struct {
	Role       string       `json:"role"`
	Content    string       `json:"content"`
	ToolCalls  []oaToolCall `json:"tool_calls,omitempty"`
	ToolCallID string       `json:"tool_call_id,omitempty"`
}

type oaToolCall struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Function oaFunction `json:"function"`
}

type oaFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Complete implements Provider.
func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	msgs := make([]oaMessage, 0, len(req.Messages)+len(req.ToolOutcomes)+2)
	msgs = append(msgs, oaMessage{Role: "system", Content: req.System})
	for _, m := range req.Messages {
		msgs = append(msgs, oaMessage{Role: m.Role, Content: m.Content})
	}
	if len(req.ToolOutcomes) > 0 {
		// Replay the assistant's tool calls, then attach one tool message
		// per outcome, the way the completions API expects the follow-up.
		calls := make([]oaToolCall, 0, len(req.ToolOutcomes))
		for _, o := range req.ToolOutcomes {
			args := string(o.Call.Args)
			if args == "" {
				args = "{}"
			}
			calls = append(calls, oaToolCall{
				ID:   o.Call.ID,
				Type: "function",
				Function: oaFunction{
					Name:      o.Call.Name,
					Arguments: args,
				},
			})
		}
		msgs = append(msgs, oaMessage{Role: "assistant", ToolCalls: calls})
		for _, o := range req.ToolOutcomes {
			msgs = append(msgs, oaMessage{
				Role:       "tool",
				Content:    o.Content,
				ToolCallID: o.Call.ID,
			})
		}
	}

	body := map[string]any{
		"model":       p.model.Model,
		"max_tokens":  p.model.MaxTokens,
		"temperature": p.model.Temperature,
		"messages":    msgs,
	}
	if len(req.Tools) > 0 {
		tools := make([]map[string]any, 0, len(req.Tools))
		for _, t := range req.Tools {
			tools = append(tools, map[string]any{
				"type": "function",
				"function": map[string]any{
					"name":        t.Name,
					"description": t.Description,
					"parameters":  t.Schema,
				},
			})
		}
		body["tools"] = tools
		body["tool_choice"] = "auto"
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("openai: marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("openai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Choices []struct {
			Message oaMessage `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return CompletionResponse{}, fmt.Errorf("openai: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return CompletionResponse{}, fmt.Errorf("openai: status %d: %s", resp.StatusCode, msg)
	}
	if len(parsed.Choices) == 0 {
		return CompletionResponse{}, fmt.Errorf("openai: empty choices")
	}

	out := CompletionResponse{Text: parsed.Choices[0].Message.Content}
	for _, c := range parsed.Choices[0].Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:   c.ID,
			Name: c.Function.Name,
			Args: json.RawMessage(c.Function.Arguments),
		})
	}
	return out, nil
}
