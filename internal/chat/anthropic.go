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

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

// AnthropicProvider talks to the Anthropic messages API.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	model   config.ModelConfig
	client  *http.Client
}

// NewAnthropicProvider builds the adapter. baseURL overrides the public API
// endpoint, mainly for tests.
func NewAnthropicProvider(apiKey, baseURL string, model config.ModelConfig) *AnthropicProvider {
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return "Anthropic" }

// Available implements Provider.
func (p *AnthropicProvider) Available() bool { return p.apiKey != "" }

type anBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

type anMessage struct {
	Role    string    `json:"role"`
	Content []anBlock `json:"content"`
}

// Complete implements Provider.
func (p *AnthropicProvider) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	msgs := make([]anMessage, 0, len(req.Messages)+2)
	for _, m := range req.Messages {
		msgs = append(msgs, anMessage{
			Role:    m.Role,
			Content: []anBlock{{Type: "text", Text: m.Content}},
		})
	}
	if len(req.ToolOutcomes) > 0 {
		// The follow-up turn: the assistant's tool_use blocks, then a user
		// message carrying one tool_result block per outcome.
		uses := make([]anBlock, 0, len(req.ToolOutcomes))
		results := make([]anBlock, 0, len(req.ToolOutcomes))
		for _, o := range req.ToolOutcomes {
			input := o.Call.Args
			if len(input) == 0 {
				input = json.RawMessage("{}")
			}
			uses = append(uses, anBlock{
				Type:  "tool_use",
				ID:    o.Call.ID,
				Name:  o.Call.Name,
				Input: input,
			})
			results = append(results, anBlock{
				Type:      "tool_result",
				ToolUseID: o.Call.ID,
				Content:   o.Content,
			})
		}
		msgs = append(msgs, anMessage{Role: "assistant", Content: uses})
		msgs = append(msgs, anMessage{Role: "user", Content: results})
	}

	body := map[string]any{
		"model":       p.model.Model,
		"max_tokens":  p.model.MaxTokens,
		"temperature": p.model.Temperature,
		"system":      req.System,
		"messages":    msgs,
	}
	if len(req.Tools) > 0 {
		tools := make([]map[string]any, 0, len(req.Tools))
		for _, t := range req.Tools {
			tools = append(tools, map[string]any{
				"name":         t.Name,
				"description":  t.Description,
				"input_schema": t.Schema,
			})
		}
		body["tools"] = tools
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("anthropic: marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("anthropic: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("anthropic: %w", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Content []anBlock `json:"content"`
		Error   *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return CompletionResponse{}, fmt.Errorf("anthropic: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return CompletionResponse{}, fmt.Errorf("anthropic: status %d: %s", resp.StatusCode, msg)
	}

	var out CompletionResponse
	var text []string
	for _, b := range parsed.Content {
		switch b.Type {
		case "text":
			text = append(text, b.Text)
		case "tool_use":
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:   b.ID,
				Name: b.Name,
				Args: b.Input,
			})
		}
	}
	out.Text = strings.Join(text, "")
	return out, nil
}

// NewProvider builds the provider named by cfg, or nil for an unknown name.
// A provider with a missing key is still returned; Available reports that.
func NewProvider(cfg config.LLMConfig, openAIKey, anthropicKey, openAIBaseURL, anthropicBaseURL string) Provider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "openai":
		return NewOpenAIProvider(openAIKey, openAIBaseURL, cfg.OpenAI)
	case "anthropic":
		return NewAnthropicProvider(anthropicKey, anthropicBaseURL, cfg.Anthropic)
	}
	return nil
}
