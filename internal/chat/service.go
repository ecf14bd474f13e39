package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/annakobylinska4-wq/life-game/internal/action"
	"github.com/annakobylinska4-wq/life-game/internal/life"
)

const invalidProviderMsg = "Error: Invalid LLM provider configuration."

// Service runs one chat exchange: persona prompt, the model call, any tool
// calls the model makes, and the conversation history update. Provider
// problems come back as the NPC's reply rather than an error; the endpoint
// never turns a misconfigured key into a 5xx.
type Service struct {
	engine     life.Engine
	registry   *action.Registry
	provider   Provider
	personas   Personas
	maxHistory int
}

// NewService wires the chat loop. provider may be nil when no LLM is
// configured.
func NewService(engine life.Engine, registry *action.Registry, provider Provider, personas Personas) *Service {
	return &Service{
		engine:     engine,
		registry:   registry,
		provider:   provider,
		personas:   personas,
		maxHistory: engine.Rules.MaxConversationEntries,
	}
}

// Exchange is the outcome of one chat turn.
type Exchange struct {
	Response  string
	ToolCalls []action.Result
	State     *life.PlayerState
}

// Chat handles one player message to the NPC at loc. Tool calls mutate and
// persist the player state; the day rolls over when a successful tool drains
// the clock past the threshold. The error return covers storage problems
// only.
func (s *Service) Chat(ctx context.Context, user string, loc life.Location, message string, repo life.Repo) (Exchange, error) {
	st, err := repo.Get()
	if err != nil {
		return Exchange{}, err
	}
	if s.provider == nil {
		return Exchange{Response: invalidProviderMsg, State: st}, nil
	}
	if !s.provider.Available() {
		return Exchange{
			Response: fmt.Sprintf("Error: %s API key not configured.", s.provider.Name()),
			State:    st,
		}, nil
	}

	history := st.ConversationHistory[string(loc)]
	msgs := make([]Message, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, Message{Role: "user", Content: message})

	req := CompletionRequest{
		System:   s.personas.SystemPrompt(loc, st),
		Messages: msgs,
		Tools:    toolDefs(s.registry.ToolsFor(loc)),
	}
	resp, err := s.provider.Complete(ctx, req)
	if err != nil {
		return Exchange{
			Response: fmt.Sprintf("Error communicating with %s: %v", s.provider.Name(), err),
			State:    st,
		}, nil
	}

	reply := strings.TrimSpace(resp.Text)
	var results []action.Result

	if len(resp.ToolCalls) > 0 {
		st, err = repo.Mutate(func(ps *life.PlayerState) bool {
			anyOK := false
			for _, call := range resp.ToolCalls {
				res := s.registry.Execute(user, action.Name(call.Name), call.Args, ps)
				results = append(results, res)
				if res.OK {
					anyOK = true
				}
			}
			if anyOK {
				s.engine.MaybeIncrementTurn(ps)
				s.engine.CheckEndgame(ps, "")
			}
			return anyOK
		})
		if err != nil {
			return Exchange{}, err
		}

		outcomes := make([]ToolOutcome, len(results))
		for i, res := range results {
			outcomes[i] = ToolOutcome{Call: resp.ToolCalls[i], Content: res.Message}
		}
		followUp := CompletionRequest{
			System:       req.System,
			Messages:     msgs,
			Tools:        req.Tools,
			ToolOutcomes: outcomes,
		}
		final, err := s.provider.Complete(ctx, followUp)
		switch {
		case err != nil:
			reply = fmt.Sprintf("Error communicating with %s: %v", s.provider.Name(), err)
		case strings.TrimSpace(final.Text) != "":
			reply = strings.TrimSpace(final.Text)
		default:
			// The model had nothing to add; surface the tool messages.
			reply = joinMessages(results)
		}
	}

	st, err = repo.Mutate(func(ps *life.PlayerState) bool {
		h := append(ps.ConversationHistory[string(loc)],
			life.ChatMessage{Role: "user", Content: message},
			life.ChatMessage{Role: "assistant", Content: reply},
		)
		if s.maxHistory > 0 && len(h) > s.maxHistory {
			h = h[len(h)-s.maxHistory:]
		}
		ps.ConversationHistory[string(loc)] = h
		return true
	})
	if err != nil {
		return Exchange{}, err
	}

	return Exchange{Response: reply, ToolCalls: results, State: st}, nil
}

func toolDefs(tools []action.Tool) []ToolDef {
	out := make([]ToolDef, 0, len(tools))
	for _, t := range tools {
		out = append(out, ToolDef{
			Name:        string(t.Name),
			Description: t.Description,
			Schema:      t.Schema,
		})
	}
	return out
}

func joinMessages(results []action.Result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Message != "" {
			parts = append(parts, r.Message)
		}
	}
	return strings.Join(parts, " ")
}
