package chat

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/annakobylinska4-wq/life-game/internal/life"
)

//go:embed npc_prompts.yaml
var npcPromptsYAML []byte

const fallbackPrompt = "You are a helpful assistant."

// Personas maps location ids to their NPC system prompts.
type Personas map[string]string

// DefaultPersonas parses the embedded prompt file. The file ships with the
// binary, so a parse failure is a build defect and panics at startup.
func DefaultPersonas() Personas {
	p, err := ParsePersonas(npcPromptsYAML)
	if err != nil {
		panic(fmt.Sprintf("chat: embedded npc_prompts.yaml: %v", err))
	}
	return p
}

// ParsePersonas decodes a YAML document of location id to prompt.
func ParsePersonas(b []byte) (Personas, error) {
	var p Personas
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse personas: %w", err)
	}
	if p == nil {
		p = Personas{}
	}
	return p, nil
}

// SystemPrompt returns the NPC prompt for loc with the player's current
// status appended, falling back to a generic assistant for unknown ids.
func (p Personas) SystemPrompt(loc life.Location, s *life.PlayerState) string {
	prompt, ok := p[string(loc)]
	if !ok || prompt == "" {
		prompt = fallbackPrompt
	}
	if s == nil {
		return prompt
	}
	prompt += "\n\nCurrent player status:\n"
	prompt += fmt.Sprintf("- Money: $%d\n", s.Money)
	prompt += fmt.Sprintf("- Qualification: %s\n", s.Qualification)
	prompt += fmt.Sprintf("- Current Job: %s\n", s.CurrentJob)
	prompt += fmt.Sprintf("- Wage: $%d/turn\n", s.JobWage)
	return prompt
}
