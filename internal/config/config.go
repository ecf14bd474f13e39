package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string    `yaml:"version" json:"version"`
	Game    GameRules `yaml:"game" json:"game"`
	LLM     LLMConfig `yaml:"llm" json:"llm"`
}

// GameRules holds every tunable number the engine and the location rules
// consume. Zero values mean "use the default".
type GameRules struct {
	InitialMoney     int `yaml:"initial_money" json:"initial_money"`
	InitialHappiness int `yaml:"initial_happiness" json:"initial_happiness"`
	InitialTiredness int `yaml:"initial_tiredness" json:"initial_tiredness"`
	InitialHunger    int `yaml:"initial_hunger" json:"initial_hunger"`

	DayMinutes           int `yaml:"day_minutes" json:"day_minutes"`
	DayStartHour         int `yaml:"day_start_hour" json:"day_start_hour"`
	TurnThresholdMinutes int `yaml:"turn_threshold_minutes" json:"turn_threshold_minutes"`
	TravelMinutes        int `yaml:"travel_minutes" json:"travel_minutes"`
	ActionMinutes        int `yaml:"action_minutes" json:"action_minutes"`

	// TimeOverrides replaces the travel/action pair for individual
	// locations, keyed by location id.
	TimeOverrides map[string]TimeOverride `yaml:"time_overrides,omitempty" json:"time_overrides,omitempty"`

	HungerPerTurn    int `yaml:"hunger_per_turn" json:"hunger_per_turn"`
	BurnoutTiredness int `yaml:"burnout_tiredness" json:"burnout_tiredness"`
	BurnoutHunger    int `yaml:"burnout_hunger" json:"burnout_hunger"`

	WorkTiredness int `yaml:"work_tiredness" json:"work_tiredness"`
	WageDivisor   int `yaml:"wage_divisor" json:"wage_divisor"`

	ShoppingHappiness int `yaml:"shopping_happiness" json:"shopping_happiness"`

	MaxConversationEntries int `yaml:"max_conversation_entries" json:"max_conversation_entries"`
}

// TimeOverride is a per-location travel/action cost pair.
type TimeOverride struct {
	Travel int `yaml:"travel" json:"travel"`
	Action int `yaml:"action" json:"action"`
}

type LLMConfig struct {
	Provider  string      `yaml:"provider" json:"provider"`
	OpenAI    ModelConfig `yaml:"openai" json:"openai"`
	Anthropic ModelConfig `yaml:"anthropic" json:"anthropic"`
}

type ModelConfig struct {
	Model       string  `yaml:"model" json:"model"`
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
	Temperature float64 `yaml:"temperature" json:"temperature"`
}

func (g *GameRules) ApplyDefaults() {
	def := Default()
	if g.InitialMoney == 0 {
		g.InitialMoney = def.InitialMoney
	}
	if g.InitialHappiness == 0 {
		g.InitialHappiness = def.InitialHappiness
	}
	if g.DayMinutes == 0 {
		g.DayMinutes = def.DayMinutes
	}
	if g.DayStartHour == 0 {
		g.DayStartHour = def.DayStartHour
	}
	if g.TurnThresholdMinutes == 0 {
		g.TurnThresholdMinutes = def.TurnThresholdMinutes
	}
	if g.TravelMinutes == 0 {
		g.TravelMinutes = def.TravelMinutes
	}
	if g.ActionMinutes == 0 {
		g.ActionMinutes = def.ActionMinutes
	}
	if g.HungerPerTurn == 0 {
		g.HungerPerTurn = def.HungerPerTurn
	}
	if g.BurnoutTiredness == 0 {
		g.BurnoutTiredness = def.BurnoutTiredness
	}
	if g.BurnoutHunger == 0 {
		g.BurnoutHunger = def.BurnoutHunger
	}
	if g.WorkTiredness == 0 {
		g.WorkTiredness = def.WorkTiredness
	}
	if g.WageDivisor == 0 {
		g.WageDivisor = def.WageDivisor
	}
	if g.ShoppingHappiness == 0 {
		g.ShoppingHappiness = def.ShoppingHappiness
	}
	if g.MaxConversationEntries == 0 {
		g.MaxConversationEntries = def.MaxConversationEntries
	}
}

func (l *LLMConfig) ApplyDefaults() {
	if l.Provider == "" {
		l.Provider = "openai"
	}
	if l.OpenAI.Model == "" {
		l.OpenAI.Model = "gpt-4o-mini"
	}
	if l.OpenAI.MaxTokens == 0 {
		l.OpenAI.MaxTokens = 150
	}
	if l.OpenAI.Temperature == 0 {
		l.OpenAI.Temperature = 0.7
	}
	if l.Anthropic.Model == "" {
		l.Anthropic.Model = "claude-3-5-sonnet-20241022"
	}
	if l.Anthropic.MaxTokens == 0 {
		l.Anthropic.MaxTokens = 1024
	}
	if l.Anthropic.Temperature == 0 {
		l.Anthropic.Temperature = 0.7
	}
}

func (c *Config) ApplyDefaults() {
	c.Game.ApplyDefaults()
	c.LLM.ApplyDefaults()
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}

// LoadOrDefault reads the config at path, falling back to defaults when the
// file does not exist. Any other read or parse error is returned as-is.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := &Config{}
			c.ApplyDefaults()
			return c, nil
		}
		return nil, err
	}
	return cfg, nil
}
