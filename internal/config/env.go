package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is the process-level configuration read from the environment.
// A .env file in the working directory is loaded first when present.
type Env struct {
	Addr       string `env:"LIFEGAME_ADDR" envDefault:":5001"`
	DataDir    string `env:"LIFEGAME_DATA_DIR" envDefault:"data"`
	ConfigPath string `env:"LIFEGAME_CONFIG" envDefault:"config.yaml"`
	Difficulty string `env:"LIFEGAME_DIFFICULTY"`

	SessionSecret string        `env:"LIFEGAME_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"LIFEGAME_SESSION_TTL" envDefault:"24h"`

	LLMProvider      string `env:"LIFEGAME_LLM_PROVIDER"`
	OpenAIKey        string `env:"LIFEGAME_OPENAI_API_KEY"`
	AnthropicKey     string `env:"LIFEGAME_ANTHROPIC_API_KEY"`
	OpenAIBaseURL    string `env:"LIFEGAME_OPENAI_BASE_URL"`
	AnthropicBaseURL string `env:"LIFEGAME_ANTHROPIC_BASE_URL"`
}

// ParseEnv loads .env (when present) and parses the environment into Env.
func ParseEnv() (Env, error) {
	_ = godotenv.Load()
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// Apply folds env-level knobs into a loaded config: difficulty presets for
// the game rules and the LLM provider override.
func (e Env) Apply(cfg *Config) {
	if e.Difficulty != "" {
		cfg.Game = ForDifficulty(e.Difficulty)
	}
	if e.LLMProvider != "" {
		cfg.LLM.Provider = e.LLMProvider
	}
}
