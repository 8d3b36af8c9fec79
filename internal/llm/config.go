package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/moneypath/internal/retry"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the chat-completion provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	Retry retry.Config

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig uses Anthropic's small model with the standard backoff
// (up to 3 retries) plus jitter.
func DefaultConfig() Config {
	rc := retry.DefaultConfig()
	rc.Jitter = 0.2
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry:      rc,
		Timeout:    30 * time.Second,
	}
}

// ConfigFromEnv reads MONEYPATH_LLM_* and per-provider variables over the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	env := []struct {
		key string
		dst *string
	}{
		{"MONEYPATH_LLM_PROVIDER", &cfg.Provider},
		{"MONEYPATH_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"MONEYPATH_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"MONEYPATH_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"MONEYPATH_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"MONEYPATH_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"MONEYPATH_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"MONEYPATH_GEMINI_MODEL", &cfg.Gemini.Model},
		{"MONEYPATH_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"MONEYPATH_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
	}
	for _, e := range env {
		if v := os.Getenv(e.key); v != "" {
			*e.dst = v
		}
	}
	if v := os.Getenv("MONEYPATH_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// DiscoverConfig falls back to the providers' standard key variables,
// in the order Anthropic, OpenAI, Gemini, OpenRouter. It reports false
// when none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Resolve returns ConfigFromEnv when it validates, otherwise whatever
// DiscoverConfig finds.
func Resolve() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if discovered, ok := DiscoverConfig(); ok {
		return discovered, nil
	}
	return Config{}, err
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "MONEYPATH_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "MONEYPATH_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "MONEYPATH_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "MONEYPATH_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
