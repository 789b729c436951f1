// Package factory builds insight-engine clients from configuration. It
// owns the fallback contract: a requested backend that cannot serve (bad
// name, missing credential) degrades to the mock backend instead of
// failing, so insight and chat endpoints always have a working client.
package factory

import (
	"github.com/navigate-zea/navigate/backend/internal/util"
	"github.com/navigate-zea/navigate/backend/pkg/ai"
	"github.com/navigate-zea/navigate/backend/pkg/ai/claude"
	"github.com/navigate-zea/navigate/backend/pkg/ai/mock"
	"github.com/navigate-zea/navigate/backend/pkg/ai/openai"
	"github.com/navigate-zea/navigate/backend/pkg/logger"
)

// Provider names accepted by New.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderMock   = "mock"
)

// Config selects a backend and carries its credentials.
type Config struct {
	Provider string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	AnthropicKey   string
	AnthropicModel string
}

// FromEnv reads the backend configuration from the environment. The
// provider defaults to openai.
func FromEnv() Config {
	return Config{
		Provider: util.GetEnvString("AI_PROVIDER", ProviderOpenAI),

		OpenAIKey:     util.GetEnvString("OPENAI_API_KEY", ""),
		OpenAIModel:   util.GetEnvString("OPENAI_MODEL", ""),
		OpenAIBaseURL: util.GetEnvString("OPENAI_BASE_URL", ""),

		AnthropicKey:   util.GetEnvString("ANTHROPIC_API_KEY", ""),
		AnthropicModel: util.GetEnvString("ANTHROPIC_MODEL", ""),
	}
}

// New builds the configured backend. It never fails: unusable
// configurations come back as the mock backend with a warning.
func New(cfg Config) ai.Client {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		client := openai.NewClient(openai.NewClientParams{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if !client.Available() {
			logger.Warn("[AI] openai selected but no API key configured, falling back to mock")
			return mock.NewClient()
		}
		return client
	case ProviderClaude:
		client := claude.NewClient(claude.NewClientParams{
			APIKey: cfg.AnthropicKey,
			Model:  cfg.AnthropicModel,
		})
		if !client.Available() {
			logger.Warn("[AI] claude selected but no API key configured, falling back to mock")
			return mock.NewClient()
		}
		return client
	case ProviderMock:
		return mock.NewClient()
	default:
		logger.Warn("[AI] unknown provider, falling back to mock", "provider", cfg.Provider)
		return mock.NewClient()
	}
}
