package service

import (
	"context"
	"fmt"

	"github.com/pathway-infinity/pathway-api/config"
	"github.com/rs/zerolog/log"
)

const (
	completionMaxTokens   = 3000
	completionTemperature = 0.8
)

// Completer sends one system+user prompt to a language model and returns the
// raw reply text. Implementations ask the model for a JSON object.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
}

// NewCompleter builds the completer for LLM_PROVIDER. It returns nil when the
// provider has no API key, which makes every recommendation use the keyword
// scorer.
func NewCompleter(cfg *config.Config) (Completer, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		if cfg.LLM.GeminiKey == "" {
			log.Warn().Msg("GEMINI_API_KEY is not set. Recommendations will use keyword matching only.")
			return nil, nil
		}
		return NewGeminiCompleter(cfg)
	case "openai", "":
		if cfg.LLM.OpenAIKey == "" {
			log.Warn().Msg("OPENAI_API_KEY is not set. Recommendations will use keyword matching only.")
			return nil, nil
		}
		return NewOpenAICompleter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.LLM.Provider)
	}
}
