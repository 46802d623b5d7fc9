package factory

import (
	"context"
	"fmt"

	"ai-careercompass-be/pkg/llm"
	"ai-careercompass-be/pkg/llm/gemini"
	"ai-careercompass-be/pkg/llm/groq"
)

type ProviderConfig struct {
	Provider   string // "groq" or "gemini"
	Model      string
	GroqAPIKey string
	GroqURL    string
	GeminiKey  string
	MaxRetries int
}

func NewLLMProvider(ctx context.Context, cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "groq":
		return groq.NewGroqProvider(cfg.GroqAPIKey, cfg.GroqURL, cfg.Model, cfg.MaxRetries), nil
	case "gemini":
		return gemini.NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
