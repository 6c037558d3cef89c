package factory

import (
	"context"
	"fmt"

	"genui-be/pkg/llm"
	"genui-be/pkg/llm/gemini"
	"genui-be/pkg/llm/ollama"
	"genui-be/pkg/llm/openai"
)

type ProviderConfig struct {
	Type    string // "gemini", "openai", "ollama"
	APIKey  string
	BaseURL string
	Model   string
}

func NewLLMProvider(ctx context.Context, cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Type {
	case "gemini":
		return gemini.NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Type)
	}
}
