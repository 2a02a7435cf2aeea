package assistant

import (
	"context"
	"fmt"

	"study-buddy/backend/internal/apperr"
	"study-buddy/backend/internal/assistant/deps"
	"study-buddy/backend/internal/config"
	"study-buddy/backend/internal/platform/logger"
)

// UnavailableClient fails every call. It stands in when no credential is
// configured so the server still starts and reports a descriptive error.
type UnavailableClient struct {
	Reason string
}

func (c UnavailableClient) GenerateContent(context.Context, string) (string, error) {
	return "", apperr.Completion(apperr.CodeAuth, c.Reason, nil)
}

// NewCompletionClient builds the client selected by cfg.Provider. The second
// return value reports whether the client can reach a model.
func NewCompletionClient(ctx context.Context, cfg config.Config, log *logger.Logger) (deps.CompletionClient, bool) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			log.Warn("OPENAI_API_KEY is not set; completions will fail")
			return UnavailableClient{Reason: "OPENAI_API_KEY is not set"}, false
		}
		log.Info("using openai-compatible completion client", "model", cfg.OpenAIModel, "endpoint", cfg.OpenAIEndpoint)
		return NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIEndpoint, cfg.OpenAIModel), true

	case config.ProviderGemini:
		if cfg.GeminiKey == "" {
			log.Warn("GEMINI_API_KEY is not set; completions will fail")
			return UnavailableClient{Reason: "GEMINI_API_KEY is not set"}, false
		}
		client, err := NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Error("failed to create gemini client", "error", err)
			return UnavailableClient{Reason: fmt.Sprintf("failed to create gemini client: %v", err)}, false
		}
		log.Info("using gemini completion client", "model", cfg.GeminiModel)
		return client, true
	}

	log.Error("unknown LLM_PROVIDER", "provider", cfg.Provider)
	return UnavailableClient{Reason: fmt.Sprintf("unknown LLM_PROVIDER %q", cfg.Provider)}, false
}
