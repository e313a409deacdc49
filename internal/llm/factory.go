package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/zerohall/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller -> retry -> logging -> provider. recorder may be nil. A mock
// provider gets mockRespond as its fallback responder.
func NewProvider(ctx context.Context, cfg Config, recorder store.LLMRecorder, logger *slog.Logger, mockRespond func(Request) MockResponse) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		m := NewMockProvider()
		m.Respond = mockRespond
		base = m
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, recorder, logger)
	retried := WithRetry(logged, cfg.Retry, logger)
	retried.Timeout = cfg.Timeout
	return retried, nil
}
