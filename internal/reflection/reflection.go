// Package reflection asks a language model for a short personal
// reflection on a quiz result. Reflections are cached per trait pair.
package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abhisek/zerohall/internal/llm"
	"github.com/abhisek/zerohall/internal/quiz"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("reflection disabled: no LLM provider configured")

// Reflection is the generated text for one result.
type Reflection struct {
	Primary   quiz.Trait `json:"primary"`
	Secondary quiz.Trait `json:"secondary"`
	Headline  string     `json:"headline"`
	Paragraph string     `json:"paragraph"`
	Paths     []string   `json:"paths"`
}

// Config tunes generation.
type Config struct {
	CacheSize   int
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{CacheSize: 32, Timeout: 20 * time.Second, MaxTokens: 600, Temperature: 0.8}
}

type pair struct {
	primary, secondary quiz.Trait
}

// Service generates and caches reflections. A nil provider disables it.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
	cache    *lru.Cache[pair, *Reflection]
}

// NewService creates a reflection service. provider may be nil.
func NewService(provider llm.Provider, cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultConfig().CacheSize
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cache, err := lru.New[pair, *Reflection](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("reflection cache: %w", err)
	}
	return &Service{provider: provider, cfg: cfg, logger: logger, cache: cache}, nil
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

type output struct {
	Headline  string   `json:"headline"`
	Paragraph string   `json:"paragraph"`
	Paths     []string `json:"paths"`
}

// Reflect returns the reflection for r, generating it on a cache miss.
func (s *Service) Reflect(ctx context.Context, r *quiz.Result) (*Reflection, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if r == nil {
		return nil, errors.New("reflection: nil result")
	}
	key := pair{r.Primary, r.Secondary}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "reflection")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMessage(r)}},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.logger.Warn("reflection failed", "primary", string(r.Primary), "error", err)
		return nil, fmt.Errorf("reflection generation: %w", err)
	}

	var out output
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reflection response: %w", err)
	}
	ref := &Reflection{
		Primary:   r.Primary,
		Secondary: r.Secondary,
		Headline:  out.Headline,
		Paragraph: out.Paragraph,
		Paths:     out.Paths,
	}
	s.cache.Add(key, ref)
	return ref, nil
}
