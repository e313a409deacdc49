package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

var reflectionSchema = &Schema{
	Name: "test_reflection",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"paths": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
		},
		"required":             []string{"headline", "paths"},
		"additionalProperties": false,
	},
}

func anthropicServer(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"}, option.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 12},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"headline":"Decoder","paths":["a"]}`, "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You reflect on quiz results.",
		Messages:  []Message{{Role: RoleUser, Content: "decoder, visionary"}},
		Schema:    reflectionSchema,
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != stopEnd {
		t.Errorf("stop = %q", resp.StopReason)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 12 || resp.Usage.TotalTokens != 52 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("alias not resolved: %q", p.ModelID())
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	errBody := map[string]any{"type": "error", "error": map[string]any{"type": "x", "message": "nope"}}
	req := Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}, MaxTokens: 10}

	t.Run("rate limit", func(t *testing.T) {
		_, err := anthropicServer(t, http.StatusTooManyRequests, errBody).Generate(context.Background(), req)
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		_, err := anthropicServer(t, http.StatusInternalServerError, errBody).Generate(context.Background(), req)
		var un *ErrProviderUnavailable
		if !errors.As(err, &un) {
			t.Fatalf("got %T (%v), want ErrProviderUnavailable", err, err)
		}
	})

	t.Run("truncated structured output", func(t *testing.T) {
		p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"headline":`, "max_tokens"))
		_, err := p.Generate(context.Background(), Request{Messages: req.Messages, Schema: reflectionSchema, MaxTokens: 10})
		var mt *ErrMaxTokensExceeded
		if !errors.As(err, &mt) {
			t.Fatalf("got %T (%v), want ErrMaxTokensExceeded", err, err)
		}
	})

	t.Run("schema mismatch", func(t *testing.T) {
		p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"headline":1}`, "end_turn"))
		_, err := p.Generate(context.Background(), Request{Messages: req.Messages, Schema: reflectionSchema, MaxTokens: 10})
		var inv *ErrInvalidResponse
		if !errors.As(err, &inv) {
			t.Fatalf("got %T (%v), want ErrInvalidResponse", err, err)
		}
	})
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-test",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"headline":"Explorer","paths":["x","y"]}`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 20, "completion_tokens": 8, "total_tokens": 28},
		})
	}))
	defer srv.Close()

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.Generate(context.Background(), Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "u"}},
		Schema:   reflectionSchema,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 28 || resp.Model != "gpt-4o-mini" {
		t.Errorf("resp = %+v", resp)
	}

	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v", first["role"])
	}
	if rf, _ := got["response_format"].(map[string]any); rf["type"] != "json_schema" {
		t.Errorf("response_format = %v", got["response_format"])
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "slow down", "type": "rate_limit"}})
	}))
	defer srv.Close()

	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: srv.URL + "/v1"})
	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "u"}}})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "m"}); err == nil {
		t.Error("expected error for empty API key")
	}
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "anthropic/claude-3-haiku"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("model = %q, want pass-through", p.ModelID())
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(reflectionSchema.Definition)
	if s.Type != "OBJECT" {
		t.Errorf("type = %v", s.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
	paths := s.Properties["paths"]
	if paths == nil || paths.Items == nil || paths.Items.Type != "STRING" {
		t.Fatalf("paths = %+v", paths)
	}
	if paths.MinItems == nil || *paths.MinItems != 1 {
		t.Errorf("minItems = %v", paths.MinItems)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct{ provider, name, want string }{
		{"gemini", "gemini-flash", "gemini-2.0-flash"},
		{"openai", "gpt-4o-mini", "gpt-4o-mini"},
		{"anthropic", "claude-opus-custom", "claude-opus-custom"},
		{"openrouter", "claude-haiku", "claude-haiku"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.provider, tt.name); got != tt.want {
			t.Errorf("resolveModel(%q, %q) = %q, want %q", tt.provider, tt.name, got, tt.want)
		}
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if LookupCost("claude-haiku") == nil {
		t.Error("aliases should resolve to priced models")
	}
	if LookupCost("mock") != nil {
		t.Error("unknown models have no pricing")
	}
}
