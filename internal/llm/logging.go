package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/zerohall/internal/store"
)

// LoggingProvider records every request in the audit log.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder store.LLMRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// WithLogging wraps p so each call is appended to recorder. provider is
// the configured provider name recorded with each event.
func WithLogging(p Provider, provider string, recorder store.LLMRecorder, logger *slog.Logger) *LoggingProvider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingProvider{inner: p, provider: provider, recorder: recorder, logger: logger, now: time.Now}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   l.now().Sub(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: formatRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.logger.Debug("llm request",
		"provider", data.Provider, "model", data.Model, "purpose", purpose,
		"latency_ms", data.LatencyMs, "success", data.Success)

	if l.recorder != nil {
		// The audit write must outlive a cancelled request.
		if rerr := l.recorder.AppendLLMRequest(context.WithoutCancel(ctx), data); rerr != nil {
			l.logger.Warn("failed to record llm request", "purpose", purpose, "error", rerr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// formatRequest renders req as readable sections for the audit log.
func formatRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
