package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/zerohall/internal/llm"
	"github.com/abhisek/zerohall/internal/quiz"
)

const validOutput = `{"headline":"You Decode the World","paragraph":"p","paths":["a","b","c"]}`

func mustScore(t *testing.T, answers ...int) *quiz.Result {
	t.Helper()
	r, err := quiz.Score(answers)
	require.NoError(t, err)
	return r
}

func TestReflect_GeneratesAndCaches(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validOutput)})
	svc, err := NewService(mock, DefaultConfig(), nil)
	require.NoError(t, err)

	r := mustScore(t, 0, 0, 0, 0)
	ref, err := svc.Reflect(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "You Decode the World", ref.Headline)
	assert.Len(t, ref.Paths, 3)
	assert.Equal(t, quiz.Decoder, ref.Primary)

	again, err := svc.Reflect(context.Background(), r)
	require.NoError(t, err)
	assert.Same(t, ref, again)
	assert.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	assert.Equal(t, Schema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Primary gift: The Decoder (decoder)")
	assert.Contains(t, req.Messages[0].Content, "Secondary gift: The Visionary (visionary)")
}

func TestReflect_DifferentPairsMiss(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Respond = Canned
	svc, err := NewService(mock, Config{CacheSize: 1}, nil)
	require.NoError(t, err)

	a := mustScore(t, 0, 0, 0, 0)
	b := mustScore(t, 1, 1, 1, 1)
	for _, r := range []*quiz.Result{a, b, a} {
		_, err := svc.Reflect(context.Background(), r)
		require.NoError(t, err)
	}
	// A cache of one evicts a before its second lookup.
	assert.Equal(t, 3, mock.CallCount())
}

func TestReflect_Errors(t *testing.T) {
	_, err := (&Service{}).Reflect(context.Background(), mustScore(t, 0, 0, 0, 0))
	assert.ErrorIs(t, err, ErrDisabled)

	var nilSvc *Service
	assert.False(t, nilSvc.Enabled())

	down := errors.New("down")
	svc, err := NewService(llm.NewMockProvider(llm.MockResponse{Err: down}), DefaultConfig(), nil)
	require.NoError(t, err)
	_, err = svc.Reflect(context.Background(), mustScore(t, 0, 1, 0, 1))
	assert.ErrorIs(t, err, down)

	_, err = svc.Reflect(context.Background(), nil)
	assert.Error(t, err)
}

func TestReflect_InvalidOutputNotCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"headline":"x"}`)},
		llm.MockResponse{Content: json.RawMessage(validOutput)},
	)
	svc, err := NewService(mock, DefaultConfig(), nil)
	require.NoError(t, err)

	r := mustScore(t, 1, 0, 1, 0)
	_, err = svc.Reflect(context.Background(), r)
	var inv *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &inv)

	ref, err := svc.Reflect(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "You Decode the World", ref.Headline)
}

func TestCanned(t *testing.T) {
	r := mustScore(t, 1, 1, 1, 1)
	resp := Canned(llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: userMessage(r)}}})
	require.NoError(t, resp.Err)

	var out output
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	assert.True(t, strings.HasPrefix(out.Headline, "The Illuminator"), out.Headline)
	assert.Contains(t, out.Paragraph, "The Decoder")
	assert.Len(t, out.Paths, 3)
}

func TestTraitAfter(t *testing.T) {
	tests := []struct {
		in   string
		want quiz.Trait
	}{
		{"Primary gift: The Explorer (explorer)\n", quiz.Explorer},
		{"Primary gift: The Avant-Garde (avant-garde)", quiz.AvantGarde},
		{"Primary gift: nobody (ghost)", quiz.Decoder},
		{"nothing here", quiz.Decoder},
	}
	for _, tt := range tests {
		if got := traitAfter(tt.in, "Primary gift:", quiz.Decoder); got != tt.want {
			t.Errorf("traitAfter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
