package reflection

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/zerohall/internal/llm"
	"github.com/abhisek/zerohall/internal/quiz"
)

// Canned answers reflection requests offline. It is the fallback
// responder for the mock provider.
func Canned(req llm.Request) llm.MockResponse {
	primary, secondary := quiz.Decoder, quiz.Visionary
	for _, m := range req.Messages {
		primary = traitAfter(m.Content, "Primary gift:", primary)
		secondary = traitAfter(m.Content, "Secondary gift:", secondary)
	}
	out := output{
		Headline: fmt.Sprintf("%s Who Sees Further", primary.Name()),
		Paragraph: fmt.Sprintf("You are at your best as %s. %s Paired with the instincts of %s, that gift turns ideas into things other people can stand inside.",
			primary.Name(), primary.Profile().Description, secondary.Name()),
		Paths: []string{
			"Sketch one impossible building every week",
			"Take apart a device and document how it works",
			"Start a small project with someone unlike you",
		},
	}
	b, _ := json.Marshal(out)
	return llm.MockResponse{
		Content: b,
		Usage:   llm.Usage{InputTokens: len(req.System) / 4, OutputTokens: len(b) / 4},
	}
}

// traitAfter finds "label Name (id)" in s and returns the trait id.
func traitAfter(s, label string, fallback quiz.Trait) quiz.Trait {
	i := strings.Index(s, label)
	if i < 0 {
		return fallback
	}
	rest := s[i+len(label):]
	open, end := strings.Index(rest, "("), strings.Index(rest, ")")
	if open < 0 || end < open {
		return fallback
	}
	if t := quiz.Trait(rest[open+1 : end]); t.Valid() {
		return t
	}
	return fallback
}
