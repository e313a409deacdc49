package reflection

import (
	"fmt"
	"strings"

	"github.com/abhisek/zerohall/internal/quiz"
)

const systemPrompt = `You are the voice of the Hall of Zero Limits, a gallery celebrating creators
who turned their gifts into new worlds. A visitor has just finished a four-question
quiz that scores five creative traits. Write a warm, specific reflection addressed to
them as "you". Do not mention percentages, quizzes or scores. Avoid cliches.`

// userMessage describes the result the reflection is about.
func userMessage(r *quiz.Result) string {
	var b strings.Builder
	p, s := r.Primary.Profile(), r.Secondary.Profile()
	fmt.Fprintf(&b, "Primary gift: %s (%s)\n%s\n\n", p.Name, p.Trait, p.Description)
	fmt.Fprintf(&b, "Secondary gift: %s (%s)\n%s\n\n", s.Name, s.Trait, s.Description)
	b.WriteString("Trait strengths:\n")
	for _, t := range r.Ranked() {
		fmt.Fprintf(&b, "- %s: %d\n", t.Name(), r.Scores[t])
	}
	return b.String()
}
