package quizmodal

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/ui/components"
	"github.com/abhisek/zerohall/internal/ui/theme"
)

const (
	introTitle = "FIND YOUR GIFT"
	introText  = "Let's put the insight, learning, and inspiration you've found here in the Hall of Zero Limits to work. " +
		"Answer four quick questions and discover the gift that sets you apart."
	resultIntro = "You've reached the end of the quiz, and quite possibly the beginning of a new journey."
	othersLabel = "Explore your other characteristics"
)

func (s *Screen) View(width, height int) string {
	inner := min(width-10, 76)
	var body string
	switch st := s.engine.State(); st.Phase {
	case quiz.PhaseIntro:
		body = s.viewIntro(inner)
	case quiz.PhaseQuestions:
		body = s.viewQuestion(st, inner)
	case quiz.PhaseResult:
		body = s.viewResult(st.Result, inner)
	}
	box := theme.Modal.Width(inner + 8).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *Screen) viewIntro(width int) string {
	return strings.Join([]string{
		theme.Title.Width(width).Render(introTitle),
		"",
		theme.Body.Width(width).Render(introText),
		"",
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(theme.ButtonActive.Render("START")),
	}, "\n")
}

func (s *Screen) viewQuestion(st quiz.State, width int) string {
	q, ok := quiz.QuestionAt(st.Position())
	if !ok {
		return ""
	}
	return strings.Join([]string{
		theme.Hint.Render(fmt.Sprintf("QUESTION %d / %d", st.Position()+1, quiz.QuestionCount)),
		"",
		theme.Title.Width(width).Render(q.Line1),
		theme.Title.Width(width).Render(q.Line2),
		"",
		s.choice.View(),
	}, "\n")
}

func (s *Screen) viewResult(r *quiz.Result, width int) string {
	if r == nil {
		return ""
	}
	primary := r.Primary.Profile()
	lines := []string{
		theme.Hint.Width(width).Render(resultIntro),
		"",
		theme.Title.Width(width).Render(strings.ToUpper(primary.Name)),
		theme.Subtitle.Width(width).Render(fmt.Sprintf("With underlying characteristics of %s.", r.Secondary.Name())),
		"",
		theme.Body.Width(width).Render(primary.Description),
		"",
		traitBar(r, r.Primary, width),
		traitBar(r, r.Secondary, width),
	}

	if s.showOthers {
		lines = append(lines, "", theme.Selected.Render("▾ "+othersLabel))
		for _, t := range r.Others() {
			lines = append(lines, traitBar(r, t, width))
		}
	} else {
		lines = append(lines, "", theme.Hint.Render("▸ "+othersLabel))
	}

	switch {
	case s.reflecting:
		lines = append(lines, "", theme.Hint.Render("Reflecting on your gift…"))
	case s.ref != nil:
		lines = append(lines, "", theme.Quote.Width(width).Render(s.ref.Headline), theme.Body.Width(width).Render(s.ref.Paragraph))
		for _, p := range s.ref.Paths {
			lines = append(lines, theme.Body.Render("  • "+p))
		}
	case s.refErr != nil:
		lines = append(lines, "", theme.Hint.Render("Reflection unavailable right now."))
	}

	buttons := s.resultButtons()
	lines = append(lines, "", lipgloss.JoinHorizontal(lipgloss.Center, buttons[0].View(), "  ", buttons[1].View()))
	return strings.Join(lines, "\n")
}

func traitBar(r *quiz.Result, t quiz.Trait, width int) string {
	bar := components.NewProgressBar(t.Name(), r.Scores[t], width, theme.TraitColor(string(t)))
	bar.LabelWidth = 16
	return bar.View()
}
