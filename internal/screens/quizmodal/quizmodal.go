// Package quizmodal is the gift quiz overlay: intro, four questions and
// the result card.
package quizmodal

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/reflection"
	"github.com/abhisek/zerohall/internal/router"
	"github.com/abhisek/zerohall/internal/screen"
	"github.com/abhisek/zerohall/internal/ui/components"
	"github.com/abhisek/zerohall/internal/ui/keys"
	"github.com/abhisek/zerohall/internal/ui/layout"
)

// AnswerDelay is how long a chosen option stays highlighted before the
// next question appears.
const AnswerDelay = 400 * time.Millisecond

// answerMsg commits a locked choice. Stale tokens are dropped.
type answerMsg struct {
	token  int
	option int
}

type reflectionMsg struct {
	result *quiz.Result
	ref    *reflection.Reflection
	err    error
}

// Screen drives a quiz.Engine from key input.
type Screen struct {
	engine  *quiz.Engine
	reflect *reflection.Service

	choice     components.Choice
	token      int
	showOthers bool
	onRetake   bool

	reflecting bool
	ref        *reflection.Reflection
	refErr     error
}

var (
	_ screen.Screen  = (*Screen)(nil)
	_ screen.Overlay = (*Screen)(nil)
)

// New opens the engine's modal. svc may be nil.
func New(engine *quiz.Engine, svc *reflection.Service) *Screen {
	engine.OpenQuiz()
	return &Screen{engine: engine, reflect: svc, choice: components.NewChoice(nil)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Find Your Gift" }

func (s *Screen) Dismissible() bool { return true }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		return s, s.commit(msg)
	case reflectionMsg:
		if st := s.engine.State(); st.Result == msg.result {
			s.reflecting = false
			s.ref, s.refErr = msg.ref, msg.err
		}
		return s, nil
	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Back) {
			return s, s.close()
		}
		switch s.engine.State().Phase {
		case quiz.PhaseIntro:
			return s, s.updateIntro(msg)
		case quiz.PhaseQuestions:
			return s, s.updateQuestion(msg)
		case quiz.PhaseResult:
			return s, s.updateResult(msg)
		}
	}
	return s, nil
}

func (s *Screen) updateIntro(k tea.KeyPressMsg) tea.Cmd {
	if key.Matches(k, keys.Select) {
		s.engine.StartQuiz()
		s.resetChoice()
	}
	return nil
}

func (s *Screen) updateQuestion(k tea.KeyPressMsg) tea.Cmd {
	if s.choice.Locked() {
		return nil
	}
	if key.Matches(k, keys.Prev) {
		if s.engine.State().Position() > 0 {
			s.engine.GoToPrevQuestion()
			s.resetChoice()
		}
		return nil
	}

	s.choice, _ = s.choice.Update(k)
	if !s.choice.Locked() {
		return nil
	}
	s.token++
	m := answerMsg{token: s.token, option: s.choice.Chosen}
	return tea.Tick(AnswerDelay, func(time.Time) tea.Msg { return m })
}

func (s *Screen) commit(m answerMsg) tea.Cmd {
	if m.token != s.token || !s.choice.Locked() {
		return nil
	}
	if err := s.engine.AnswerQuizQuestion(m.option); err != nil {
		s.resetChoice()
		return nil
	}
	st := s.engine.State()
	if st.Phase == quiz.PhaseResult {
		s.showOthers = false
		s.onRetake = false
		return s.requestReflection(st.Result)
	}
	s.resetChoice()
	return nil
}

func (s *Screen) updateResult(k tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(k, keys.Toggle):
		s.showOthers = !s.showOthers
	case key.Matches(k, keys.Retake):
		return s.retake()
	case key.Matches(k, keys.Focus):
		s.onRetake = !s.onRetake
	case key.Matches(k, keys.Select):
		for _, b := range s.resultButtons() {
			if b.Focused {
				return b.OnPress()
			}
		}
	}
	return nil
}

func (s *Screen) resultButtons() []components.Button {
	return []components.Button{
		components.NewButton("CONTINUE", !s.onRetake, s.close),
		components.NewButton("TAKE THE QUIZ AGAIN", s.onRetake, s.retake),
	}
}

func (s *Screen) retake() tea.Cmd {
	s.engine.ResetQuiz()
	s.clearReflection()
	return nil
}

func (s *Screen) requestReflection(res *quiz.Result) tea.Cmd {
	s.clearReflection()
	if !s.reflect.Enabled() || res == nil {
		return nil
	}
	s.reflecting = true
	svc := s.reflect
	return func() tea.Msg {
		ref, err := svc.Reflect(context.Background(), res)
		return reflectionMsg{result: res, ref: ref, err: err}
	}
}

func (s *Screen) clearReflection() {
	s.reflecting = false
	s.ref = nil
	s.refErr = nil
}

func (s *Screen) close() tea.Cmd {
	s.token++
	s.engine.CloseQuiz()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// resetChoice rebuilds the options for the current question.
func (s *Screen) resetChoice() {
	q, ok := s.engine.CurrentQuestion()
	if !ok {
		s.choice = components.NewChoice(nil)
		return
	}
	s.choice = components.NewChoice(q.Options[:])
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.engine.State().Phase {
	case quiz.PhaseIntro:
		return []layout.KeyHint{{Key: "enter", Description: "start"}, keys.Hint(keys.Back)}
	case quiz.PhaseQuestions:
		hints := keys.Hints(keys.Up, keys.Down, keys.Select)
		if s.engine.State().Position() > 0 {
			hints = append(hints, layout.KeyHint{Key: "←", Description: "previous question"})
		}
		return append(hints, keys.Hint(keys.Back))
	default:
		return []layout.KeyHint{
			{Key: "enter", Description: "press"},
			{Key: "tab", Description: "switch button"},
			keys.Hint(keys.Toggle),
			keys.Hint(keys.Retake),
			keys.Hint(keys.Back),
		}
	}
}
