package quizmodal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/zerohall/internal/llm"
	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/reflection"
	"github.com/abhisek/zerohall/internal/router"
)

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyO     = tea.KeyPressMsg{Code: 'o', Text: "o"}
	keyR     = tea.KeyPressMsg{Code: 'r', Text: "r"}
)

// answer picks option and delivers the delayed commit directly.
func answer(t *testing.T, s *Screen, option int) tea.Cmd {
	t.Helper()
	if option == 1 {
		s.Update(keyDown)
	}
	_, cmd := s.Update(keyEnter)
	require.NotNil(t, cmd, "choosing should schedule the answer")
	require.True(t, s.choice.Locked())
	_, cmd = s.Update(answerMsg{token: s.token, option: option})
	return cmd
}

func start(t *testing.T, svc *reflection.Service) (*Screen, *quiz.Engine) {
	t.Helper()
	eng := quiz.NewEngine(nil)
	s := New(eng, svc)
	require.True(t, eng.State().Open)
	s.Update(keyEnter)
	require.Equal(t, quiz.PhaseQuestions, eng.State().Phase)
	return s, eng
}

func TestIntro(t *testing.T) {
	eng := quiz.NewEngine(nil)
	s := New(eng, nil)
	assert.Equal(t, quiz.PhaseIntro, eng.State().Phase)
	assert.Contains(t, s.View(100, 40), introTitle)

	s.Update(keyEnter)
	assert.Equal(t, quiz.PhaseQuestions, eng.State().Phase)
	assert.Contains(t, s.View(100, 40), "QUESTION 1 / 4")
}

func TestFullRun(t *testing.T) {
	s, eng := start(t, nil)
	for range quiz.QuestionCount {
		answer(t, s, 0)
	}
	st := eng.State()
	require.Equal(t, quiz.PhaseResult, st.Phase)
	assert.Equal(t, []int{0, 0, 0, 0}, st.Answers)
	assert.Equal(t, quiz.Decoder, st.Result.Primary)

	v := s.View(120, 60)
	assert.Contains(t, v, "THE DECODER")
	assert.Contains(t, v, "With underlying characteristics of The Visionary.")
	assert.NotContains(t, v, "Reflecting")
}

func TestLockedChoiceIgnoresKeys(t *testing.T) {
	s, eng := start(t, nil)
	_, cmd := s.Update(keyEnter)
	require.NotNil(t, cmd)

	s.Update(keyDown)
	s.Update(keyEnter)
	assert.Equal(t, 0, s.choice.Chosen)
	assert.Empty(t, eng.State().Answers, "answer waits for the delay")
}

func TestStaleAnswerDropped(t *testing.T) {
	s, eng := start(t, nil)
	s.Update(keyEnter)
	stale := answerMsg{token: s.token, option: 0}

	s.Update(keyEsc)
	assert.False(t, eng.State().Open)

	s.Update(stale)
	assert.Empty(t, eng.State().Answers)
}

func TestPrevQuestion(t *testing.T) {
	s, eng := start(t, nil)

	s.Update(keyLeft)
	assert.Empty(t, eng.State().Answers, "no previous question on the first")

	answer(t, s, 1)
	require.Equal(t, []int{1}, eng.State().Answers)

	s.Update(keyLeft)
	assert.Empty(t, eng.State().Answers)
	assert.False(t, s.choice.Locked())
	assert.Contains(t, s.View(100, 40), "QUESTION 1 / 4")
}

func TestResultActions(t *testing.T) {
	s, eng := start(t, nil)
	for range quiz.QuestionCount {
		answer(t, s, 1)
	}

	assert.Contains(t, s.View(120, 60), "▸ "+othersLabel)
	s.Update(keyO)
	v := s.View(120, 60)
	assert.Contains(t, v, "▾ "+othersLabel)
	for _, tr := range eng.State().Result.Others() {
		assert.Contains(t, v, tr.Name())
	}

	s.Update(keyR)
	assert.Equal(t, quiz.PhaseIntro, eng.State().Phase)
	assert.Nil(t, eng.State().Result)
	assert.True(t, eng.State().Open)

	s.Update(keyEnter)
	for range quiz.QuestionCount {
		answer(t, s, 0)
	}
	_, cmd := s.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.False(t, eng.State().Open)
}

func TestRetakeButton(t *testing.T) {
	s, eng := start(t, nil)
	for range quiz.QuestionCount {
		answer(t, s, 0)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, quiz.PhaseIntro, eng.State().Phase)
	assert.True(t, eng.State().Open, "retake keeps the modal open")
}

func TestReflection(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Respond = reflection.Canned
	svc, err := reflection.NewService(mock, reflection.DefaultConfig(), nil)
	require.NoError(t, err)

	s, _ := start(t, svc)
	var cmd tea.Cmd
	for range quiz.QuestionCount {
		cmd = answer(t, s, 0)
	}
	require.NotNil(t, cmd, "result should request a reflection")
	assert.Contains(t, s.View(120, 60), "Reflecting")

	s.Update(cmd())
	v := s.View(120, 80)
	assert.NotContains(t, v, "Reflecting")
	assert.True(t, strings.Contains(v, "Who Sees Further"), "view should show the headline")
	assert.Equal(t, 1, mock.CallCount())
}

func TestReflectionFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, err := reflection.NewService(mock, reflection.DefaultConfig(), nil)
	require.NoError(t, err)

	s, _ := start(t, svc)
	var cmd tea.Cmd
	for range quiz.QuestionCount {
		cmd = answer(t, s, 0)
	}
	s.Update(cmd())
	assert.Contains(t, s.View(120, 60), "Reflection unavailable")
}

func TestKeyHintsFollowPhase(t *testing.T) {
	eng := quiz.NewEngine(nil)
	s := New(eng, nil)
	assert.Equal(t, "start", s.KeyHints()[0].Description)

	s.Update(keyEnter)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "previous question", h.Description)
	}
	answer(t, s, 0)
	found := false
	for _, h := range s.KeyHints() {
		found = found || h.Description == "previous question"
	}
	assert.True(t, found, "second question should offer going back")
}
