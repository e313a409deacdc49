package quiz

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// ErrWrongPhase is returned when an answer arrives outside the questions phase.
var ErrWrongPhase = errors.New("quiz is not accepting answers")

// Phase is the quiz modal's stage.
type Phase string

const (
	PhaseIntro     Phase = "intro"
	PhaseQuestions Phase = "questions"
	PhaseResult    Phase = "result"
)

// State is a snapshot of the engine.
type State struct {
	Open    bool    `json:"open"`
	Phase   Phase   `json:"phase"`
	Answers []int   `json:"answers"`
	Result  *Result `json:"result,omitempty"`
}

// Position returns the index of the question awaiting an answer.
func (s State) Position() int {
	return len(s.Answers)
}

// ResultHook is called once per completed quiz.
type ResultHook func(answers []int, r *Result)

// Engine drives the question sequence and computes the result when the
// last answer arrives. It is safe for concurrent use.
type Engine struct {
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	onDone []ResultHook
}

// NewEngine creates an engine in the intro phase with the modal closed.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		logger: logger,
		state:  State{Phase: PhaseIntro},
	}
}

// OnResult registers a hook for completed quizzes.
func (e *Engine) OnResult(h ResultHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onDone = append(e.onDone, h)
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.state
	st.Answers = append([]int(nil), e.state.Answers...)
	return st
}

// CurrentQuestion returns the question awaiting an answer. ok is false
// outside the questions phase.
func (e *Engine) CurrentQuestion() (Question, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhaseQuestions {
		return Question{}, false
	}
	return QuestionAt(len(e.state.Answers))
}

// OpenQuiz opens the modal at the intro with no answers.
func (e *Engine) OpenQuiz() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = State{Open: true, Phase: PhaseIntro}
}

// CloseQuiz hides the modal. Progress is kept until the next OpenQuiz.
func (e *Engine) CloseQuiz() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Open = false
}

// StartQuiz enters the questions phase with a clean slate.
func (e *Engine) StartQuiz() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Phase = PhaseQuestions
	e.state.Answers = nil
	e.state.Result = nil
}

// AnswerQuizQuestion records option for the current question. The final
// answer computes the result and moves to the result phase.
func (e *Engine) AnswerQuizQuestion(option int) error {
	e.mu.Lock()
	if e.state.Phase != PhaseQuestions {
		phase := e.state.Phase
		e.mu.Unlock()
		return fmt.Errorf("%w: phase is %s", ErrWrongPhase, phase)
	}
	if option != 0 && option != 1 {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}

	e.state.Answers = append(e.state.Answers, option)
	if len(e.state.Answers) < QuestionCount {
		e.mu.Unlock()
		return nil
	}

	answers := append([]int(nil), e.state.Answers...)
	result, err := Score(answers)
	if err != nil {
		e.state.Answers = e.state.Answers[:len(e.state.Answers)-1]
		e.mu.Unlock()
		return fmt.Errorf("score quiz: %w", err)
	}
	e.state.Result = result
	e.state.Phase = PhaseResult
	hooks := append([]ResultHook(nil), e.onDone...)
	e.mu.Unlock()

	e.logger.Info("quiz completed",
		"primary", string(result.Primary),
		"secondary", string(result.Secondary),
	)
	for _, h := range hooks {
		h(answers, result)
	}
	return nil
}

// GoToPrevQuestion retracts the last answer. It is a no-op with no
// answers or outside the questions phase.
func (e *Engine) GoToPrevQuestion() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Phase != PhaseQuestions || len(e.state.Answers) == 0 {
		return
	}
	e.state.Answers = e.state.Answers[:len(e.state.Answers)-1]
}

// ResetQuiz returns to the intro with no answers and no result.
func (e *Engine) ResetQuiz() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Phase = PhaseIntro
	e.state.Answers = nil
	e.state.Result = nil
}
