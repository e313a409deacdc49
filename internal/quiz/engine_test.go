package quiz

import (
	"errors"
	"reflect"
	"testing"
)

func TestEngine_FullRun(t *testing.T) {
	e := NewEngine(nil)
	e.OpenQuiz()
	e.StartQuiz()

	for i, a := range []int{0, 1, 0} {
		if err := e.AnswerQuizQuestion(a); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		st := e.State()
		if st.Phase != PhaseQuestions || st.Result != nil {
			t.Fatalf("after %d answers: phase=%s result=%v", i+1, st.Phase, st.Result)
		}
	}

	q, ok := e.CurrentQuestion()
	if !ok || q.ID != 4 {
		t.Fatalf("current question = %+v, %v", q, ok)
	}

	if err := e.AnswerQuizQuestion(0); err != nil {
		t.Fatal(err)
	}
	st := e.State()
	if st.Phase != PhaseResult {
		t.Fatalf("phase = %s, want result", st.Phase)
	}
	if st.Result == nil || st.Result.Primary != Decoder || st.Result.Secondary != Illuminator {
		t.Errorf("result = %+v", st.Result)
	}
	if _, ok := e.CurrentQuestion(); ok {
		t.Error("no current question in result phase")
	}
}

func TestEngine_AnswerValidation(t *testing.T) {
	e := NewEngine(nil)
	e.OpenQuiz()

	if err := e.AnswerQuizQuestion(0); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("answer in intro: got %v, want ErrWrongPhase", err)
	}

	e.StartQuiz()
	if err := e.AnswerQuizQuestion(3); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("got %v, want ErrInvalidOption", err)
	}
	if n := len(e.State().Answers); n != 0 {
		t.Errorf("invalid answer recorded: %d answers", n)
	}

	for i := 0; i < QuestionCount; i++ {
		_ = e.AnswerQuizQuestion(1)
	}
	if err := e.AnswerQuizQuestion(1); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("answer after result: got %v, want ErrWrongPhase", err)
	}
}

func TestEngine_GoToPrevQuestion(t *testing.T) {
	e := NewEngine(nil)
	e.StartQuiz()

	e.GoToPrevQuestion()
	st := e.State()
	if st.Phase != PhaseQuestions || len(st.Answers) != 0 {
		t.Errorf("prev on empty: %+v", st)
	}

	_ = e.AnswerQuizQuestion(1)
	_ = e.AnswerQuizQuestion(0)
	e.GoToPrevQuestion()
	if got := e.State().Answers; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("answers = %v, want [1]", got)
	}

	e.GoToPrevQuestion()
	st = e.State()
	if st.Phase != PhaseQuestions || len(st.Answers) != 0 {
		t.Errorf("emptied answers should stay in questions: %+v", st)
	}
}

func TestEngine_ResetFromResult(t *testing.T) {
	e := NewEngine(nil)
	e.OpenQuiz()
	e.StartQuiz()
	for i := 0; i < QuestionCount; i++ {
		_ = e.AnswerQuizQuestion(0)
	}

	e.ResetQuiz()
	st := e.State()
	if st.Phase != PhaseIntro || len(st.Answers) != 0 || st.Result != nil {
		t.Errorf("after reset: %+v", st)
	}
}

func TestEngine_OpenIdempotent(t *testing.T) {
	e := NewEngine(nil)
	e.StartQuiz()
	_ = e.AnswerQuizQuestion(0)

	e.OpenQuiz()
	once := e.State()
	e.OpenQuiz()
	twice := e.State()
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("OpenQuiz not idempotent: %+v vs %+v", once, twice)
	}
	if !once.Open || once.Phase != PhaseIntro || len(once.Answers) != 0 {
		t.Errorf("after open: %+v", once)
	}
}

func TestEngine_CloseKeepsProgress(t *testing.T) {
	e := NewEngine(nil)
	e.OpenQuiz()
	e.StartQuiz()
	_ = e.AnswerQuizQuestion(1)

	e.CloseQuiz()
	st := e.State()
	if st.Open {
		t.Error("still open after CloseQuiz")
	}
	if st.Phase != PhaseQuestions || len(st.Answers) != 1 {
		t.Errorf("close touched progress: %+v", st)
	}
}

func TestEngine_OnResult(t *testing.T) {
	e := NewEngine(nil)
	calls := 0
	var got []int
	e.OnResult(func(answers []int, r *Result) {
		calls++
		got = answers
	})

	e.StartQuiz()
	for _, a := range []int{1, 1, 0, 1} {
		_ = e.AnswerQuizQuestion(a)
	}
	if calls != 1 {
		t.Fatalf("hook called %d times, want 1", calls)
	}
	if !reflect.DeepEqual(got, []int{1, 1, 0, 1}) {
		t.Errorf("hook answers = %v", got)
	}

	// State snapshots do not alias engine storage.
	st := e.State()
	st.Answers[0] = 0
	if e.State().Answers[0] != 1 {
		t.Error("State() leaked internal slice")
	}
}
