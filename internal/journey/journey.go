// Package journey records a visit's room changes and quiz results.
package journey

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/zerohall/internal/navigator"
	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/store"
)

// DefaultTimeout bounds each write.
const DefaultTimeout = 2 * time.Second

const queueSize = 64

// Recorder appends journey events for one visit. Write failures are
// logged and otherwise ignored.
//
// Events from navigator and engine listeners are written in order on a
// background goroutine; Close waits for them.
type Recorder struct {
	sessionID string
	rec       store.JourneyRecorder
	logger    *slog.Logger
	timeout   time.Duration

	mu     sync.RWMutex
	closed bool
	jobs   chan func()
	done   chan struct{}
}

// NewRecorder starts a new visit session.
func NewRecorder(rec store.JourneyRecorder, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Recorder{
		sessionID: uuid.NewString(),
		rec:       rec,
		logger:    logger,
		timeout:   DefaultTimeout,
		jobs:      make(chan func(), queueSize),
		done:      make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) run() {
	defer close(r.done)
	for job := range r.jobs {
		job()
	}
}

// enqueue schedules job on the writer goroutine. Events are dropped
// once the recorder is closed or the queue is full.
func (r *Recorder) enqueue(job func()) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	select {
	case r.jobs <- job:
	default:
		r.logger.Warn("journey queue full, event dropped", "session", r.sessionID)
	}
}

// Close flushes queued events and stops the writer. It is safe to call
// more than once.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.jobs)
	}
	r.mu.Unlock()
	<-r.done
}

// SessionID identifies this visit in stored events.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Attach subscribes to nav and eng and records the starting room.
func (r *Recorder) Attach(nav *navigator.Navigator, eng *quiz.Engine) {
	if nav != nil {
		st := nav.State()
		r.RoomEntered(st.Current.String(), "", "start")
		nav.OnChange(r.onNavigate)
	}
	if eng != nil {
		eng.OnResult(func(answers []int, res *quiz.Result) {
			answers = append([]int(nil), answers...)
			r.enqueue(func() { r.QuizCompleted(answers, res) })
		})
	}
}

func (r *Recorder) onNavigate(st navigator.State, ch navigator.Change) {
	switch ch.Kind {
	case navigator.ChangeJump, navigator.ChangeStepCompleted:
		to, from, via := string(ch.To), string(ch.From), ch.Kind.String()
		r.enqueue(func() { r.RoomEntered(to, from, via) })
	}
}

// RoomEntered records entering room from previous. It writes synchronously.
func (r *Recorder) RoomEntered(room, previous, via string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	err := r.rec.AppendRoomVisit(ctx, store.RoomVisitData{
		SessionID:    r.sessionID,
		Room:         room,
		PreviousRoom: previous,
		Via:          via,
	})
	if err != nil {
		r.logger.Warn("failed to record room visit", "room", room, "error", err)
	}
}

// QuizCompleted records a finished quiz.
func (r *Recorder) QuizCompleted(answers []int, res *quiz.Result) {
	if res == nil {
		return
	}
	scores := make(map[string]int, len(res.Scores))
	for t, v := range res.Scores {
		scores[string(t)] = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	err := r.rec.AppendQuizResult(ctx, store.QuizResultData{
		SessionID:      r.sessionID,
		Answers:        append([]int(nil), answers...),
		PrimaryTrait:   string(res.Primary),
		SecondaryTrait: string(res.Secondary),
		Scores:         scores,
	})
	if err != nil {
		r.logger.Warn("failed to record quiz result", "primary", string(res.Primary), "error", err)
		return
	}
	r.logger.Info("quiz result recorded", "session", r.sessionID, "primary", string(res.Primary))
}
