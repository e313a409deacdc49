package navigator

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abhisek/zerohall/internal/clock"
	"github.com/abhisek/zerohall/internal/rooms"
)

// TransitionDelay is how long a step transition takes before the room
// actually changes.
const TransitionDelay = 800 * time.Millisecond

// State is a snapshot of the navigator.
type State struct {
	Current       rooms.Room `json:"current"`
	Previous      rooms.Room `json:"previous"`
	Transitioning bool       `json:"transitioning"`
}

// ChangeKind classifies a state change.
type ChangeKind int

const (
	// ChangeJump is a direct SetCurrentRoom.
	ChangeJump ChangeKind = iota
	// ChangeStepStarted means a next/prev transition began.
	ChangeStepStarted
	// ChangeStepCompleted means a transition delay elapsed and the room changed.
	ChangeStepCompleted
	// ChangeStepCancelled means a pending transition was cancelled.
	ChangeStepCancelled
	// ChangeFlag is a raw SetTransitioning override.
	ChangeFlag
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeJump:
		return "jump"
	case ChangeStepStarted:
		return "step-started"
	case ChangeStepCompleted:
		return "step"
	case ChangeStepCancelled:
		return "step-cancelled"
	case ChangeFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Change describes what happened in a state change.
type Change struct {
	Kind ChangeKind
	From rooms.Room
	To   rooms.Room
}

// Listener observes navigator changes. Listeners run outside the
// navigator's lock and may call back into it.
type Listener func(State, Change)

// Navigator tracks the displayed room and mediates step transitions.
// It is safe for concurrent use.
type Navigator struct {
	clock  clock.Clock
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	gen       uint64
	pending   *Transition
	closed    bool
	listeners []Listener
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithClock sets the clock used to schedule transitions.
func WithClock(c clock.Clock) Option {
	return func(n *Navigator) { n.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// New creates a navigator positioned at the first room.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		clock:  clock.Real{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  State{Current: rooms.First(), Previous: rooms.None},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// OnChange registers a listener for every state change.
func (n *Navigator) OnChange(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

// State returns the current snapshot.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Pending returns the in-flight transition, or nil.
func (n *Navigator) Pending() *Transition {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pending
}

// SetCurrentRoom jumps directly to room. The previous room is always
// updated, even for a self-jump. The transition flag is left alone.
// Identifiers outside the room set are ignored.
func (n *Navigator) SetCurrentRoom(room rooms.Room) bool {
	if !room.Valid() {
		n.logger.Warn("ignoring jump to unknown room", "room", string(room))
		return false
	}

	n.mu.Lock()
	from := n.state.Current
	n.state.Previous = from
	n.state.Current = room
	st := n.state
	n.mu.Unlock()

	n.logger.Debug("room jump", "from", from.String(), "to", room.String())
	n.notify(st, Change{Kind: ChangeJump, From: from, To: room})
	return true
}

// GoToNextRoom starts a transition to the following room. It returns nil
// when a transition is already running or the last room is displayed.
func (n *Navigator) GoToNextRoom() *Transition {
	return n.step(1)
}

// GoToPrevRoom starts a transition to the preceding room. It returns nil
// when a transition is already running or the first room is displayed.
func (n *Navigator) GoToPrevRoom() *Transition {
	return n.step(-1)
}

// SetTransitioning overrides the transition flag. A pending transition
// keeps running and will still complete.
func (n *Navigator) SetTransitioning(v bool) {
	n.mu.Lock()
	n.state.Transitioning = v
	st := n.state
	n.mu.Unlock()

	n.notify(st, Change{Kind: ChangeFlag, From: st.Current, To: st.Current})
}

// Close cancels any pending transition and rejects further steps.
func (n *Navigator) Close() {
	n.mu.Lock()
	n.closed = true
	tr := n.pending
	n.mu.Unlock()

	if tr != nil {
		tr.Cancel()
	}
}

func (n *Navigator) step(delta int) *Transition {
	n.mu.Lock()
	if n.closed || n.state.Transitioning {
		n.mu.Unlock()
		return nil
	}
	from := n.state.Current
	to, ok := rooms.At(rooms.Index(from) + delta)
	if rooms.Index(from) < 0 || !ok {
		n.mu.Unlock()
		return nil
	}

	// A transition left behind by SetTransitioning(false) is superseded.
	superseded := n.pending
	if superseded != nil {
		superseded.timer.Stop()
	}

	n.gen++
	tr := &Transition{
		From: from,
		To:   to,
		nav:  n,
		gen:  n.gen,
		done: make(chan struct{}),
	}
	n.pending = tr
	n.state.Transitioning = true
	tr.timer = n.clock.AfterFunc(TransitionDelay, func() { n.complete(tr) })
	st := n.state
	n.mu.Unlock()

	if superseded != nil {
		superseded.finish(false)
	}

	n.logger.Debug("transition started", "from", from.String(), "to", to.String())
	n.notify(st, Change{Kind: ChangeStepStarted, From: from, To: to})
	return tr
}

func (n *Navigator) complete(tr *Transition) {
	n.mu.Lock()
	if n.pending != tr || n.gen != tr.gen {
		n.mu.Unlock()
		return
	}
	n.pending = nil
	n.state.Previous = tr.From
	n.state.Current = tr.To
	n.state.Transitioning = false
	st := n.state
	n.mu.Unlock()

	tr.finish(true)
	n.logger.Debug("transition completed", "from", tr.From.String(), "to", tr.To.String())
	n.notify(st, Change{Kind: ChangeStepCompleted, From: tr.From, To: tr.To})
}

func (n *Navigator) cancel(tr *Transition) bool {
	n.mu.Lock()
	if n.pending != tr {
		n.mu.Unlock()
		return false
	}
	tr.timer.Stop()
	n.pending = nil
	n.gen++
	n.state.Transitioning = false
	st := n.state
	n.mu.Unlock()

	tr.finish(false)
	n.logger.Debug("transition cancelled", "from", tr.From.String(), "to", tr.To.String())
	n.notify(st, Change{Kind: ChangeStepCancelled, From: tr.From, To: tr.To})
	return true
}

func (n *Navigator) notify(st State, c Change) {
	n.mu.Lock()
	ls := make([]Listener, len(n.listeners))
	copy(ls, n.listeners)
	n.mu.Unlock()

	for _, l := range ls {
		l(st, c)
	}
}

// Transition is a pending step between two rooms.
type Transition struct {
	From rooms.Room
	To   rooms.Room

	nav       *Navigator
	gen       uint64
	timer     clock.Timer
	done      chan struct{}
	once      sync.Once
	completed atomic.Bool
}

// Cancel stops the transition if it is still pending and clears the
// transition flag. It reports whether anything was cancelled.
func (t *Transition) Cancel() bool {
	return t.nav.cancel(t)
}

// Done is closed once the transition completes, is cancelled, or is
// superseded.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Completed reports whether the room change was applied. Only meaningful
// after Done is closed.
func (t *Transition) Completed() bool {
	return t.completed.Load()
}

func (t *Transition) finish(completed bool) {
	t.once.Do(func() {
		t.completed.Store(completed)
		close(t.done)
	})
}
