// Package hover debounces pointer-style focus over a row of targets that
// open a detail card.
package hover

import (
	"sync"
	"time"

	"github.com/abhisek/zerohall/internal/clock"
)

const (
	// HideDelay is how long a target stays shown after focus leaves it.
	HideDelay = 300 * time.Millisecond
	// CardCloseDelay is how long the card stays open after focus leaves it.
	CardCloseDelay = 200 * time.Millisecond
)

// Phase is the tracker's coarse state.
type Phase int

const (
	Idle Phase = iota
	Showing
	PendingHide
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Showing:
		return "showing"
	case PendingHide:
		return "pending-hide"
	default:
		return "unknown"
	}
}

// State is a snapshot of the tracker. Index is -1 when idle.
type State struct {
	Phase       Phase
	Index       int
	CardHovered bool
	Deadline    time.Time
}

// Active returns the shown index, if any.
func (s State) Active() (int, bool) {
	if s.Phase == Idle {
		return -1, false
	}
	return s.Index, true
}

// Tracker is one independent hover target group. It is safe for
// concurrent use; timer callbacks arrive on the clock's goroutine.
type Tracker struct {
	clock clock.Clock

	mu        sync.Mutex
	state     State
	hideTimer clock.Timer
	hideGen   uint64
	cardTimer clock.Timer
	cardGen   uint64
	onChange  func(State)
}

// New creates an idle tracker.
func New(c clock.Clock) *Tracker {
	if c == nil {
		c = clock.Real{}
	}
	return &Tracker{clock: c, state: State{Phase: Idle, Index: -1}}
}

// OnChange sets the callback fired after every visible state change.
func (t *Tracker) OnChange(fn func(State)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = fn
}

// State returns the current snapshot.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Enter shows target i, cancelling any pending hide.
func (t *Tracker) Enter(i int) {
	t.mu.Lock()
	t.stopHide()
	t.state.Phase = Showing
	t.state.Index = i
	t.state.Deadline = time.Time{}
	t.emit()
}

// Leave schedules target i to hide after HideDelay. Leaving a target
// that is not active is ignored.
func (t *Tracker) Leave(i int) {
	t.mu.Lock()
	if t.state.Phase == Idle || t.state.Index != i {
		t.mu.Unlock()
		return
	}
	t.stopHide()
	t.hideGen++
	gen := t.hideGen
	t.state.Phase = PendingHide
	t.state.Deadline = t.clock.Now().Add(HideDelay)
	t.hideTimer = t.clock.AfterFunc(HideDelay, func() { t.hide(gen, i) })
	t.emit()
}

// CardEnter marks the detail card as hovered and cancels a pending card close.
func (t *Tracker) CardEnter() {
	t.mu.Lock()
	t.stopCard()
	t.state.CardHovered = true
	t.emit()
}

// CardLeave clears the card flag and closes everything after
// CardCloseDelay unless the card is entered again.
func (t *Tracker) CardLeave() {
	t.mu.Lock()
	t.stopCard()
	t.cardGen++
	gen := t.cardGen
	t.state.CardHovered = false
	t.cardTimer = t.clock.AfterFunc(CardCloseDelay, func() { t.closeCard(gen) })
	t.emit()
}

// ForceClose hides immediately and clears the card flag.
func (t *Tracker) ForceClose() {
	t.mu.Lock()
	t.clear()
	t.emit()
}

// Reset drops all state and timers. Used when the owning room goes
// inactive.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.clear()
	t.emit()
}

func (t *Tracker) hide(gen uint64, i int) {
	t.mu.Lock()
	if gen != t.hideGen {
		t.mu.Unlock()
		return
	}
	t.hideTimer = nil
	if t.state.Index != i || t.state.Phase != PendingHide {
		t.mu.Unlock()
		return
	}
	if t.state.CardHovered {
		// The card holds the target open; CardLeave will close it.
		t.state.Phase = Showing
		t.state.Deadline = time.Time{}
		t.emit()
		return
	}
	t.state = State{Phase: Idle, Index: -1}
	t.emit()
}

func (t *Tracker) closeCard(gen uint64) {
	t.mu.Lock()
	if gen != t.cardGen || t.state.CardHovered {
		t.mu.Unlock()
		return
	}
	t.cardTimer = nil
	t.clear()
	t.emit()
}

// clear resets state and timers. Caller must hold t.mu.
func (t *Tracker) clear() {
	t.stopHide()
	t.stopCard()
	t.state = State{Phase: Idle, Index: -1}
}

// Caller must hold t.mu.
func (t *Tracker) stopHide() {
	if t.hideTimer != nil {
		t.hideTimer.Stop()
		t.hideTimer = nil
	}
	t.hideGen++
}

// Caller must hold t.mu.
func (t *Tracker) stopCard() {
	if t.cardTimer != nil {
		t.cardTimer.Stop()
		t.cardTimer = nil
	}
	t.cardGen++
}

// emit releases t.mu and notifies the listener with the new state.
func (t *Tracker) emit() {
	st := t.state
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
