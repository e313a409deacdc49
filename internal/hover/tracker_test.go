package hover

import (
	"testing"
	"time"

	"github.com/abhisek/zerohall/internal/clock"
)

func newTestTracker() (*Tracker, *clock.Fake) {
	c := clock.NewFake(time.Unix(0, 0))
	return New(c), c
}

func assertActive(t *testing.T, tr *Tracker, want int) {
	t.Helper()
	got, ok := tr.State().Active()
	if want < 0 {
		if ok {
			t.Errorf("active = %d, want idle", got)
		}
		return
	}
	if !ok || got != want {
		t.Errorf("active = %d (%v), want %d", got, ok, want)
	}
}

func TestEnterLeave(t *testing.T) {
	tr, c := newTestTracker()

	tr.Enter(1)
	assertActive(t, tr, 1)

	tr.Leave(1)
	if tr.State().Phase != PendingHide {
		t.Fatalf("phase = %v, want pending-hide", tr.State().Phase)
	}
	c.Advance(HideDelay - time.Millisecond)
	assertActive(t, tr, 1)

	c.Advance(time.Millisecond)
	assertActive(t, tr, -1)
}

func TestReenterCancelsHide(t *testing.T) {
	tr, c := newTestTracker()
	tr.Enter(0)
	tr.Leave(0)
	c.Advance(100 * time.Millisecond)
	tr.Enter(0)

	c.Advance(time.Second)
	assertActive(t, tr, 0)
	if tr.State().Phase != Showing {
		t.Errorf("phase = %v, want showing", tr.State().Phase)
	}
}

func TestMoveToNeighbour(t *testing.T) {
	tr, c := newTestTracker()
	tr.Enter(0)
	tr.Leave(0)
	tr.Enter(2)
	// A stale leave for the old target is ignored.
	tr.Leave(0)

	c.Advance(time.Second)
	assertActive(t, tr, 2)
}

func TestLeaveInactiveIgnored(t *testing.T) {
	tr, c := newTestTracker()
	tr.Leave(3)
	if tr.State().Phase != Idle {
		t.Error("leave on idle tracker changed phase")
	}
	if c.Pending() != 0 {
		t.Errorf("pending timers = %d", c.Pending())
	}
}

func TestCardHoldsTargetOpen(t *testing.T) {
	tr, c := newTestTracker()
	tr.Enter(1)
	tr.Leave(1)
	tr.CardEnter()

	c.Advance(time.Second)
	assertActive(t, tr, 1)

	tr.CardLeave()
	c.Advance(CardCloseDelay - time.Millisecond)
	assertActive(t, tr, 1)
	c.Advance(time.Millisecond)
	assertActive(t, tr, -1)
	if tr.State().CardHovered {
		t.Error("card flag should be cleared")
	}
}

func TestCardReenterCancelsClose(t *testing.T) {
	tr, c := newTestTracker()
	tr.Enter(2)
	tr.CardEnter()
	tr.CardLeave()
	c.Advance(100 * time.Millisecond)
	tr.CardEnter()

	c.Advance(time.Second)
	assertActive(t, tr, 2)
}

func TestForceCloseAndReset(t *testing.T) {
	tests := []struct {
		name  string
		close func(*Tracker)
	}{
		{"force close", (*Tracker).ForceClose},
		{"reset", (*Tracker).Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, c := newTestTracker()
			tr.Enter(0)
			tr.CardEnter()
			tr.Leave(0)

			tt.close(tr)
			assertActive(t, tr, -1)
			if tr.State().CardHovered {
				t.Error("card flag survived")
			}
			if c.Pending() != 0 {
				t.Errorf("pending timers = %d", c.Pending())
			}
		})
	}
}

func TestOnChange(t *testing.T) {
	tr, c := newTestTracker()
	var phases []Phase
	tr.OnChange(func(s State) { phases = append(phases, s.Phase) })

	tr.Enter(0)
	tr.Leave(0)
	c.Advance(HideDelay)

	want := []Phase{Showing, PendingHide, Idle}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phases[%d] = %v, want %v", i, phases[i], want[i])
		}
	}
}
