package testhelpers

import (
	"sort"
	"time"

	"github.com/otdb/otdb-terminal/pkg/form"
)

// ManualLoop is a form.Loop driven by hand: time only moves on Advance and
// background work only completes on Resolve. Everything runs on the
// calling goroutine, which keeps tests deterministic.
type ManualLoop struct {
	now    time.Duration
	timers []*manualTimer
	work   []func() func()
}

var _ form.Loop = (*ManualLoop)(nil)

type manualTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualLoop creates a loop at time zero.
func NewManualLoop() *ManualLoop {
	return &ManualLoop{}
}

// AfterFunc implements form.Loop.
func (l *ManualLoop) AfterFunc(d time.Duration, fn func()) form.Timer {
	t := &manualTimer{at: l.now + d, fn: fn}
	l.timers = append(l.timers, t)
	return t
}

// Go implements form.Loop. The work is queued until Resolve.
func (l *ManualLoop) Go(work func() func()) {
	l.work = append(l.work, work)
}

// Advance moves the clock forward by d and fires every timer that is due,
// in deadline order.
func (l *ManualLoop) Advance(d time.Duration) {
	target := l.now + d
	for {
		next := l.nextDue(target)
		if next == nil {
			break
		}
		l.now = next.at
		next.fired = true
		next.fn()
	}
	l.now = target
}

func (l *ManualLoop) nextDue(target time.Duration) *manualTimer {
	var due []*manualTimer
	for _, t := range l.timers {
		if !t.stopped && !t.fired && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	return due[0]
}

// Resolve completes all queued background work and applies the results.
// It returns how many jobs completed.
func (l *ManualLoop) Resolve() int {
	work := l.work
	l.work = nil
	for _, w := range work {
		if apply := w(); apply != nil {
			apply()
		}
	}
	return len(work)
}

// Settle advances past the debounce delay and resolves the searches it
// dispatched.
func (l *ManualLoop) Settle() {
	l.Advance(form.DebounceDelay)
	l.Resolve()
}

// PendingTimers counts timers that are neither fired nor stopped.
func (l *ManualLoop) PendingTimers() int {
	n := 0
	for _, t := range l.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// InFlight counts background jobs waiting for Resolve.
func (l *ManualLoop) InFlight() int {
	return len(l.work)
}
