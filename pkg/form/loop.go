package form

import "time"

// Timer is a scheduled callback that can still be cancelled.
type Timer interface {
	Stop() bool
}

// Loop owns the goroutine that mutates a form. Every callback handed to
// AfterFunc, and every closure returned from Go's work, must run on that
// goroutine so that inputs never need locking.
type Loop interface {
	// AfterFunc runs fn on the loop once d has elapsed, unless stopped first.
	AfterFunc(d time.Duration, fn func()) Timer
	// Go runs work off the loop and then applies the closure it returns
	// (if any) on the loop.
	Go(work func() func())
}

// QueueLoop is a Loop backed by a task channel. The owner drains Tasks()
// and runs each task; the TUI does this from its Update function.
type QueueLoop struct {
	tasks chan func()
}

// NewQueueLoop creates a QueueLoop with a small buffer.
func NewQueueLoop() *QueueLoop {
	return &QueueLoop{tasks: make(chan func(), 64)}
}

// AfterFunc implements Loop.
func (q *QueueLoop) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() { q.tasks <- fn })
}

// Go implements Loop.
func (q *QueueLoop) Go(work func() func()) {
	go func() {
		if apply := work(); apply != nil {
			q.tasks <- apply
		}
	}()
}

// Tasks returns the channel of work that must run on the loop.
func (q *QueueLoop) Tasks() <-chan func() {
	return q.tasks
}

// RunPending runs every task that is ready without blocking and returns
// how many ran.
func (q *QueueLoop) RunPending() int {
	n := 0
	for {
		select {
		case task := <-q.tasks:
			task()
			n++
		default:
			return n
		}
	}
}
