// Package loop runs document work on a single goroutine. Tasks posted from
// anywhere are queued and executed in order by whoever owns the loop (the
// Bubble Tea update goroutine in the application, the test in tests).
package loop

import (
	"context"
	"sync"
	"time"
)

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop cancels the timer. It reports false when the callback already
	// fired or the timer was stopped before.
	Stop() bool
}

// Clock schedules callbacks after a delay. The callback may run on any
// goroutine.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RealClock is the wall-clock implementation backed by time.AfterFunc.
var RealClock Clock = realClock{}

// Loop is a FIFO task queue drained in turns.
type Loop struct {
	clock Clock

	mu    sync.Mutex
	queue []func()
	ready chan struct{}
}

// New creates a loop using clock for timers. A nil clock means RealClock.
func New(clock Clock) *Loop {
	if clock == nil {
		clock = RealClock
	}
	return &Loop{
		clock: clock,
		ready: make(chan struct{}, 1),
	}
}

// Post queues fn for the next turn. Safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Defer queues fn behind everything already posted, so the current turn
// (including any event dispatch in progress) completes first. It is the
// setTimeout(fn, 0) of the loop.
func (l *Loop) Defer(fn func()) {
	l.Post(fn)
}

// AfterFunc posts fn to the loop once d has elapsed on the loop's clock.
// Stopping the returned timer after it fired but before the loop ran fn
// does not cancel fn; callers that need that guarantee keep their own flag.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	return l.clock.AfterFunc(d, func() { l.Post(fn) })
}

// Ready is signalled whenever tasks are waiting. The signal is level
// triggered over a buffer of one, so a receiver must call RunPending after
// every receive.
func (l *Loop) Ready() <-chan struct{} {
	return l.ready
}

// Pending reports how many tasks are queued.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending runs the tasks queued at the time of the call and returns how
// many ran. Tasks posted while they run wait for the next turn.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Drain runs turns until the queue is empty, bounded by maxTurns so a task
// that keeps re-posting itself cannot spin forever.
func (l *Loop) Drain(maxTurns int) int {
	total := 0
	for i := 0; i < maxTurns; i++ {
		n := l.RunPending()
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// Wait blocks until at least one task is queued or ctx ends, then runs a
// turn.
func (l *Loop) Wait(ctx context.Context) error {
	for {
		if l.Pending() > 0 {
			l.RunPending()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.ready:
		}
	}
}
