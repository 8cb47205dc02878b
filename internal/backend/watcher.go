package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/tmux"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSessions Kind = iota
)

// Event conveys updated data or an error from a backend poll. Data is a
// tmux.SessionSnapshot for KindSessions.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

var fetchSessions = tmux.FetchSessions

// Watcher polls tmux at a fixed interval and publishes events. Refresh
// forces an extra poll.
type Watcher struct {
	socketPath string
	interval   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls tmux every interval until
// ctx ends or Stop is called.
func NewWatcher(ctx context.Context, socketPath string, interval time.Duration) *Watcher {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		socketPath: socketPath,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
		refresh:    make(chan struct{}, 1),
	}

	w.startSessionPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events. It is closed once every
// poller has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks the poller for an immediate fetch. Requests made while one
// is already pending are merged.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startSessionPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindSessions, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		snap, err := fetchSessions(w.socketPath)
		if err != nil {
			events.Backend.Error("sessions", err)
			return nil, err
		}
		events.Backend.Snapshot(len(snap.Sessions))
		return snap, nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		case <-w.refresh:
		}
		if !emit() {
			return
		}
	}
}
