package dispatcher

import (
	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/state"
	"github.com/atomicstack/tmux-context-menu/internal/tmux"
)

type Result struct {
	SessionsUpdated bool
	Failed          bool
}

// Dispatcher applies backend events to the stores the document reads.
type Dispatcher struct {
	sessions state.SessionStore
}

func New(s state.SessionStore) *Dispatcher {
	return &Dispatcher{sessions: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindSessions:
		if evt.Err != nil {
			d.sessions.SetErr(evt.Err)
			res.Failed = true
			return res
		}
		if snapshot, ok := evt.Data.(tmux.SessionSnapshot); ok {
			d.sessions.SetEntries(snapshot.Sessions)
			d.sessions.SetCurrent(snapshot.Current)
			d.sessions.SetErr(nil)
			res.SessionsUpdated = true
		}
	}
	return res
}
