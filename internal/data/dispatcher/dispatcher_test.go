package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/state"
	"github.com/atomicstack/tmux-context-menu/internal/tmux"
)

func TestHandleSessionsSnapshot(t *testing.T) {
	store := state.NewSessionStore()
	store.SetErr(errors.New("stale"))
	d := New(store)
	res := d.Handle(backend.Event{
		Kind: backend.KindSessions,
		Data: tmux.SessionSnapshot{Sessions: []tmux.Session{{Name: "dev"}}, Current: "dev"},
	})
	if !res.SessionsUpdated || res.Failed {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(store.Entries()) != 1 || store.Current() != "dev" || store.Err() != nil {
		t.Fatalf("store not updated: entries=%v current=%q err=%v", store.Entries(), store.Current(), store.Err())
	}
}

func TestHandleErrorKeepsEntries(t *testing.T) {
	store := state.NewSessionStore()
	store.SetEntries([]tmux.Session{{Name: "dev"}})
	d := New(store)
	boom := errors.New("no server")
	res := d.Handle(backend.Event{Kind: backend.KindSessions, Err: boom})
	if !res.Failed || res.SessionsUpdated {
		t.Fatalf("unexpected result %+v", res)
	}
	if !errors.Is(store.Err(), boom) || len(store.Entries()) != 1 {
		t.Fatalf("error should be recorded without dropping entries")
	}
}

func TestHandleIgnoresUnexpectedData(t *testing.T) {
	d := New(state.NewSessionStore())
	if res := d.Handle(backend.Event{Kind: backend.KindSessions, Data: "bogus"}); res.SessionsUpdated {
		t.Fatalf("unexpected update from bogus payload")
	}
}
