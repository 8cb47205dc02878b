package state

import "github.com/atomicstack/tmux-context-menu/internal/tmux"

// SessionStore keeps the latest session snapshot seen by the UI.
type SessionStore interface {
	Entries() []tmux.Session
	SetEntries([]tmux.Session)
	Current() string
	SetCurrent(string)
	Find(name string) (tmux.Session, bool)
	Err() error
	SetErr(error)
}

type sessionStore struct {
	entries []tmux.Session
	current string
	err     error
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

func (s *sessionStore) Entries() []tmux.Session {
	return cloneSessions(s.entries)
}

func (s *sessionStore) SetEntries(entries []tmux.Session) {
	s.entries = cloneSessions(entries)
}

func (s *sessionStore) Current() string {
	return s.current
}

func (s *sessionStore) SetCurrent(current string) {
	s.current = current
}

func (s *sessionStore) Find(name string) (tmux.Session, bool) {
	for _, entry := range s.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return tmux.Session{}, false
}

// Err is the error of the last failed poll, cleared by the next success.
func (s *sessionStore) Err() error {
	return s.err
}

func (s *sessionStore) SetErr(err error) {
	s.err = err
}

func cloneSessions(entries []tmux.Session) []tmux.Session {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]tmux.Session, len(entries))
	copy(dup, entries)
	for i := range dup {
		dup[i].Clients = append([]string(nil), entries[i].Clients...)
	}
	return dup
}
