package tmux

import (
	"fmt"
	"sort"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// SessionWindows lists the windows of one session by index.
func SessionWindows(socketPath, session string) ([]Window, error) {
	session = strings.TrimSpace(session)
	if session == "" {
		return nil, ErrSessionRequired
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	all, err := client.ListAllWindows()
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	var out []Window
	for _, w := range all {
		if w == nil || !inSession(w, session) {
			continue
		}
		out = append(out, Window{
			ID:      fmt.Sprintf("%s:%d", session, w.Index),
			Session: session,
			Index:   w.Index,
			Name:    w.Name,
			Active:  w.Active,
			Label:   fmt.Sprintf("%d: %s", w.Index, w.Name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

// SelectWindow makes target ("session:index") the active window.
func SelectWindow(socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("window target required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	if err := client.SelectWindow(target); err != nil {
		return fmt.Errorf("select %s: %w", target, err)
	}
	return nil
}

func inSession(w *gotmux.Window, session string) bool {
	if firstSession(w) == session {
		return true
	}
	for _, name := range w.LinkedSessionsList {
		if name == session {
			return true
		}
	}
	return false
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return w.Session
}
