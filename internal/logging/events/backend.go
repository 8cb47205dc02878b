package events

import "github.com/atomicstack/tmux-context-menu/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Error(kind string, err error) {
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (BackendTracer) Snapshot(sessions int) {
	logging.Trace("backend.snapshot", map[string]interface{}{"sessions": sessions})
}
