package events

import "github.com/atomicstack/tmux-context-menu/internal/logging"

type TriggerTracer struct{}

var Trigger = TriggerTracer{}

func (TriggerTracer) ContextMenu(target string, x, y int) {
	logging.Trace("trigger.contextmenu", map[string]interface{}{"target": target, "x": x, "y": y})
}

func (TriggerTracer) Dropdown(target string, x, y int) {
	logging.Trace("trigger.dropdown", map[string]interface{}{"target": target, "x": x, "y": y})
}
