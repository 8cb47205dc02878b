package events

import "github.com/atomicstack/tmux-context-menu/internal/logging"

type MenuTracer struct{}

type CloseReason string

const (
	CloseReasonClick       CloseReason = "click"
	CloseReasonContextMenu CloseReason = "contextmenu"
	CloseReasonEscape      CloseReason = "escape"
	CloseReasonSupersede   CloseReason = "supersede"
	CloseReasonCall        CloseReason = "call"
)

var Menu = MenuTracer{}

func (MenuTracer) Open(items, x, y int, horizontal, vertical string) {
	logging.Trace("menu.open", map[string]interface{}{
		"items":      items,
		"x":          x,
		"y":          y,
		"horizontal": horizontal,
		"vertical":   vertical,
	})
}

func (MenuTracer) Close(reason CloseReason) {
	logging.Trace("menu.close", map[string]interface{}{"reason": string(reason)})
}

func (MenuTracer) Supersede(id string) {
	logging.Trace("menu.supersede", map[string]interface{}{"id": id})
}

func (MenuTracer) Submenu(items, x, y int) {
	logging.Trace("menu.submenu", map[string]interface{}{"items": items, "x": x, "y": y})
}
