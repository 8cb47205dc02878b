package events

import (
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/logging"
)

type CollectTracer struct{}

var Collect = CollectTracer{}

func (CollectTracer) Start(id uint64, origin string, depth int) {
	logging.Trace("menu.collect.start", map[string]interface{}{"request": id, "origin": origin, "depth": depth})
}

func (CollectTracer) Async(id uint64, node string) {
	logging.Trace("menu.collect.async", map[string]interface{}{"request": id, "node": node})
}

func (CollectTracer) AsyncError(id uint64, node string, err error) {
	logging.Trace("menu.collect.async.error", map[string]interface{}{"request": id, "node": node, "error": err.Error()})
}

func (CollectTracer) Swallowed(id uint64, node string) {
	logging.Trace("menu.collect.swallowed", map[string]interface{}{"request": id, "node": node})
}

func (CollectTracer) Resolve(id uint64, items int) {
	logging.Trace("menu.collect.resolve", map[string]interface{}{"request": id, "items": items})
}

func (CollectTracer) Timeout(id uint64, after time.Duration) {
	logging.Trace("menu.collect.timeout", map[string]interface{}{"request": id, "after": after.String()})
}

func (CollectTracer) Dropped(id uint64, node string) {
	logging.Trace("menu.collect.dropped", map[string]interface{}{"request": id, "node": node})
}
