package events

import "github.com/atomicstack/tmux-context-menu/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(id string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id})
}

func (CommandTracer) Skip(id string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id})
}

func (CommandTracer) NoOp(id string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id})
}

func (CommandTracer) Result(id string, err error) {
	payload := map[string]interface{}{"id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
