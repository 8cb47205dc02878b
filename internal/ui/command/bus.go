package command

import (
	"sync"

	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Result is the message an action produces. Info replaces the status line;
// Err is shown and logged instead. Quit ends the program.
type Result struct {
	ID   string
	Info string
	Err  error
	Quit bool
}

// Request encapsulates an action invocation.
type Request struct {
	ID  string
	Run func() Result
}

// Bus coordinates the execution of menu actions. Item actions run on the
// document loop and cannot return a tea.Cmd themselves, so they Queue
// requests and the UI collects them with Drain after every update.
type Bus struct {
	mu      sync.Mutex
	pending []tea.Cmd
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID)
			return nil
		}
		res := req.Run()
		if res.ID == "" {
			res.ID = req.ID
		}
		if res.Info == "" && res.Err == nil && !res.Quit {
			events.Command.NoOp(req.ID)
		}
		events.Command.Result(req.ID, res.Err)
		return res
	}
}

// Queue schedules req for the next Drain.
func (b *Bus) Queue(req Request) {
	cmd := b.Execute(req)
	b.mu.Lock()
	b.pending = append(b.pending, cmd)
	b.mu.Unlock()
}

// Drain returns and forgets the queued commands.
func (b *Bus) Drain() []tea.Cmd {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}
