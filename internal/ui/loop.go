package ui

import (
	"context"

	"github.com/atomicstack/tmux-context-menu/internal/loop"
	tea "github.com/charmbracelet/bubbletea"
)

// loopReadyMsg asks the model to run a loop turn. waiter marks the message
// produced by the blocking waiter, which must be re-armed once handled.
type loopReadyMsg struct {
	waiter bool
}

func waitForLoop(ctx context.Context, l *loop.Loop) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-l.Ready():
			return loopReadyMsg{waiter: true}
		case <-ctx.Done():
			return nil
		}
	}
}

func pumpLoop() tea.Msg {
	return loopReadyMsg{}
}

func (m *Model) handleLoopReadyMsg(msg tea.Msg) tea.Cmd {
	ready, ok := msg.(loopReadyMsg)
	if !ok {
		return nil
	}
	m.loop.RunPending()
	if ready.waiter {
		return waitForLoop(m.ctx, m.loop)
	}
	return nil
}
