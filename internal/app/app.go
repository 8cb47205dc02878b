package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/tmux"
	"github.com/atomicstack/tmux-context-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	PollInterval time.Duration
	MouseMotion  bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := backend.NewWatcher(ctx, socketPath, cfg.PollInterval)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		SocketPath:  socketPath,
		ClientID:    tmux.CurrentClientID(socketPath),
		Width:       cfg.Width,
		Height:      cfg.Height,
		MouseMotion: cfg.MouseMotion,
		Watcher:     watcher,
	})
	program := tea.NewProgram(model, programOptions(cfg)...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func programOptions(cfg Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseMotion {
		return append(opts, tea.WithMouseAllMotion())
	}
	return append(opts, tea.WithMouseCellMotion())
}
