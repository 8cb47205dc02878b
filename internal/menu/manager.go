package menu

import (
	"context"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/geometry"
	"github.com/atomicstack/tmux-context-menu/internal/loop"
)

// Manager owns the context menu of one document. All methods must be called
// on the loop goroutine.
type Manager struct {
	doc      *dom.Document
	loop     *loop.Loop
	geometry geometry.Adapter
	ctx      context.Context

	active *ActiveMenu
}

// NewManager wires a manager to doc. ctx is handed to asynchronous
// contributors and should live as long as the application.
func NewManager(ctx context.Context, doc *dom.Document, l *loop.Loop, g geometry.Adapter) *Manager {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Manager{
		doc:      doc,
		loop:     l,
		geometry: g,
		ctx:      ctx,
	}
}

// Document returns the managed document.
func (m *Manager) Document() *dom.Document {
	return m.doc
}

// Active returns the open menu, or nil.
func (m *Manager) Active() *ActiveMenu {
	return m.active
}
