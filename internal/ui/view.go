package ui

import (
	"strings"

	"github.com/atomicstack/tmux-context-menu/internal/paint"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return strings.Join(paint.Document(m.doc, m.width, m.height), "\n")
}
