package ui

import (
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Escape key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Escape):
		if m.manager.Active() == nil {
			return m.quit("escape")
		}
		m.dispatchKey(dom.KeyEscape)
	case key.Matches(keyMsg, keys.Quit):
		return m.quit(keyMsg.String())
	default:
		m.dispatchKey(keyMsg.String())
	}
	return nil
}

func (m *Model) dispatchKey(name string) {
	m.doc.Body.DispatchEvent(&dom.Event{
		Type:     dom.EventKeyDown,
		Bubbles:  true,
		Composed: true,
		Key:      name,
	})
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Action {
	case tea.MouseActionPress:
		switch mouse.Button {
		case tea.MouseButtonRight:
			m.dispatchPointer(dom.EventContextMenu, mouse.X, mouse.Y, dom.ButtonRight)
		case tea.MouseButtonLeft:
			m.dispatchPointer(dom.EventClick, mouse.X, mouse.Y, dom.ButtonLeft)
		}
	case tea.MouseActionMotion:
		if m.mouseMotion {
			m.hoverAt(mouse.X, mouse.Y)
		}
	}
	return nil
}

func (m *Model) dispatchPointer(typ string, x, y int, button dom.MouseButton) {
	target := m.doc.ElementAt(x, y)
	target.DispatchEvent(&dom.Event{
		Type:     typ,
		Bubbles:  true,
		Composed: true,
		X:        x,
		Y:        y,
		Button:   button,
	})
}

// hoverAt sends mouseover only when the pointer enters a different element.
func (m *Model) hoverAt(x, y int) {
	target := m.doc.ElementAt(x, y)
	if target == m.hovered && target.IsConnected() {
		return
	}
	m.hovered = target
	target.DispatchEvent(&dom.Event{
		Type:     dom.EventMouseOver,
		Bubbles:  true,
		Composed: true,
		X:        x,
		Y:        y,
	})
}
