package menu

import (
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/logging"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
)

// Handler is the right-click entry point. It suppresses the default action,
// collects contributions from the event target and shows them at the
// pointer one loop turn after collection settles, once the triggering event
// has finished bubbling. A timed-out collection shows nothing.
func (m *Manager) Handler(ev *dom.Event) {
	ev.PreventDefault()
	target := ev.Target
	if target == nil {
		target = m.doc.Body
	}
	x, y := ev.X, ev.Y
	events.Trigger.ContextMenu(target.String(), x, y)
	m.RequestContributions(target, func(items []Widget, err error) {
		if err != nil {
			logging.Warnf("context menu for %s: %v", target, err)
			return
		}
		m.loop.Defer(func() { m.Show(items, x, y) })
	})
}

// Bind registers Handler for right-clicks anywhere in the document.
func (m *Manager) Bind() dom.Handle {
	return m.doc.AddEventListener(dom.EventContextMenu, m.Handler)
}

// BindDropdown opens items below element when it is clicked.
func (m *Manager) BindDropdown(element *dom.Element, items []Widget) dom.Handle {
	fixed := append([]Widget(nil), items...)
	return m.BindDropdownFunc(element, func() []Widget { return fixed })
}

// BindDropdownFunc opens the result of factory below element when it is
// clicked. There is no collection walk; factory runs when the menu opens.
func (m *Manager) BindDropdownFunc(element *dom.Element, factory func() []Widget) dom.Handle {
	return element.AddEventListener(dom.EventClick, func(*dom.Event) {
		rect := element.BoundingRect()
		events.Trigger.Dropdown(element.String(), rect.Left(), rect.Bottom())
		m.loop.Defer(func() { m.Show(factory(), rect.Left(), rect.Bottom()) })
	})
}
