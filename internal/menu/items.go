package menu

import (
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/paint"
)

// SubmenuHint is shown at the right of items that open a submenu.
const SubmenuHint = "▸"

// Item builds a menu row. action runs on click; the click then reaches the
// document and dismisses the menu. A nil action makes an inert row.
func (m *Manager) Item(label, hint string, action func()) Widget {
	item := m.newItem(label, hint)
	if action != nil {
		item.AddEventListener(dom.EventClick, func(*dom.Event) { action() })
	}
	item.AddEventListener(dom.EventMouseOver, func(ev *dom.Event) {
		hover(item)
		if p := panelOf(item); p != nil && p.openedBy != nil {
			p.closeSubmenu()
		}
	})
	return item
}

// SubmenuItem builds a row that opens items in a nested panel when the
// pointer moves over it. Clicking the row opens the panel too and keeps the
// menu open, for terminals that report no pointer motion.
func (m *Manager) SubmenuItem(label string, items ...Widget) Widget {
	item := m.newItem(label, SubmenuHint)
	children := append([]Widget(nil), items...)
	open := func() {
		hover(item)
		p := panelOf(item)
		if p == nil || (p.openedBy == item && p.RemoveSubmenu != nil) {
			return
		}
		anchor := Point{X: p.Node.Rect.Right(), Y: item.Rect.Y - 1}
		p.openSubmenu(item, children, anchor)
	}
	item.AddEventListener(dom.EventMouseOver, func(*dom.Event) { open() })
	item.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		ev.StopPropagation()
		open()
	})
	return item
}

// Separator builds a divider row.
func (m *Manager) Separator() Widget {
	sep := m.doc.CreateElement("hr")
	sep.AddClass(paint.ClassSeparator)
	return sep
}

func (m *Manager) newItem(label, hint string) *dom.Element {
	item := m.doc.CreateElement("div")
	item.AddClass(paint.ClassItem)
	item.Text = label
	if hint != "" {
		item.SetAttr(paint.AttrHint, hint)
	}
	return item
}

func hover(item *dom.Element) {
	if parent := item.Parent(); parent != nil {
		for _, sibling := range parent.Children() {
			sibling.RemoveClass(paint.ClassHover)
		}
	}
	item.AddClass(paint.ClassHover)
}
