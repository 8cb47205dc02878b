package menu

import (
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/paint"
)

// Panel is a floating list of widgets. It may own one nested submenu
// through RemoveSubmenu.
type Panel struct {
	Node *dom.Element
	// RemoveSubmenu closes the nested panel opened from this one.
	RemoveSubmenu func()

	m        *Manager
	openedBy *dom.Element
	closed   bool
}

// ActiveMenu is the open context menu. At most one exists per document.
type ActiveMenu struct {
	Panel

	dismissal []dom.Handle
}

// Show opens a menu with items at (x, y), replacing any open menu.
func (m *Manager) Show(items []Widget, x, y int) *ActiveMenu {
	m.supersede()

	node := m.newPanelNode(items)
	node.ID = ContextMenuID
	node.AddClass(ClassContextMenu)
	menu := &ActiveMenu{Panel: Panel{Node: node, m: m}}
	node.Data = &menu.Panel
	m.doc.Body.Append(node)
	menu.bindDismissal()
	m.active = menu

	placement := m.place(node, Point{X: x, Y: y})
	events.Menu.Open(len(items), x, y, string(placement.Horizontal), string(placement.Vertical))
	return menu
}

func (m *Manager) supersede() {
	if m.active != nil {
		events.Menu.Supersede(m.active.Node.String())
		m.active.close(events.CloseReasonSupersede)
	}
	if stale := m.doc.GetElementByID(ContextMenuID); stale != nil {
		events.Menu.Supersede(stale.String())
		stale.Remove()
	}
}

func (m *Manager) newPanelNode(items []Widget) *dom.Element {
	node := m.doc.CreateElement("div")
	node.AddClass(paint.ClassPanel)
	for _, item := range items {
		if item != nil {
			node.Append(item)
		}
	}
	return node
}

func (m *Manager) place(node *dom.Element, anchor Point) Placement {
	w, h := m.geometry.ComputedSize(node)
	vw, vh := m.geometry.MaxSize()
	placement := Place(anchor, Size{W: w, H: h}, Size{W: vw, H: vh})
	placement.Apply(m.geometry, node, anchor)
	return placement
}

func (a *ActiveMenu) bindDismissal() {
	root := a.m.doc.Element
	a.dismissal = []dom.Handle{
		root.AddEventListener(dom.EventClick, func(*dom.Event) {
			a.close(events.CloseReasonClick)
		}),
		root.AddEventListener(dom.EventContextMenu, func(*dom.Event) {
			a.close(events.CloseReasonContextMenu)
		}),
		root.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
			if ev.Key != dom.KeyEscape {
				return
			}
			a.close(events.CloseReasonEscape)
		}),
	}
}

// Close tears the menu down: nested submenus first, then the panel, then the
// dismissal listeners. Further calls do nothing.
func (a *ActiveMenu) Close() {
	a.close(events.CloseReasonCall)
}

func (a *ActiveMenu) close(reason events.CloseReason) {
	if a.closed {
		return
	}
	a.closed = true
	events.Menu.Close(reason)
	defer a.release()
	a.closeSubmenu()
}

func (a *ActiveMenu) release() {
	a.Node.Remove()
	for _, h := range a.dismissal {
		h.Remove()
	}
	a.dismissal = nil
	if a.m.active == a {
		a.m.active = nil
	}
}

// Closed reports whether the panel was torn down.
func (p *Panel) Closed() bool {
	return p.closed
}

// Close removes the panel and any submenu it owns. Further calls do
// nothing.
func (p *Panel) Close() {
	if p.closed {
		return
	}
	p.closed = true
	defer p.Node.Remove()
	p.closeSubmenu()
}

func (p *Panel) closeSubmenu() {
	fn := p.RemoveSubmenu
	p.RemoveSubmenu = nil
	p.openedBy = nil
	if fn != nil {
		fn()
	}
}

// OpenSubmenu replaces the panel's submenu with a new panel of items
// placed at anchor.
func (p *Panel) OpenSubmenu(items []Widget, anchor Point) *Panel {
	return p.openSubmenu(nil, items, anchor)
}

func (p *Panel) openSubmenu(from *dom.Element, items []Widget, anchor Point) *Panel {
	p.closeSubmenu()
	m := p.m
	node := m.newPanelNode(items)
	node.AddClass(ClassSubmenu)
	sub := &Panel{Node: node, m: m}
	node.Data = sub
	m.doc.Body.Append(node)
	m.place(node, anchor)
	p.RemoveSubmenu = sub.Close
	p.openedBy = from
	events.Menu.Submenu(len(items), anchor.X, anchor.Y)
	return sub
}

// panelOf returns the panel an item was appended to.
func panelOf(item *dom.Element) *Panel {
	parent := item.Parent()
	if parent == nil {
		return nil
	}
	p, _ := parent.Data.(*Panel)
	return p
}
