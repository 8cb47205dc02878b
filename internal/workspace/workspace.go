// Package workspace builds the session browser document and registers its
// menu contributors.
package workspace

import (
	"fmt"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/atomicstack/tmux-context-menu/internal/paint"
	"github.com/atomicstack/tmux-context-menu/internal/state"
	"github.com/atomicstack/tmux-context-menu/internal/ui/command"
	"github.com/charmbracelet/x/ansi"
)

const (
	title         = "tmux sessions"
	dropdownLabel = "[sessions ▾]"

	attrSession = "session"
)

// Deps are the collaborators item actions need.
type Deps struct {
	SocketPath string
	// ClientID is the tmux client to switch; empty means the most recent.
	ClientID string
	Sessions state.SessionStore
	Bus      *command.Bus
	// Refresh asks the backend for a new snapshot.
	Refresh func()
}

// Workspace owns the document content outside the menu.
type Workspace struct {
	m    *menu.Manager
	doc  *dom.Document
	deps Deps

	header     *dom.Element
	heading    *dom.Element
	dropdown   *dom.Element
	list       *dom.Element
	statusHost *dom.Element
	statusText *dom.Element

	width  int
	height int
}

// New builds the document on m's document and binds every contributor.
func New(m *menu.Manager, deps Deps) *Workspace {
	doc := m.Document()
	w := &Workspace{m: m, doc: doc, deps: deps}

	w.header = doc.CreateElement("header")
	w.heading = doc.CreateElement("h1")
	w.heading.AddClass(paint.ClassHeader)
	w.heading.Text = title
	w.dropdown = doc.CreateElement("button")
	w.dropdown.AddClass(paint.ClassButton)
	w.dropdown.Text = dropdownLabel
	w.header.Append(w.heading, w.dropdown)

	w.list = doc.CreateElement("ul")
	w.list.ID = "sessions"

	w.statusHost = doc.CreateElement("footer")
	w.statusHost.ID = "status"
	w.statusText = doc.CreateElement("span")
	w.statusText.AddClass(paint.ClassStatus)
	w.statusHost.AttachShadow().Append(w.statusText)

	doc.Body.Append(w.header, w.list, w.statusHost)

	w.bindContributors()
	w.Refresh()
	return w
}

// Layout assigns rects for a width x height viewport.
func (w *Workspace) Layout(width, height int) {
	w.width, w.height = width, height
	w.doc.Body.Rect = dom.Rect{W: width, H: height}
	w.header.Rect = dom.Rect{W: width, H: 1}
	w.heading.Rect = dom.Rect{X: 1, W: ansi.StringWidth(title), H: 1}
	bw := ansi.StringWidth(dropdownLabel)
	w.dropdown.Rect = dom.Rect{X: max(width-bw-1, 0), W: bw, H: 1}

	listHeight := max(height-3, 0)
	w.list.Rect = dom.Rect{Y: 2, W: width, H: listHeight}
	for i, row := range w.list.Children() {
		row.Rect = dom.Rect{X: 2, Y: 2 + i, W: max(width-4, 0), H: 1}
		row.Hidden = i >= listHeight
	}

	footer := dom.Rect{Y: max(height-1, 0), W: width, H: 1}
	w.statusHost.Rect = footer
	text := footer
	text.X = 1
	text.W = max(width-2, 0)
	w.statusText.Rect = text
}

// Refresh rebuilds the session rows from the store.
func (w *Workspace) Refresh() {
	w.list.Clear()
	store := w.deps.Sessions
	entries := store.Entries()
	if len(entries) == 0 {
		placeholder := w.doc.CreateElement("li")
		placeholder.AddClass(paint.ClassMuted)
		placeholder.Text = "no sessions"
		if err := store.Err(); err != nil {
			placeholder.AddClass(paint.ClassError)
			placeholder.Text = fmt.Sprintf("tmux unavailable: %v", err)
		}
		w.list.Append(placeholder)
	}
	for _, s := range entries {
		row := w.doc.CreateElement("li")
		row.AddClass(paint.ClassRow)
		marker := "  "
		if s.Current {
			row.AddClass(paint.ClassCurrent)
			marker = "● "
		}
		row.Text = marker + s.Label
		row.SetAttr(attrSession, s.Name)
		w.bindRow(row, s.Name)
		w.list.Append(row)
	}
	w.Layout(w.width, w.height)
}

// SetStatus replaces the footer text.
func (w *Workspace) SetStatus(text string, isErr bool) {
	w.statusText.Text = text
	w.statusText.RemoveClass(paint.ClassError)
	if isErr {
		w.statusText.AddClass(paint.ClassError)
	}
}

// Status returns the footer text.
func (w *Workspace) Status() string {
	return w.statusText.Text
}

// Dropdown is the header button that lists sessions.
func (w *Workspace) Dropdown() *dom.Element {
	return w.dropdown
}

// List is the #sessions element.
func (w *Workspace) List() *dom.Element {
	return w.list
}

// StatusText is the element inside the #status shadow root.
func (w *Workspace) StatusText() *dom.Element {
	return w.statusText
}

// Row returns the row of the named session.
func (w *Workspace) Row(session string) *dom.Element {
	for _, row := range w.list.Children() {
		if row.Attr(attrSession) == session {
			return row
		}
	}
	return nil
}
