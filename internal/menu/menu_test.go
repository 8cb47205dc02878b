package menu

import (
	"context"
	"testing"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/geometry"
	"github.com/atomicstack/tmux-context-menu/internal/loop"
)

type fixture struct {
	doc   *dom.Document
	clock *loop.FakeClock
	loop  *loop.Loop
	m     *Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	doc := dom.NewDocument()
	doc.Body.Rect = dom.Rect{W: 80, H: 24}
	clock := loop.NewFakeClock()
	l := loop.New(clock)
	g := geometry.NewTerminal(func() (int, int) { return 80, 24 })
	return &fixture{
		doc:   doc,
		clock: clock,
		loop:  l,
		m:     NewManager(context.Background(), doc, l, g),
	}
}

// chain builds body > grandparent > parent > element.
func (f *fixture) chain() (grandparent, parent, element *dom.Element) {
	grandparent = f.doc.CreateElement("section")
	parent = f.doc.CreateElement("ul")
	element = f.doc.CreateElement("li")
	f.doc.Body.Append(grandparent)
	grandparent.Append(parent)
	parent.Append(element)
	return grandparent, parent, element
}

func (f *fixture) items(labels ...string) []Widget {
	out := make([]Widget, len(labels))
	for i, label := range labels {
		out[i] = f.m.Item(label, "", nil)
	}
	return out
}

// waitTurn blocks until a task posted from another goroutine has run.
func (f *fixture) waitTurn(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := f.loop.Wait(ctx); err != nil {
		t.Fatalf("loop wait: %v", err)
	}
}

type outcome struct {
	calls int
	items []Widget
	err   error
}

func (f *fixture) collect(origin *dom.Element) *outcome {
	out := &outcome{}
	f.m.RequestContributions(origin, func(items []Widget, err error) {
		out.calls++
		out.items = items
		out.err = err
	})
	return out
}

func labels(items []Widget) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}

func menuNodes(doc *dom.Document) []*dom.Element {
	var found []*dom.Element
	doc.Walk(func(e *dom.Element) bool {
		if e.ID == ContextMenuID {
			found = append(found, e)
		}
		return true
	})
	return found
}

func dismissalListeners(doc *dom.Document) int {
	return doc.ListenerCount(dom.EventClick) +
		doc.ListenerCount(dom.EventContextMenu) +
		doc.ListenerCount(dom.EventKeyDown)
}
