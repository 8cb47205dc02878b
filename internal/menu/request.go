// Package menu assembles and shows the single context menu of a document.
//
// A menu is collected by walking the composed path of the element that was
// right-clicked. Every element on the path may carry "menu" listeners that
// append widgets to the shared Request. Listeners produced by WrapAsync
// suspend the walk until their work settles, after which it resumes at the
// parent node. The walk resolves once it passes the document root, or fails
// with ErrCollectionTimeout after CollectTimeout.
package menu

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
)

const (
	// EventMenu is the type of the collection event.
	EventMenu = "menu"
	// ContextMenuID is the reserved id of the open menu panel.
	ContextMenuID = "context-menu"
	// ClassContextMenu marks the open menu panel.
	ClassContextMenu = "context-menu"
	// ClassSubmenu marks nested panels.
	ClassSubmenu = "submenu"

	// CollectTimeout bounds a collection walk.
	CollectTimeout = 5 * time.Second
)

// ErrCollectionTimeout is reported when no walk reached the root in time.
var ErrCollectionTimeout = errors.New("menu: collection timed out")

// Widget is a menu entry. The manager treats it as opaque and only appends
// it to a panel.
type Widget = *dom.Element

// Request is the payload of one collection. Contributors append to Options
// in walk order: innermost element first.
type Request struct {
	Origin  *dom.Element
	Options []Widget

	id    uint64
	async []AsyncFunc
}

var nextRequestID atomic.Uint64

func newRequest(origin *dom.Element) *Request {
	return &Request{Origin: origin, id: nextRequestID.Add(1)}
}

// Append adds widgets to the request. Nil widgets are skipped.
func (r *Request) Append(items ...Widget) {
	for _, item := range items {
		if item != nil {
			r.Options = append(r.Options, item)
		}
	}
}

// RequestFrom extracts the request carried by a collection event.
func RequestFrom(ev *dom.Event) (*Request, bool) {
	if ev == nil || ev.Type != EventMenu {
		return nil, false
	}
	req, ok := ev.Detail.(*Request)
	return req, ok && req != nil
}

func newMenuEvent(req *Request, target *dom.Element) *dom.Event {
	return &dom.Event{
		Type:     EventMenu,
		Bubbles:  true,
		Composed: true,
		Detail:   req,
		Target:   target,
	}
}
