package dom

import "sync/atomic"

// Event types dispatched by the terminal front end.
const (
	EventClick       = "click"
	EventContextMenu = "contextmenu"
	EventKeyDown     = "keydown"
	EventMouseOver   = "mouseover"
)

// KeyEscape is the Key of an Escape keydown.
const KeyEscape = "Escape"

// MouseButton identifies the pointer button of a mouse event.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a single dispatch. Fields set by the creator are read-only to
// listeners; Target and CurrentTarget are maintained by dispatch.
type Event struct {
	Type     string
	Bubbles  bool
	Composed bool
	Detail   any

	// Pointer position in viewport cells, for mouse events.
	X, Y   int
	Button MouseButton
	// Key name for keydown events: KeyEscape or the terminal key ("q", "ctrl+c").
	Key string

	Target        *Element
	CurrentTarget *Element

	stopped          bool
	immediateStopped bool
	defaultPrevented bool
}

// StopPropagation prevents the event from reaching further nodes on its
// path. Listeners on the current node still run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// StopImmediatePropagation also skips the remaining listeners on the
// current node.
func (ev *Event) StopImmediatePropagation() {
	ev.stopped = true
	ev.immediateStopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (ev *Event) PropagationStopped() bool {
	return ev.stopped
}

// PreventDefault marks the event's default action as cancelled.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// Listener receives events for one type on one element.
type Listener func(*Event)

// ListenerOptions tunes a registration.
type ListenerOptions struct {
	// Once removes the listener before its first invocation.
	Once bool
}

type listener struct {
	id      uint64
	fn      Listener
	once    bool
	removed bool
}

var nextListenerID atomic.Uint64

// Handle identifies one registration. Remove is idempotent, and the zero
// Handle is valid and removes nothing.
type Handle struct {
	target *Element
	typ    string
	id     uint64
}

// Remove unregisters the listener. Calling it again has no effect.
func (h Handle) Remove() {
	if h.target == nil {
		return
	}
	h.target.removeListener(h.typ, h.id)
}

// AddEventListener registers fn for typ on e.
func (e *Element) AddEventListener(typ string, fn Listener) Handle {
	return e.AddEventListenerWith(typ, fn, ListenerOptions{})
}

// AddEventListenerWith registers fn with options.
func (e *Element) AddEventListenerWith(typ string, fn Listener, opts ListenerOptions) Handle {
	if fn == nil {
		return Handle{}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	l := &listener{id: nextListenerID.Add(1), fn: fn, once: opts.Once}
	e.listeners[typ] = append(e.listeners[typ], l)
	return Handle{target: e, typ: typ, id: l.id}
}

// ListenerCount reports how many listeners are registered for typ.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

func (e *Element) removeListener(typ string, id uint64) {
	list := e.listeners[typ]
	for i, l := range list {
		if l.id != id {
			continue
		}
		l.removed = true
		copy(list[i:], list[i+1:])
		list[len(list)-1] = nil
		list = list[:len(list)-1]
		if len(list) == 0 {
			delete(e.listeners, typ)
		} else {
			e.listeners[typ] = list
		}
		return
	}
}

// DispatchEvent delivers ev along its path starting at e: e itself, then,
// for bubbling events, each ancestor up to the root. Composed events cross
// shadow roots to their hosts. It returns false when a listener called
// PreventDefault.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	for i, node := range eventPath(e, ev.Composed) {
		if i > 0 && !ev.Bubbles {
			break
		}
		node.invoke(ev)
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

// Deliver runs e's listeners for ev without propagating it anywhere else.
// Target is set to e when the caller left it empty.
func (e *Element) Deliver(ev *Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	e.invoke(ev)
}

func (e *Element) invoke(ev *Event) {
	ev.CurrentTarget = e
	list := e.listeners[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		if l.once {
			e.removeListener(ev.Type, l.id)
		}
		l.fn(ev)
		if ev.immediateStopped {
			return
		}
	}
}

// ComposedPath returns e followed by its ancestors, crossing shadow roots to
// their hosts, ending at the tree root.
func ComposedPath(e *Element) []*Element {
	return eventPath(e, true)
}

func eventPath(e *Element, composed bool) []*Element {
	path := make([]*Element, 0, 8)
	for node := e; node != nil; {
		path = append(path, node)
		if node.parent != nil {
			node = node.parent
			continue
		}
		if composed {
			node = node.host
			continue
		}
		node = nil
	}
	return path
}
