// Package dom is a small in-process document model: an element tree with
// shadow roots, listener registration, bubbling dispatch and hit testing.
// It carries only what the terminal context menu needs and makes no attempt
// at browser conformance.
package dom

import "strings"

// Rect is a cell-aligned box. Right and Bottom are exclusive.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Element is a node of the document tree. The zero value is not usable;
// create elements through Document.CreateElement.
type Element struct {
	ID      string
	Tag     string
	Text    string
	Classes []string
	Attrs   map[string]string
	Rect    Rect
	Hidden  bool
	Data    any

	doc      *Document
	parent   *Element
	children []*Element
	shadow   *Element
	host     *Element

	listeners map[string][]*listener
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// Parent returns the parent node, nil for detached elements and roots.
// The top element of a shadow tree has the shadow root as parent.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the light-tree children.
func (e *Element) Children() []*Element {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ShadowRoot returns the attached shadow root, if any.
func (e *Element) ShadowRoot() *Element {
	return e.shadow
}

// Host returns the shadow host when e is a shadow root.
func (e *Element) Host() *Element {
	return e.host
}

// IsShadowRoot reports whether e is the root of a shadow tree.
func (e *Element) IsShadowRoot() bool {
	return e.host != nil
}

// AttachShadow creates (or returns the existing) shadow root for e.
func (e *Element) AttachShadow() *Element {
	if e.shadow != nil {
		return e.shadow
	}
	root := e.doc.newNode("#shadow-root")
	root.host = e
	e.shadow = root
	return root
}

// Append adds children to the end of e, detaching them from any previous
// parent first.
func (e *Element) Append(children ...*Element) {
	for _, child := range children {
		if child == nil || child == e {
			continue
		}
		child.Remove()
		child.parent = e
		e.children = append(e.children, child)
	}
}

// Remove detaches e from its parent. Removing a detached element is a no-op.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, child := range p.children {
		if child == e {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	e.parent = nil
}

// Clear detaches every child of e.
func (e *Element) Clear() {
	for _, child := range e.Children() {
		child.Remove()
	}
}

// RootNode returns the root of e's tree. With composed set, shadow roots are
// crossed to their hosts so the result is the document for connected nodes.
func (e *Element) RootNode(composed bool) *Element {
	node := e
	for {
		if node.parent != nil {
			node = node.parent
			continue
		}
		if composed && node.host != nil {
			node = node.host
			continue
		}
		return node
	}
}

// IsConnected reports whether e is reachable from its document root.
func (e *Element) IsConnected() bool {
	return e.doc != nil && e.RootNode(true) == e.doc.Element
}

// Contains reports whether other is e or a (composed) descendant of e.
func (e *Element) Contains(other *Element) bool {
	for node := other; node != nil; node = composedParent(node) {
		if node == e {
			return true
		}
	}
	return false
}

// HasClass reports whether name is present in e.Classes.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name unless already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.Classes = append(e.Classes, name)
}

// RemoveClass drops name from e.Classes.
func (e *Element) RemoveClass(name string) {
	for i, c := range e.Classes {
		if c == name {
			e.Classes = append(e.Classes[:i], e.Classes[i+1:]...)
			return
		}
	}
}

// Attr returns the named attribute or "".
func (e *Element) Attr(name string) string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// SetAttr sets an attribute, allocating the map on first use.
func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// BoundingRect returns the element's box in viewport cells.
func (e *Element) BoundingRect() Rect {
	return e.Rect
}

// String renders a short selector-like description for logs.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.Tag)
	if e.ID != "" {
		b.WriteByte('#')
		b.WriteString(e.ID)
	}
	for _, c := range e.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

func composedParent(e *Element) *Element {
	if e.parent != nil {
		return e.parent
	}
	return e.host
}
