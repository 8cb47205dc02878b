package dom

// Document owns an element tree. The embedded element is the tree root and
// receives every bubbling event that reaches the top of the composed path.
type Document struct {
	*Element
	Body *Element
}

// NewDocument creates a document with an attached body.
func NewDocument() *Document {
	d := &Document{}
	d.Element = d.newNode("#document")
	d.Body = d.CreateElement("body")
	d.Element.Append(d.Body)
	return d
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return d.newNode(tag)
}

func (d *Document) newNode(tag string) *Element {
	return &Element{Tag: tag, doc: d}
}

// GetElementByID returns the first element in tree order with the given id.
// Shadow trees are not searched.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	walk(d.Element, false, func(e *Element) bool {
		if found != nil {
			return false
		}
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Walk visits every connected element in paint order: an element, then the
// children of its shadow root, then its light children. Returning false from
// fn skips the element's subtree.
func (d *Document) Walk(fn func(*Element) bool) {
	walk(d.Element, true, fn)
}

func walk(e *Element, shadows bool, fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	if shadows && e.shadow != nil {
		for _, child := range e.shadow.Children() {
			walk(child, shadows, fn)
		}
	}
	for _, child := range e.Children() {
		walk(child, shadows, fn)
	}
}
