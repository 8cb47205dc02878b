package dom

// ElementAt returns the deepest visible element whose rect contains (x, y).
// Later siblings paint over earlier ones, so they are checked first. The
// body is returned when nothing more specific matches.
func (d *Document) ElementAt(x, y int) *Element {
	if hit := elementAt(d.Body, x, y); hit != nil {
		return hit
	}
	return d.Body
}

func elementAt(e *Element, x, y int) *Element {
	if e.Hidden {
		return nil
	}
	children := e.children
	for i := len(children) - 1; i >= 0; i-- {
		if hit := elementAt(children[i], x, y); hit != nil {
			return hit
		}
	}
	if e.shadow != nil {
		inner := e.shadow.children
		for i := len(inner) - 1; i >= 0; i-- {
			if hit := elementAt(inner[i], x, y); hit != nil {
				return hit
			}
		}
	}
	if !e.Rect.Empty() && e.Rect.Contains(x, y) {
		return e
	}
	return nil
}
