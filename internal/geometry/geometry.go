// Package geometry measures and positions floating panels.
package geometry

import (
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/paint"
)

// Adapter measures an element and moves it so one of its edges touches a
// coordinate.
type Adapter interface {
	// ComputedSize reports the rendered width and height of el.
	ComputedSize(el *dom.Element) (int, int)
	// MaxSize reports the usable viewport size.
	MaxSize() (int, int)
	// AbovePos puts el's bottom edge at y.
	AbovePos(el *dom.Element, y int)
	// BelowPos puts el's top edge at y.
	BelowPos(el *dom.Element, y int)
	// LeftOfPos puts el's right edge at x.
	LeftOfPos(el *dom.Element, x int)
	// RightOfPos puts el's left edge at x.
	RightOfPos(el *dom.Element, x int)
}

// Terminal positions panels in terminal cells. Sizes come from the painter,
// so a panel is exactly as large as it will be drawn.
type Terminal struct {
	viewport func() (int, int)
}

var _ Adapter = (*Terminal)(nil)

// NewTerminal returns an adapter whose viewport is reported by fn, usually
// the last window size Bubble Tea delivered.
func NewTerminal(fn func() (int, int)) *Terminal {
	return &Terminal{viewport: fn}
}

func (t *Terminal) ComputedSize(el *dom.Element) (int, int) {
	return paint.PanelSize(el)
}

func (t *Terminal) MaxSize() (int, int) {
	if t.viewport == nil {
		return 0, 0
	}
	return t.viewport()
}

func (t *Terminal) AbovePos(el *dom.Element, y int) {
	t.measure(el)
	el.Rect.Y = y - el.Rect.H
	layoutItems(el)
}

func (t *Terminal) BelowPos(el *dom.Element, y int) {
	t.measure(el)
	el.Rect.Y = y
	layoutItems(el)
}

func (t *Terminal) LeftOfPos(el *dom.Element, x int) {
	t.measure(el)
	el.Rect.X = x - el.Rect.W
	layoutItems(el)
}

func (t *Terminal) RightOfPos(el *dom.Element, x int) {
	t.measure(el)
	el.Rect.X = x
	layoutItems(el)
}

func (t *Terminal) measure(el *dom.Element) {
	el.Rect.W, el.Rect.H = t.ComputedSize(el)
}

// layoutItems gives each child one row inside the panel border so hit
// testing lands on items.
func layoutItems(el *dom.Element) {
	inner := el.Rect.W - 2
	if inner < 0 {
		inner = 0
	}
	for i, child := range el.Children() {
		child.Rect = dom.Rect{X: el.Rect.X + 1, Y: el.Rect.Y + 1 + i, W: inner, H: 1}
	}
}
