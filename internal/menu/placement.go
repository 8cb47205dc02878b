package menu

import (
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/geometry"
)

type Point struct {
	X, Y int
}

type Size struct {
	W, H int
}

type Horizontal string

const (
	// Left puts the panel's right edge at the anchor.
	Left Horizontal = "left"
	// Right puts the panel's left edge at the anchor.
	Right Horizontal = "right"
)

type Vertical string

const (
	// Above puts the panel's bottom edge at the anchor.
	Above Vertical = "above"
	// Below puts the panel's top edge at the anchor.
	Below Vertical = "below"
)

// Placement is the quadrant a panel opens into relative to its anchor.
type Placement struct {
	Horizontal Horizontal
	Vertical   Vertical
}

// Place flips a panel to the left of or above the anchor only when it would
// otherwise overflow the viewport. An exact fit is not an overflow. There is
// no second pass when the flipped side overflows too.
func Place(anchor Point, size, viewport Size) Placement {
	p := Placement{Horizontal: Right, Vertical: Below}
	if anchor.X+size.W > viewport.W {
		p.Horizontal = Left
	}
	if anchor.Y+size.H > viewport.H {
		p.Vertical = Above
	}
	return p
}

// Apply moves el into the chosen quadrant around anchor.
func (p Placement) Apply(g geometry.Adapter, el *dom.Element, anchor Point) {
	if p.Horizontal == Left {
		g.LeftOfPos(el, anchor.X)
	} else {
		g.RightOfPos(el, anchor.X)
	}
	if p.Vertical == Above {
		g.AbovePos(el, anchor.Y)
	} else {
		g.BelowPos(el, anchor.Y)
	}
}
