package menu

import (
	"testing"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
)

func TestPlaceBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		anchor   Point
		size     Size
		viewport Size
		want     Placement
	}{
		{"exact fit", Point{0, 0}, Size{10, 10}, Size{10, 10}, Placement{Right, Below}},
		{"overflow both", Point{5, 5}, Size{10, 10}, Size{10, 10}, Placement{Left, Above}},
		{"overflow right only", Point{5, 0}, Size{10, 10}, Size{10, 10}, Placement{Left, Below}},
		{"overflow bottom only", Point{0, 1}, Size{10, 10}, Size{10, 10}, Placement{Right, Above}},
		{"one cell short", Point{1, 1}, Size{9, 9}, Size{10, 10}, Placement{Right, Below}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Place(tc.anchor, tc.size, tc.viewport); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

type recordingGeometry struct {
	calls []string
}

func (g *recordingGeometry) ComputedSize(*dom.Element) (int, int) { return 0, 0 }
func (g *recordingGeometry) MaxSize() (int, int)                  { return 0, 0 }
func (g *recordingGeometry) AbovePos(*dom.Element, int)           { g.calls = append(g.calls, "above") }
func (g *recordingGeometry) BelowPos(*dom.Element, int)           { g.calls = append(g.calls, "below") }
func (g *recordingGeometry) LeftOfPos(*dom.Element, int)          { g.calls = append(g.calls, "left") }
func (g *recordingGeometry) RightOfPos(*dom.Element, int)         { g.calls = append(g.calls, "right") }

func TestPlacementApplyCallsOneEdgePerAxis(t *testing.T) {
	g := &recordingGeometry{}
	el := dom.NewDocument().CreateElement("div")
	Placement{Left, Below}.Apply(g, el, Point{})
	Placement{Right, Above}.Apply(g, el, Point{})
	want := []string{"left", "below", "right", "above"}
	if len(g.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, g.calls)
	}
	for i := range want {
		if g.calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g.calls)
		}
	}
}
