// Package paint turns the document into terminal lines: panels are rendered
// with borders and padded item rows, other elements are drawn as styled
// text at their rect, and everything is spliced onto a blank canvas.
package paint

import (
	"strings"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/format/table"
	"github.com/atomicstack/tmux-context-menu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Classes understood by the painter.
const (
	ClassPanel     = "menu-panel"
	ClassItem      = "menu-item"
	ClassSeparator = "menu-separator"
	ClassHover     = "hover"
	ClassHeader    = "header"
	ClassButton    = "button"
	ClassRow       = "row"
	ClassCurrent   = "current"
	ClassStatus    = "status"
	ClassError     = "error"
	ClassMuted     = "muted"

	// AttrHint is the right-aligned secondary text of an item row.
	AttrHint = "hint"
)

var styles = theme.Default()

// PanelLines renders a panel element and its item children, border
// included.
func PanelLines(panel *dom.Element) []string {
	children := panel.Children()
	hints := false
	for _, child := range children {
		if child.Attr(AttrHint) != "" {
			hints = true
			break
		}
	}
	rows := make([][]string, 0, len(children))
	for _, child := range children {
		switch {
		case child.HasClass(ClassSeparator):
			rows = append(rows, nil)
		case hints:
			rows = append(rows, []string{child.Text, child.Attr(AttrHint)})
		default:
			rows = append(rows, []string{child.Text})
		}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	width := 0
	for _, line := range formatted {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	if width == 0 {
		width = 1
	}
	body := make([]string, len(children))
	for i, child := range children {
		if child.HasClass(ClassSeparator) {
			body[i] = styles.Separator.Render(strings.Repeat("─", width+2))
			continue
		}
		line := " " + padRight(formatted[i], width) + " "
		style := styles.Item
		if child.HasClass(ClassHover) {
			style = styles.ItemHover
		}
		body[i] = style.Render(line)
	}
	if len(body) == 0 {
		body = []string{styles.Placeholder.Render(padRight(" (empty) ", width+2))}
	}
	block := styles.Panel.Render(strings.Join(body, "\n"))
	return strings.Split(block, "\n")
}

// PanelSize reports the rendered width and height of a panel in cells.
func PanelSize(panel *dom.Element) (int, int) {
	block := strings.Join(PanelLines(panel), "\n")
	return lipgloss.Width(block), lipgloss.Height(block)
}

// Document paints every visible element onto a width x height canvas.
func Document(doc *dom.Document, width, height int) []string {
	canvas := Blank(width, height)
	doc.Walk(func(e *dom.Element) bool {
		if e.Hidden {
			return false
		}
		if e.HasClass(ClassPanel) {
			canvas = Overlay(canvas, e.Rect.X, e.Rect.Y, PanelLines(e), width)
			return false
		}
		if e.Text == "" || e.Rect.Empty() {
			return true
		}
		text := ansi.Truncate(e.Text, e.Rect.W, "…")
		canvas = Overlay(canvas, e.Rect.X, e.Rect.Y, []string{styleFor(e).Render(text)}, width)
		return true
	})
	return canvas
}

// Blank returns height lines of width spaces.
func Blank(width, height int) []string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := make([]string, height)
	row := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = row
	}
	return lines
}

// Overlay splices block onto canvas with its top-left cell at (x, y). Parts
// of the block outside the canvas are clipped; width bounds every line.
func Overlay(canvas []string, x, y int, block []string, width int) []string {
	for i, line := range block {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		canvas[row] = overlayLine(canvas[row], x, line, width)
	}
	return canvas
}

func overlayLine(bg string, x int, s string, width int) string {
	if x < 0 {
		s = ansi.TruncateLeft(s, -x, "")
		x = 0
	}
	if x >= width {
		return bg
	}
	if avail := width - x; ansi.StringWidth(s) > avail {
		s = ansi.Truncate(s, avail, "")
	}
	w := ansi.StringWidth(s)
	left := ansi.Truncate(bg, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(bg, x+w, "")
	return left + s + right
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func styleFor(e *dom.Element) *lipgloss.Style {
	switch {
	case e.HasClass(ClassError):
		return styles.Error
	case e.HasClass(ClassHeader):
		return styles.Header
	case e.HasClass(ClassButton):
		return styles.Button
	case e.HasClass(ClassRow) && e.HasClass(ClassCurrent):
		return styles.RowCurrent
	case e.HasClass(ClassRow):
		return styles.Row
	case e.HasClass(ClassMuted):
		return styles.Placeholder
	default:
		return styles.Status
	}
}
