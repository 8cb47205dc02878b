package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/loop"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/atomicstack/tmux-context-menu/internal/paint"
	"github.com/atomicstack/tmux-context-menu/internal/tmux"
	"github.com/atomicstack/tmux-context-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func newHarness(t *testing.T) *Harness {
	t.Helper()
	m := NewModel(Options{MouseMotion: true, Clock: loop.NewFakeClock()})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h
}

func press(button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

func escape() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEscape}
}

func TestRightClickOpensMenuAndEscapeCloses(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 5, 10))

	active := h.Model().manager.Active()
	if active == nil {
		t.Fatalf("expected a context menu after right-click")
	}
	if r := active.Node.Rect; r.X != 5 || r.Y != 10 {
		t.Fatalf("menu should open at the pointer, got %+v", r)
	}
	view := h.View()
	if !strings.Contains(view, "Refresh") || !strings.Contains(view, "Quit") {
		t.Fatalf("menu not rendered:\n%s", view)
	}

	h.Send(escape())
	if h.Model().manager.Active() != nil {
		t.Fatalf("escape should close the menu")
	}
	if strings.Contains(h.View(), "Refresh") {
		t.Fatalf("closed menu still rendered")
	}
	if h.Model().ctx.Err() != nil {
		t.Fatalf("closing a menu must not quit")
	}
}

func TestEscapeWithoutMenuQuits(t *testing.T) {
	h := newHarness(t)
	h.Send(escape())
	if h.Model().ctx.Err() == nil {
		t.Fatalf("expected quit on escape with no menu open")
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if h.Model().ctx.Err() == nil {
		t.Fatalf("expected q to quit")
	}
}

func TestClickingItemRunsActionAndDismisses(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 5, 10))
	// Refresh is the first row inside the border.
	h.Send(press(tea.MouseButtonLeft, 7, 11))

	if h.Model().manager.Active() != nil {
		t.Fatalf("click should dismiss the menu")
	}
	if got := h.Model().workspace.Status(); got != "Refreshing sessions" {
		t.Fatalf("expected refresh status, got %q", got)
	}
}

func TestQuitItemStopsProgram(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 5, 10))
	h.Send(press(tea.MouseButtonLeft, 7, 12))
	if h.Model().ctx.Err() == nil {
		t.Fatalf("expected the Quit item to stop the program")
	}
}

func TestStatusMenuFlipsAboveFooter(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 3, 23))
	active := h.Model().manager.Active()
	if active == nil {
		t.Fatalf("expected a menu over the status line")
	}
	if active.Node.Rect.Bottom() != 23 {
		t.Fatalf("menu should end at the pointer row, got %+v", active.Node.Rect)
	}
	if !strings.Contains(h.View(), "Clear status") {
		t.Fatalf("status contributor missing:\n%s", h.View())
	}
}

func TestDropdownOpensBelowButton(t *testing.T) {
	h := newHarness(t)
	button := h.Model().workspace.Dropdown().Rect
	h.Send(press(tea.MouseButtonLeft, button.X+1, button.Y))
	active := h.Model().manager.Active()
	if active == nil {
		t.Fatalf("expected dropdown menu")
	}
	if active.Node.Rect.Y != button.Bottom() {
		t.Fatalf("dropdown should open below the button, got %+v", active.Node.Rect)
	}
	if !strings.Contains(h.View(), "no sessions") {
		t.Fatalf("dropdown should list sessions:\n%s", h.View())
	}
}

func TestSecondRightClickReplacesMenu(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 5, 10))
	first := h.Model().manager.Active()
	h.Send(press(tea.MouseButtonRight, 20, 5))
	second := h.Model().manager.Active()
	if second == nil || second == first || !first.Closed() {
		t.Fatalf("expected the second right-click to replace the menu")
	}
	if n := strings.Count(h.View(), "Refresh"); n != 1 {
		t.Fatalf("expected exactly one rendered menu, got %d", n)
	}
}

func TestHoverMarksItem(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 5, 10))
	h.Send(tea.MouseMsg{X: 7, Y: 12, Action: tea.MouseActionMotion})
	items := h.Model().manager.Active().Node.Children()
	if items[0].HasClass(paint.ClassHover) || !items[1].HasClass(paint.ClassHover) {
		t.Fatalf("expected Quit to be hovered")
	}
}

func TestResizeClosesMenu(t *testing.T) {
	h := newHarness(t)
	h.Send(press(tea.MouseButtonRight, 5, 10))
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	if h.Model().manager.Active() != nil {
		t.Fatalf("resize should close the open menu")
	}
	if lines := strings.Split(h.View(), "\n"); len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
}

func TestBackendEventRebuildsRows(t *testing.T) {
	h := newHarness(t)
	h.Send(backendEventMsg{event: backend.Event{
		Kind: backend.KindSessions,
		Data: tmux.SessionSnapshot{
			Sessions: []tmux.Session{{Name: "dev", Label: "dev: 2 windows", Current: true}},
			Current:  "dev",
		},
	}})
	if !strings.Contains(h.View(), "● dev: 2 windows") {
		t.Fatalf("session row missing:\n%s", h.View())
	}

	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSessions, Err: errors.New("no server")}})
	if got := h.Model().sessions.Err(); got == nil {
		t.Fatalf("expected store to record the backend error")
	}
}

func TestBackendErrorWithoutSessions(t *testing.T) {
	h := newHarness(t)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSessions, Err: errors.New("no server")}})
	if !strings.Contains(h.View(), "tmux unavailable: no server") {
		t.Fatalf("expected error placeholder:\n%s", h.View())
	}
}

func TestResultErrorShownOnStatus(t *testing.T) {
	h := newHarness(t)
	h.Send(command.Result{ID: "session:switch", Err: errors.New("switch failed")})
	ws := h.Model().workspace
	if ws.Status() != "switch failed" || !ws.StatusText().HasClass(paint.ClassError) {
		t.Fatalf("expected error status, got %q", ws.Status())
	}
	h.Send(command.Result{ID: "status:clear"})
	if ws.Status() != "" || ws.StatusText().HasClass(paint.ClassError) {
		t.Fatalf("expected cleared status, got %q", ws.Status())
	}
}

func TestFixedSizeIgnoresWindowSize(t *testing.T) {
	m := NewModel(Options{Width: 40, Height: 10, Clock: loop.NewFakeClock()})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 50})
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected pinned height 10, got %d", len(lines))
	}
}

func TestAsyncContributorShowsAfterAwait(t *testing.T) {
	h := newHarness(t)
	m := h.Model()
	menu.AddAsync(m.workspace.List(), func(ctx context.Context, req *menu.Request) error {
		req.Append(m.manager.Item("Attach", "", nil))
		return nil
	})
	h.Send(press(tea.MouseButtonRight, 5, 10))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for m.manager.Active() == nil {
		if err := h.Await(ctx); err != nil {
			t.Fatalf("async menu never opened: %v", err)
		}
	}
	view := h.View()
	if !strings.Contains(view, "Attach") || !strings.Contains(view, "Quit") {
		t.Fatalf("expected async and body items:\n%s", view)
	}
}
