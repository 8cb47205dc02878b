package workspace

import (
	"context"
	"fmt"

	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/atomicstack/tmux-context-menu/internal/tmux"
	"github.com/atomicstack/tmux-context-menu/internal/ui/command"
	"github.com/atotto/clipboard"
)

var (
	switchClient   = tmux.SwitchClient
	selectWindow   = tmux.SelectWindow
	sessionWindows = tmux.SessionWindows
	writeClipboard = clipboard.WriteAll
)

func (w *Workspace) bindContributors() {
	w.m.BindDropdownFunc(w.dropdown, w.sessionSwitchItems)
	w.list.AddEventListener(menu.EventMenu, func(ev *dom.Event) {
		req, ok := menu.RequestFrom(ev)
		if !ok {
			return
		}
		session := sessionOf(req.Origin)
		if session == "" {
			return
		}
		menu.WrapAsync(func(ctx context.Context, req *menu.Request) error {
			return w.windowsContributor(ctx, req, session)
		})(ev)
	})
	menu.AddItemsFunc(w.statusText, func() []menu.Widget {
		return []menu.Widget{w.m.Item("Clear status", "", w.queue("status:clear", func() command.Result {
			return command.Result{}
		}))}
	})
	w.doc.Body.AddEventListener(menu.EventMenu, func(ev *dom.Event) {
		req, ok := menu.RequestFrom(ev)
		if !ok {
			return
		}
		if len(req.Options) > 0 {
			req.Append(w.m.Separator())
		}
		req.Append(
			w.m.Item("Refresh", "r", w.queue("app:refresh", w.refresh)),
			w.m.Item("Quit", "q", w.queue("app:quit", func() command.Result {
				return command.Result{Quit: true}
			})),
		)
	})
}

func (w *Workspace) bindRow(row *dom.Element, session string) {
	menu.AddItemsFunc(row, func() []menu.Widget {
		return []menu.Widget{
			w.m.Item("Switch to "+session, "enter", w.switchAction(session)),
			w.m.Item("Copy name", "y", w.queue("session:copy", func() command.Result {
				if err := writeClipboard(session); err != nil {
					return command.Result{Err: fmt.Errorf("copy %s: %w", session, err)}
				}
				return command.Result{Info: fmt.Sprintf("Copied %s", session)}
			})),
		}
	})
}

func (w *Workspace) sessionSwitchItems() []menu.Widget {
	entries := w.deps.Sessions.Entries()
	if len(entries) == 0 {
		return []menu.Widget{w.m.Item("no sessions", "", nil)}
	}
	items := make([]menu.Widget, 0, len(entries))
	for _, s := range entries {
		hint := ""
		if s.Current {
			hint = "current"
		}
		items = append(items, w.m.Item(s.Name, hint, w.switchAction(s.Name)))
	}
	return items
}

// windowsContributor adds a submenu of the session's windows. It runs off
// the loop, so it must not read the document and only builds detached
// widgets.
func (w *Workspace) windowsContributor(ctx context.Context, req *menu.Request, session string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	windows, err := sessionWindows(w.deps.SocketPath, session)
	if err != nil {
		return fmt.Errorf("windows of %s: %w", session, err)
	}
	if len(windows) == 0 {
		return nil
	}
	items := make([]menu.Widget, 0, len(windows))
	for _, win := range windows {
		hint := ""
		if win.Active {
			hint = "active"
		}
		items = append(items, w.m.Item(win.Label, hint, w.selectWindowAction(win)))
	}
	req.Append(w.m.SubmenuItem("Windows", items...))
	return nil
}

func (w *Workspace) switchAction(session string) func() {
	return w.queue("session:switch", func() command.Result {
		if err := switchClient(w.deps.SocketPath, w.deps.ClientID, session); err != nil {
			return command.Result{Err: err}
		}
		return command.Result{Info: fmt.Sprintf("Switched to %s", session)}
	})
}

func (w *Workspace) selectWindowAction(win tmux.Window) func() {
	return w.queue("window:select", func() command.Result {
		if err := switchClient(w.deps.SocketPath, w.deps.ClientID, win.Session); err != nil {
			return command.Result{Err: err}
		}
		if err := selectWindow(w.deps.SocketPath, win.ID); err != nil {
			return command.Result{Err: err}
		}
		return command.Result{Info: fmt.Sprintf("Selected %s", win.ID)}
	})
}

func (w *Workspace) refresh() command.Result {
	if w.deps.Refresh != nil {
		w.deps.Refresh()
	}
	return command.Result{Info: "Refreshing sessions"}
}

func (w *Workspace) queue(id string, run func() command.Result) func() {
	return func() {
		w.deps.Bus.Queue(command.Request{ID: id, Run: run})
	}
}

// sessionOf finds the session row el belongs to.
func sessionOf(el *dom.Element) string {
	for node := el; node != nil; node = node.Parent() {
		if name := node.Attr(attrSession); name != "" {
			return name
		}
	}
	return ""
}
