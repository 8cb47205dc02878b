// Package ui contains the Bubble Tea program that hosts the session browser
// and its context menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg is
//     routed through a typed handler registry so every kind of input is
//     handled by a focused function.
//   - Mouse and key messages are translated into document events
//     (contextmenu, click, mouseover, keydown) and dispatched at the element
//     under the pointer (internal/ui/input.go).
//   - The document and the menu manager only change on the update
//     goroutine. Work they schedule lands on an internal/loop queue, which
//     Update pumps: a blocking waiter started in Init wakes the program when
//     asynchronous contributors post results, and finishUpdate adds a
//     non-blocking pump whenever tasks are already queued.
//
// State ownership:
//   - The document (internal/dom) is built by internal/workspace, which also
//     registers the menu contributors of every region.
//   - Sessions live in internal/state, kept current by the dispatcher from
//     backend.Watcher events.
//   - Item actions are queued on the internal/ui/command bus and drained as
//     tea.Cmd values at the end of each update; their results land on the
//     status line.
package ui
