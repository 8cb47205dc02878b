package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/data/dispatcher"
	"github.com/atomicstack/tmux-context-menu/internal/dom"
	"github.com/atomicstack/tmux-context-menu/internal/geometry"
	"github.com/atomicstack/tmux-context-menu/internal/logging"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/loop"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/atomicstack/tmux-context-menu/internal/state"
	"github.com/atomicstack/tmux-context-menu/internal/ui/command"
	"github.com/atomicstack/tmux-context-menu/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configure a Model.
type Options struct {
	SocketPath string
	ClientID   string
	// Width and Height pin the viewport; zero follows the terminal.
	Width  int
	Height int
	// MouseMotion enables hover tracking for submenus.
	MouseMotion bool
	Watcher     *backend.Watcher
	// Clock drives menu timers; nil means the real clock.
	Clock loop.Clock
}

// Model implements the Bubble Tea model for the session browser.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	doc       *dom.Document
	loop      *loop.Loop
	manager   *menu.Manager
	workspace *workspace.Workspace

	bus        *command.Bus
	backend    *backend.Watcher
	sessions   state.SessionStore
	dispatcher *dispatcher.Dispatcher

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	mouseMotion bool
	hovered     *dom.Element

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the document, the menu manager and the workspace.
func NewModel(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		ctx:         ctx,
		cancel:      cancel,
		doc:         dom.NewDocument(),
		loop:        loop.New(opts.Clock),
		bus:         command.New(),
		backend:     opts.Watcher,
		sessions:    state.NewSessionStore(),
		mouseMotion: opts.MouseMotion,
	}
	m.dispatcher = dispatcher.New(m.sessions)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	geo := geometry.NewTerminal(func() (int, int) { return m.width, m.height })
	m.manager = menu.NewManager(ctx, m.doc, m.loop, geo)
	m.manager.Bind()
	m.workspace = workspace.New(m.manager, workspace.Deps{
		SocketPath: opts.SocketPath,
		ClientID:   opts.ClientID,
		Sessions:   m.sessions,
		Bus:        m.bus,
		Refresh:    m.requestRefresh,
	})
	m.workspace.Layout(m.width, m.height)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForLoop(m.ctx, m.loop)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(loopReadyMsg{}):      m.handleLoopReadyMsg,
		reflect.TypeOf(command.Result{}):    m.handleResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate collects the item actions queued during this update and
// schedules a pump when the loop already has work.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.bus.Drain()...)
	if m.loop.Pending() > 0 {
		cmds = append(cmds, pumpLoop)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.App.Resize(m.width, m.height)
	if active := m.manager.Active(); active != nil {
		active.Close()
	}
	m.hovered = nil
	m.workspace.Layout(m.width, m.height)
	return nil
}

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		logging.Error(res.Err)
		m.workspace.SetStatus(res.Err.Error(), true)
		return nil
	}
	if res.Quit {
		return m.quit("menu")
	}
	m.workspace.SetStatus(res.Info, false)
	return nil
}

func (m *Model) requestRefresh() {
	if m.backend != nil {
		m.backend.Refresh()
	}
}

func (m *Model) quit(reason string) tea.Cmd {
	events.App.Quit(reason)
	m.cancel()
	return tea.Quit
}
