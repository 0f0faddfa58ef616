package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/scheduler"
)

// inboxSize bounds the work posted to the UI thread but not yet run.
const inboxSize = 256

// ---------------------------------------------------------------------------
// BubbleTea messages
// ---------------------------------------------------------------------------

// dispatchMsg carries a function onto the UI thread.
type dispatchMsg func()

type startMsg struct{}

type doneMsg struct{ err error }

// inboxMsg wraps messages posted through UI.Post and UI.Done. Those may be
// called from inside Update, where Program.Send would deadlock, so they go
// through a buffered channel instead.
type inboxMsg struct{ msg tea.Msg }

func waitForInbox(ctx context.Context, inbox <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-inbox:
			return inboxMsg{msg: msg}
		case <-ctx.Done():
			return nil
		}
	}
}

func postTo(ctx context.Context, inbox chan<- tea.Msg, msg tea.Msg) {
	select {
	case inbox <- msg:
	case <-ctx.Done():
	}
}

// Dispatcher returns a scheduler.Dispatcher delivering through p. It must
// only be called off the UI thread: p.Send blocks until the event loop
// takes the message.
func Dispatcher(p *tea.Program) scheduler.Dispatcher {
	return func(fn func()) {
		p.Send(dispatchMsg(fn))
	}
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the BubbleTea model hosting a session's HUDs over its host view.
// The BubbleTea event loop is the UI thread: timer callbacks arrive as
// dispatchMsg and run inside Update.
type Model struct {
	ios     *iostreams.IOStreams
	session Session
	ui      *UI
	inbox   chan tea.Msg
	keys    KeyMap
	spinner spinner.Model

	width, height int

	started     bool
	finished    bool
	interrupted bool
	err         error
}

// NewModel creates a model for session. sched must deliver its callbacks
// through the program running the model (see Dispatcher).
func NewModel(ctx context.Context, ios *iostreams.IOStreams, session Session, sched scheduler.Scheduler) Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle()))
	width, height := ios.TerminalSize()

	inbox := make(chan tea.Msg, inboxSize)
	m := Model{
		ios:     ios,
		session: session,
		inbox:   inbox,
		keys:    DefaultKeyMap(),
		spinner: s,
		width:   width,
		height:  height,
	}
	m.ui = &UI{
		Context:   ctx,
		Container: hud.NewContainer(),
		Scheduler: sched,
		Dark:      ios.HasDarkBackground(),
		Animated:  true,
		post:      func(fn func()) { postTo(ctx, inbox, dispatchMsg(fn)) },
		done:      func(err error) { postTo(ctx, inbox, doneMsg{err: err}) },
	}
	m.resize()
	return m
}

// UI returns the handle passed to the session.
func (m Model) UI() *UI { return m.ui }

// Err returns the error the session finished with, or context.Canceled
// when the user quit.
func (m Model) Err() error {
	if m.interrupted {
		return context.Canceled
	}
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForInbox(m.ui.Context, m.inbox),
		func() tea.Msg { return startMsg{} },
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case startMsg:
		if !m.started {
			m.started = true
			m.session.Start(m.ui)
		}
		return m, nil

	case inboxMsg:
		next, cmd := m.Update(msg.msg)
		nm := next.(Model)
		if nm.finished {
			return nm, cmd
		}
		return nm, tea.Batch(cmd, waitForInbox(nm.ui.Context, nm.inbox))

	case dispatchMsg:
		if !m.finished {
			msg()
		}
		return m, nil

	case doneMsg:
		if !m.finished {
			m.finished = true
			m.err = msg.err
			m.ui.Container.Close()
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case IsQuit(msg):
		m.interrupted = true
		m.finished = true
		m.ui.Container.Close()
		return m, tea.Quit
	case IsToggle(msg):
		if h := m.target(); h != nil {
			if h.IsActive() {
				h.Hide(true)
			} else {
				h.Show(true)
			}
		}
	case IsCycleStyle(msg):
		if h := m.target(); h != nil {
			h.SetStyle(nextStyle(h.Style()))
		}
	case IsCycleAnimation(msg):
		if h := m.target(); h != nil {
			h.SetAnimationType((h.AnimationType() + 1) % (hud.AnimationZoomIn + 1))
		}
	}
	return m, nil
}

// target is the HUD keys act on: the topmost attached one.
func (m Model) target() *hud.HUD {
	huds := m.ui.Container.HUDs()
	if len(huds) == 0 {
		return nil
	}
	return huds[len(huds)-1]
}

// nextStyle cycles through the styles that need no caller content.
func nextStyle(s hud.Style) hud.Style {
	switch s {
	case hud.StyleActivityIndicator:
		return hud.StyleLinearProgress
	case hud.StyleLinearProgress:
		return hud.StyleDoughnutProgress
	case hud.StyleDoughnutProgress:
		return hud.StylePieProgress
	case hud.StylePieProgress:
		return hud.StyleTextLabel
	default:
		return hud.StyleActivityIndicator
	}
}

// resize gives the container every row but the help line.
func (m Model) resize() {
	m.ui.Container.SetBounds(hud.Rect{W: m.width, H: max(m.height-1, 0)})
}

func (m Model) View() string {
	if !m.started {
		return ""
	}
	host := m.session.HostView(m.width)
	if m.finished {
		return host
	}

	bounds := m.ui.Container.Bounds()
	lines := Canvas(host, bounds.W, bounds.H)
	bezel := Bezel{Dark: m.ui.Dark, Spinner: m.spinner.View()}
	for _, h := range m.ui.Container.HUDs() {
		r, ok := bezel.Render(m.ui.Container, h)
		if !ok {
			continue
		}
		lines = Dim(lines, bounds.W, r.Background)
		lines = Overlay(lines, r.Block, r.Frame.X, r.Frame.Y, bounds.W)
	}
	lines = append(lines, RenderHelpBar(m.keys.ShortHelp(), m.width))
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// TTY mode
// ---------------------------------------------------------------------------

func runTTY(ctx context.Context, ios *iostreams.IOStreams, session Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	loop := scheduler.NewLoop(func(fn func()) { Dispatcher(p)(fn) })
	model := NewModel(ctx, ios, session, loop)
	p = NewProgram(ios, model, WithAltScreen(true), WithContext(ctx))

	if ios.Logger != nil {
		ios.Logger.Debug().Msg("starting hud display")
	}
	finalModel, err := p.Run()
	// The event loop is gone; this goroutine owns the HUDs now.
	model.UI().Container.Close()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return errors.New("unexpected model type")
	}
	return m.Err()
}
