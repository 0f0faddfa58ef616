package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams/iostreamstest"
	"github.com/schmitthub/hudkit/internal/scheduler/schedulertest"
)

// settle is comfortably longer than the default show/hide transition.
const settle = 400 * time.Millisecond

// fakeSession attaches one HUD on Start and lets the test drive it.
type fakeSession struct {
	title  string
	host   string
	opts   []hud.Option
	start  func(ui *UI, h *hud.HUD)
	starts int
	ui     *UI
	hud    *hud.HUD
}

func (s *fakeSession) Start(ui *UI) {
	s.starts++
	s.ui = ui
	s.hud = ui.NewHUD(s.opts...)
	s.hud.SetTitle(s.title)
	if s.start != nil {
		s.start(ui, s.hud)
	}
}

func (s *fakeSession) HostView(int) string { return s.host }

func (s *fakeSession) Title() string { return s.title }

func startedModel(t *testing.T, sess *fakeSession) (Model, *schedulertest.Clock) {
	t.Helper()
	tio := iostreamstest.New()
	clock := schedulertest.New()
	m := NewModel(context.Background(), tio.IOStreams, sess, clock)
	next, _ := m.Update(startMsg{})
	return next.(Model), clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_StartsSessionOnce(t *testing.T) {
	sess := &fakeSession{title: "Working"}
	m, _ := startedModel(t, sess)

	m, _ = update(t, m, startMsg{})
	assert.Equal(t, 1, sess.starts)
	assert.True(t, sess.ui.Animated)
	assert.Equal(t, []*hud.HUD{sess.hud}, m.UI().Container.HUDs())
}

func TestModel_ViewBeforeStart(t *testing.T) {
	tio := iostreamstest.New()
	m := NewModel(context.Background(), tio.IOStreams, &fakeSession{}, schedulertest.New())
	assert.Empty(t, m.View())
}

func TestModel_ViewComposesBezelOverHost(t *testing.T) {
	sess := &fakeSession{
		title: "Working",
		host:  "host line one\nhost line two",
		start: func(_ *UI, h *hud.HUD) { h.Show(false) },
	}
	m, _ := startedModel(t, sess)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "host line one", lines[0])
	assert.Equal(t, "host line two", lines[1])
	assert.Contains(t, strings.Join(lines, "\n"), "Working")
	assert.Contains(t, lines[23], "quit", "help line at the bottom")
}

func TestModel_HiddenHUDLeavesHostAlone(t *testing.T) {
	sess := &fakeSession{title: "Working", host: "host"}
	m, _ := startedModel(t, sess)

	assert.NotContains(t, ansi.Strip(m.View()), "Working")
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := startedModel(t, &fakeSession{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, hud.Rect{W: 100, H: 29}, m.UI().Container.Bounds())
}

func TestModel_ToggleKey(t *testing.T) {
	sess := &fakeSession{start: func(_ *UI, h *hud.HUD) { h.Show(false) }}
	m, clock := startedModel(t, sess)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m, _ = update(t, m, space)
	assert.False(t, sess.hud.IsActive())
	clock.Advance(settle)
	assert.Equal(t, hud.StateHidden, sess.hud.State())

	_, _ = update(t, m, space)
	assert.True(t, sess.hud.IsActive())
	clock.Advance(settle)
	assert.Equal(t, hud.StateVisible, sess.hud.State())
}

func TestModel_CycleKeys(t *testing.T) {
	sess := &fakeSession{}
	m, _ := startedModel(t, sess)

	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, hud.StyleLinearProgress, sess.hud.Style())
	m, _ = update(t, m, runeKey('s'))
	assert.Equal(t, hud.StyleDoughnutProgress, sess.hud.Style())

	_, _ = update(t, m, runeKey('a'))
	assert.Equal(t, hud.AnimationZoom, sess.hud.AnimationType())
}

func TestNextStyle_Cycles(t *testing.T) {
	seen := map[hud.Style]bool{}
	s := hud.StyleActivityIndicator
	for range 5 {
		seen[s] = true
		s = nextStyle(s)
	}
	assert.Equal(t, hud.StyleActivityIndicator, s)
	assert.Len(t, seen, 5)
	assert.False(t, seen[hud.StyleCustomView])
}

func TestModel_QuitInterrupts(t *testing.T) {
	sess := &fakeSession{start: func(_ *UI, h *hud.HUD) { h.Show(false) }}
	m, _ := startedModel(t, sess)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.Err(), context.Canceled)
	assert.Empty(t, m.UI().Container.HUDs(), "HUDs are closed")
}

func TestModel_DoneEndsRun(t *testing.T) {
	boom := errors.New("boom")
	sess := &fakeSession{host: "final host", start: func(_ *UI, h *hud.HUD) { h.Show(false) }}
	m, _ := startedModel(t, sess)

	m, cmd := update(t, m, doneMsg{err: boom})
	require.NotNil(t, cmd)
	assert.Equal(t, boom, m.Err())
	assert.Equal(t, "final host", m.View(), "the last frame drops the HUD")
}

func TestModel_PostedWorkRunsOnUpdate(t *testing.T) {
	sess := &fakeSession{}
	m, _ := startedModel(t, sess)

	ran := false
	sess.ui.Post(func() { ran = true })
	msg := waitForInbox(context.Background(), m.inbox)()
	require.IsType(t, inboxMsg{}, msg)
	assert.False(t, ran)

	_, cmd := update(t, m, msg)
	assert.True(t, ran)
	assert.NotNil(t, cmd, "the inbox is awaited again")
}

func TestModel_DoneThroughInbox(t *testing.T) {
	sess := &fakeSession{}
	m, _ := startedModel(t, sess)

	sess.ui.Done(nil)
	m, _ = update(t, m, waitForInbox(context.Background(), m.inbox)())
	assert.NoError(t, m.Err())
	assert.True(t, m.finished)
}
