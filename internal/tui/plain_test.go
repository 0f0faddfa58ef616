package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams/iostreamstest"
)

func TestRunPlain_Lifecycle(t *testing.T) {
	tio := iostreamstest.New()
	sess := &fakeSession{
		title: "Copy",
		start: func(ui *UI, h *hud.HUD) {
			h.Show(false)
			h.SetProgress(0.3)
			h.SetProgress(0.34)
			h.SetDetails("3 of 10")
			h.SetProgress(1)
			h.Hide(false)
			ui.Done(nil)
		},
	}

	err := runPlain(context.Background(), tio.IOStreams, sess)
	require.NoError(t, err)
	assert.False(t, sess.ui.Animated)

	out := tio.ErrBuf.String()
	assert.Equal(t, []string{
		"━━ Copy",
		"[show] Copy",
		"[run] Copy  30%",
		"[run] Copy 100%  3 of 10",
		"[hide] Copy",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestRunPlain_LabelFallsBackToStyle(t *testing.T) {
	tio := iostreamstest.New()
	sess := &fakeSession{
		opts: []hud.Option{hud.WithStyle(hud.StylePieProgress)},
		start: func(ui *UI, h *hud.HUD) {
			h.Show(false)
			ui.Done(nil)
		},
	}

	require.NoError(t, runPlain(context.Background(), tio.IOStreams, sess))
	assert.Contains(t, tio.ErrBuf.String(), "[show] pie\n")
}

func TestRunPlain_HiddenDuringGrace(t *testing.T) {
	tio := iostreamstest.New()
	sess := &fakeSession{
		title: "Quick",
		opts:  []hud.Option{hud.WithGracePeriod(time.Hour)},
		start: func(ui *UI, h *hud.HUD) {
			h.Show(false)
			h.Hide(false)
			ui.Done(nil)
		},
	}

	require.NoError(t, runPlain(context.Background(), tio.IOStreams, sess))
	out := tio.ErrBuf.String()
	assert.Contains(t, out, "[wait] Quick")
	assert.Contains(t, out, "[hide] Quick")
	assert.NotContains(t, out, "[show]")
}

func TestRunPlain_TimersRunOnQueue(t *testing.T) {
	tio := iostreamstest.New()
	sess := &fakeSession{
		title: "Later",
		opts:  []hud.Option{hud.WithGracePeriod(10 * time.Millisecond)},
		start: func(ui *UI, h *hud.HUD) {
			h.SetCompletion(func() { ui.Done(nil) })
			h.Show(false)
			h.DelayHide(20*time.Millisecond, false)
		},
	}

	require.NoError(t, runPlain(context.Background(), tio.IOStreams, sess))
	out := tio.ErrBuf.String()
	assert.Contains(t, out, "[wait] Later")
	assert.Contains(t, out, "[show] Later")
	assert.Contains(t, out, "[hide] Later")
}

func TestRunPlain_SessionError(t *testing.T) {
	tio := iostreamstest.New()
	boom := errors.New("boom")
	sess := &fakeSession{start: func(ui *UI, _ *hud.HUD) {
		ui.Done(boom)
		ui.Done(nil)
	}}

	err := runPlain(context.Background(), tio.IOStreams, sess)
	assert.Equal(t, boom, err, "only the first Done counts")
}

func TestRunPlain_ContextCanceled(t *testing.T) {
	tio := iostreamstest.New()
	ctx, cancel := context.WithCancel(context.Background())
	sess := &fakeSession{start: func(_ *UI, h *hud.HUD) {
		h.Show(false)
		cancel()
	}}

	err := runPlain(ctx, tio.IOStreams, sess)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sess.ui.Container.HUDs(), "HUDs are closed on exit")
}

func TestTUI_RunPlainSummary(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", want: "[ok] Copy finished in"},
		{name: "failure", err: errors.New("boom"), want: "[error] Copy failed: boom"},
		{name: "interrupted", err: context.Canceled, want: "[warn] Copy interrupted after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tio := iostreamstest.New()
			sess := &fakeSession{title: "Copy", start: func(ui *UI, _ *hud.HUD) { ui.Done(tt.err) }}

			err := NewTUI(tio.IOStreams).Run(context.Background(), ModePlain, sess)
			assert.Equal(t, tt.err, err)
			assert.Contains(t, tio.ErrBuf.String(), tt.want)
		})
	}
}

func TestTUI_RunUnknownMode(t *testing.T) {
	tio := iostreamstest.New()
	err := NewTUI(tio.IOStreams).Run(context.Background(), "fancy", &fakeSession{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown display mode")
	assert.Empty(t, tio.ErrBuf.String())
}

func TestTUI_AutoPicksPlainWithoutTerminal(t *testing.T) {
	tio := iostreamstest.New()
	sess := &fakeSession{title: "Auto", start: func(ui *UI, _ *hud.HUD) { ui.Done(nil) }}

	require.NoError(t, NewTUI(tio.IOStreams).Run(context.Background(), ModeAuto, sess))
	assert.Contains(t, tio.ErrBuf.String(), "━━ Auto")
}

func TestNewTUI_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewTUI(nil) })
}
