package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/hudkit/internal/iostreams"
)

// ProgramOption configures a BubbleTea program.
type ProgramOption func(*programOptions)

type programOptions struct {
	altScreen bool
	ctx       context.Context
}

func defaultProgramOptions() programOptions {
	return programOptions{}
}

// WithAltScreen enables or disables the alternate screen buffer.
func WithAltScreen(enabled bool) ProgramOption {
	return func(o *programOptions) {
		o.altScreen = enabled
	}
}

// WithContext kills the program when ctx is done.
func WithContext(ctx context.Context) ProgramOption {
	return func(o *programOptions) {
		o.ctx = ctx
	}
}

// NewProgram creates a BubbleTea program reading from ios.In and drawing on
// ios.ErrOut, so stdout stays free for command output.
func NewProgram(ios *iostreams.IOStreams, model tea.Model, opts ...ProgramOption) *tea.Program {
	cfg := defaultProgramOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	teaOpts := []tea.ProgramOption{
		tea.WithInput(ios.In),
		tea.WithOutput(ios.ErrOut),
	}

	if cfg.altScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}

	if cfg.ctx != nil {
		teaOpts = append(teaOpts, tea.WithContext(cfg.ctx))
	}

	return tea.NewProgram(model, teaOpts...)
}

// RunProgram creates and runs a BubbleTea program with the given IOStreams.
// It returns the final model state after the program exits.
func RunProgram(ios *iostreams.IOStreams, model tea.Model, opts ...ProgramOption) (tea.Model, error) {
	return NewProgram(ios, model, opts...).Run()
}
