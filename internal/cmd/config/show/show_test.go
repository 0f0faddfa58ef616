package show

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/iostreams/iostreamstest"
)

func TestNewCmdShow(t *testing.T) {
	tio := iostreamstest.New()

	var got *ShowOptions
	cmd := NewCmdShow(&cmdutil.Factory{IOStreams: tio.IOStreams}, func(_ context.Context, opts *ShowOptions) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"--json"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, got)
	assert.True(t, got.JSON)
	assert.Same(t, tio.IOStreams, got.IOStreams)
}

func TestShowRun_YAML(t *testing.T) {
	tio := iostreamstest.New()
	cfg := config.DefaultConfig()
	cfg.HUD.Style = "pie"

	err := showRun(context.Background(), &ShowOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return cfg, nil },
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(tio.OutBuf.String()), &decoded))
	assert.Equal(t, "pie", decoded["hud"].(map[string]any)["style"])
	assert.Contains(t, tio.ErrBuf.String(), "# source: built-in defaults")
}

func TestShowRun_ReportsFileUsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  workers: 2\n"), 0o644))
	loader := config.NewLoader("", config.WithFile(path))

	tio := iostreamstest.New()
	err := showRun(context.Background(), &ShowOptions{
		IOStreams:    tio.IOStreams,
		Config:       loader.Load,
		ConfigLoader: func() *config.Loader { return loader },
	})
	require.NoError(t, err)
	assert.Contains(t, tio.ErrBuf.String(), "# source: "+path)
	assert.Contains(t, tio.OutBuf.String(), "workers: 2")
}

func TestShowRun_JSON(t *testing.T) {
	tio := iostreamstest.New()

	err := showRun(context.Background(), &ShowOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return config.DefaultConfig(), nil },
		JSON:      true,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(tio.OutBuf.String()), &decoded))
	assert.Contains(t, decoded, "hud")
	assert.Empty(t, tio.ErrBuf.String())
}

func TestShowRun_LoadError(t *testing.T) {
	tio := iostreamstest.New()
	boom := errors.New("bad yaml")

	err := showRun(context.Background(), &ShowOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return nil, boom },
	})
	assert.ErrorIs(t, err, boom)
}
