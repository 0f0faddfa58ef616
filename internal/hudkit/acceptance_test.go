package hudkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets scripts exec hudkit in-process.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"hudkit": Main,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(e *testscript.Env) error {
			e.Setenv("HOME", e.WorkDir)
			e.Setenv("HUDKIT_CONFIG_DIR", filepath.Join(e.WorkDir, ".config", "hudkit"))
			e.Setenv("HUDKIT_STATE_DIR", filepath.Join(e.WorkDir, ".state", "hudkit"))
			e.Setenv("NO_COLOR", "1")
			return nil
		},
		UpdateScripts:       os.Getenv("UPDATE_GOLDEN") == "1",
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}
