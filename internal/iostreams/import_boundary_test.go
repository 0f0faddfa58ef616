package iostreams

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Logger = (*zerolog.Logger)(nil)

// TestNoTUIImport keeps this package free of bubbletea, bubbles and the HUD
// core. Those belong to the tui package, which depends on iostreams and not
// the other way around.
func TestNoTUIImport(t *testing.T) {
	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	forbidden := []string{
		`"github.com/charmbracelet/bubbletea"`,
		`"github.com/charmbracelet/bubbles`,
		`"github.com/schmitthub/hudkit/internal/hud"`,
		`"github.com/schmitthub/hudkit/internal/tui"`,
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		data, err := os.ReadFile(filepath.Clean(name))
		require.NoError(t, err, "reading %s", name)

		for _, imp := range forbidden {
			assert.NotContains(t, string(data), imp, "%s must not import %s", name, imp)
		}
	}
}
