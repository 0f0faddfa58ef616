// Package docs generates reference documentation for the hudkit command
// tree: man pages (through go-md2man) and Markdown.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// renderFunc writes the page of one command.
type renderFunc func(cmd *cobra.Command, w io.Writer) error

// genTree writes one file per visible command under dir, children first.
func genTree(cmd *cobra.Command, dir string, filename func(*cobra.Command) string, render renderFunc) error {
	for _, c := range visibleCommands(cmd) {
		if err := genTree(c, dir, filename, render); err != nil {
			return err
		}
	}

	path := filepath.Join(dir, filename(cmd))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if err := render(cmd, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// visibleCommands returns the subcommands that belong in the docs.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		cmds = append(cmds, c)
	}
	return cmds
}

func pageName(cmd *cobra.Command, separator string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", separator)
}
