package docs

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// GenMarkdownTree writes a Markdown page for cmd and every visible
// subcommand to dir, named like hudkit_config_init.md.
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	return genTree(cmd, dir,
		func(c *cobra.Command) string { return pageName(c, "_") + ".md" },
		GenMarkdown)
}

// GenMarkdown writes the Markdown page of a single command. Links to
// related commands point at sibling files from GenMarkdownTree.
func GenMarkdown(cmd *cobra.Command, w io.Writer) error {
	cmd.InitDefaultHelpFlag()

	var buf bytes.Buffer
	name := cmd.CommandPath()

	buf.WriteString("## " + name + "\n\n")
	if cmd.Short != "" {
		buf.WriteString(cmd.Short + "\n\n")
	}

	if cmd.Runnable() || cmd.HasAvailableSubCommands() {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		if cmd.Runnable() {
			buf.WriteString("```\n" + cmd.UseLine() + "\n```\n\n")
		}
	}

	if len(cmd.Aliases) > 0 {
		names := append([]string{cmd.Name()}, cmd.Aliases...)
		buf.WriteString("### Aliases\n\n`" + strings.Join(names, "`, `") + "`\n\n")
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n```\n" + cmd.Example + "\n```\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("### Subcommands\n\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "* [%s](%s) - %s\n", c.CommandPath(), markdownLink(c), c.Short)
		}
		buf.WriteString("\n")
	}

	writeFlagBlock(&buf, "Options", cmd.NonInheritedFlags().FlagUsages())
	writeFlagBlock(&buf, "Options inherited from parent commands", cmd.InheritedFlags().FlagUsages())

	if cmd.HasParent() {
		parent := cmd.Parent()
		fmt.Fprintf(&buf, "### See also\n\n* [%s](%s) - %s\n", parent.CommandPath(), markdownLink(parent), parent.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}

func writeFlagBlock(buf *bytes.Buffer, title, usages string) {
	if usages == "" {
		return
	}
	buf.WriteString("### " + title + "\n\n```\n" + usages + "```\n\n")
}

func markdownLink(cmd *cobra.Command) string {
	return pageName(cmd, "_") + ".md"
}
