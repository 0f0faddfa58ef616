package docs

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ManHeader is the metadata of a man page's title line.
type ManHeader struct {
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// DefaultManHeader is used by GenManTree.
var DefaultManHeader = ManHeader{
	Section: "1",
	Source:  "hudkit",
	Manual:  "hudkit Manual",
}

// GenManTree writes a man page for cmd and every visible subcommand to dir,
// named like hudkit-config-init.1.
func GenManTree(cmd *cobra.Command, dir string) error {
	header := DefaultManHeader
	return genTree(cmd, dir,
		func(c *cobra.Command) string { return pageName(c, "-") + "." + header.Section },
		func(c *cobra.Command, w io.Writer) error { return GenMan(c, header, w) })
}

// GenMan writes the roff man page of a single command.
func GenMan(cmd *cobra.Command, header ManHeader, w io.Writer) error {
	if header.Section == "" {
		header.Section = "1"
	}
	_, err := w.Write(md2man.Render(manMarkdown(cmd, header)))
	return err
}

// manMarkdown renders the go-md2man flavoured Markdown source of the page.
func manMarkdown(cmd *cobra.Command, header ManHeader) []byte {
	cmd.InitDefaultHelpFlag()

	var buf bytes.Buffer
	name := cmd.CommandPath()

	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(&buf, "%% %s(%s) %s | %s\n\n",
		strings.ToUpper(pageName(cmd, "-")), header.Section, date, header.Manual)

	short := cmd.Short
	if short == "" {
		short = "manual page for " + name
	}
	fmt.Fprintf(&buf, "# NAME\n%s \\- %s\n\n", name, short)

	buf.WriteString("# SYNOPSIS\n**" + name + "**")
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n" + cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	local, inherited := cmd.NonInheritedFlags(), cmd.InheritedFlags()
	if local.HasAvailableFlags() || inherited.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(&buf, local)
		manFlags(&buf, inherited)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n```\n" + cmd.Example + "\n```\n\n")
	}

	manSeeAlso(&buf, cmd, header.Section)

	return buf.Bytes()
}

func manFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	var list []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			list = append(list, f)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	for _, f := range list {
		if f.Shorthand != "" {
			fmt.Fprintf(buf, "**-%s**, **--%s**", f.Shorthand, f.Name)
		} else {
			fmt.Fprintf(buf, "**--%s**", f.Name)
		}
		if t := f.Value.Type(); t != "bool" {
			fmt.Fprintf(buf, " <%s>", t)
		}
		buf.WriteString("\n: " + f.Usage)
		switch f.DefValue {
		case "", "false", "0", "0s", "[]":
		default:
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	}
}

func manSeeAlso(buf *bytes.Buffer, cmd *cobra.Command, section string) {
	var refs []string
	if cmd.HasParent() {
		parent := cmd.Parent()
		refs = append(refs, pageName(parent, "-"))
		for _, s := range visibleCommands(parent) {
			if s != cmd {
				refs = append(refs, pageName(s, "-"))
			}
		}
	}
	for _, c := range visibleCommands(cmd) {
		refs = append(refs, pageName(c, "-"))
	}
	if len(refs) == 0 {
		return
	}
	for i, ref := range refs {
		refs[i] = fmt.Sprintf("**%s(%s)**", ref, section)
	}
	buf.WriteString("# SEE ALSO\n" + strings.Join(refs, ", ") + "\n")
}
