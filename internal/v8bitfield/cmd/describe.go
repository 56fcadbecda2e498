package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"v8bitfield/internal/bitfield"
	"v8bitfield/internal/catalog"
	"v8bitfield/internal/v8bitfield/styles"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [flags]",
		Short: "Print a layout's fields and symbols",
		Long: `Print every field of a layout with its bit range, interpretation and known
symbolic values. No value is decoded.`,
		Example: `
# Describe the default layout
v8bitfield describe

# Describe the Node v0.10 layout as Markdown
v8bitfield describe --layout v0.10 --markdown
  `,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("layout")
			markdown, _ := cmd.Flags().GetBool("markdown")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			l, err := catalog.Lookup(version)
			if err != nil {
				return usageErrorf("%v", err)
			}

			w := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				return writeJSON(w, newLayoutReport(l))
			case markdown:
				return writeMarkdown(w, l)
			case colorEnabled(w):
				_, err := io.WriteString(w, styles.DefaultTheme().RenderDescription(l))
				return err
			default:
				return bitfield.WriteDescription(w, l)
			}
		},
	}

	cmd.Flags().StringP("layout", "l", "", "Layout version (v0.10, v0.12; default v0.12)")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown, rendered when writing to a terminal")
	cmd.Flags().BoolP("json", "j", false, "Output JSON")
	cmd.MarkFlagsMutuallyExclusive("markdown", "json")
	return cmd
}

// writeMarkdown prints the layout as Markdown, rendered through glamour
// when w is a terminal.
func writeMarkdown(w io.Writer, l bitfield.Layout) error {
	md := bitfield.Markdown(l)
	if !colorEnabled(w) {
		_, err := io.WriteString(w, md)
		return err
	}

	width := 80
	if tw, _, err := term.GetSize(os.Stdout.Fd()); err == nil && tw > 0 {
		width = tw
	}
	out, err := styles.RenderMarkdown(md, width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
