package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"v8bitfield/internal/bitfield"
	"v8bitfield/internal/catalog"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [flags] VALUE",
		Short: "Decode a word against a chosen layout",
		Long: `Decode a Smi-tagged PropertyDetails word against any layout in the catalog.
The value syntax is the same as for the top-level command.`,
		Example: `
# Decode against the Node v0.10 layout
v8bitfield decode --layout v0.10 0x401c52

# Print the layout first, as with -c
v8bitfield decode -c 0x401c52

# Emit a JSON report
v8bitfield decode --json 0x401c52
  `,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("layout")
			describe, _ := cmd.Flags().GetBool("describe")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			l, err := catalog.Lookup(version)
			if err != nil {
				return usageErrorf("%v", err)
			}
			value, err := ParseValue(args[0])
			if err != nil {
				return usageErrorf("non-numeric value: \"%s\"", args[0])
			}

			slog.Debug("Decoding", "value", args[0], "layout", l.Version, "json", jsonOutput)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), newDecodeReport(bitfield.DecodeWord(l, value)))
			}
			return writeText(cmd.OutOrStdout(), l, value, describe)
		},
	}

	cmd.Flags().StringP("layout", "l", "", "Layout version (v0.10, v0.12; default v0.12)")
	cmd.Flags().BoolP("describe", "c", false, "Print the layout before the decoded value")
	cmd.Flags().BoolP("json", "j", false, "Output a JSON report")
	return cmd
}
