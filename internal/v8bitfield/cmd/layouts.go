package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"v8bitfield/internal/catalog"
)

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the layouts in the catalog",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, l := range catalog.Layouts() {
				marker := " "
				if l.Version == catalog.Default.Version {
					marker = "*"
				}
				if _, err := fmt.Fprintf(w, "%s %-6s %s (%d fields)\n", marker, l.Version, l.Name, len(l.Fields)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
