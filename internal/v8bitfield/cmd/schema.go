package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [decode|layout]",
		Short:     "Generate JSON schema for the JSON reports",
		Long:      "Generate the JSON schema of the decode --json or describe --json output",
		Hidden:    true,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"decode", "layout"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var target any = &DecodeReport{}
			if len(args) == 1 && args[0] == "layout" {
				target = &LayoutReport{}
			}

			reflector := new(jsonschema.Reflector)
			bts, err := json.MarshalIndent(reflector.Reflect(target), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bts))
			return nil
		},
	}
}
