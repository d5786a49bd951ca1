package cli

import (
	"github.com/spf13/cobra"
)

// newVariablesCmd creates the vehicle variables command and its values
// subcommand.
func newVariablesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variables",
		Short: "List the vehicle variables vPIC tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			records, err := client.VehicleVariables(ctx)
			if err != nil {
				return err
			}
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.AddCommand(newVariableValuesCmd(flags))
	return cmd
}

func newVariableValuesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "values <variable name>",
		Short: "List the allowed values of a lookup variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			records, err := client.VehicleVariableValues(ctx, args[0])
			if err != nil {
				return err
			}
			return renderRecords(records, flags.jsonOut)
		},
	}
}
