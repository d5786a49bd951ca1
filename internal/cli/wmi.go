package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newWMICmd creates the WMI decode command and its list subcommand.
func newWMICmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wmi <code>",
		Short: "Decode a World Manufacturer Identifier",
		Long:  `Decode a 3-character (large-volume manufacturers) or 6-character WMI code into manufacturer information.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			rec, err := client.DecodeWMI(ctx, args[0])
			if err != nil {
				return err
			}
			return renderRecord(rec, flags.jsonOut)
		},
	}

	cmd.AddCommand(newWMIListCmd(flags))
	return cmd
}

func newWMIListCmd(flags *rootFlags) *cobra.Command {
	var (
		manufacturer string
		vehicleType  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List WMIs for a manufacturer or vehicle type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			p := newProgress(logger)
			records, err := client.WMIsForManufacturer(ctx, manufacturer, vehicleType)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Found %d WMIs", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().StringVarP(&manufacturer, "manufacturer", "m", "", "manufacturer name or id")
	cmd.Flags().StringVarP(&vehicleType, "vehicle-type", "t", "", "vehicle type name or id")
	return cmd
}
