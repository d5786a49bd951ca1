package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newMakesCmd creates the makes listing command. With no flags it
// lists every make vPIC knows; flags narrow by manufacturer or vehicle
// type.
func newMakesCmd(flags *rootFlags) *cobra.Command {
	var (
		manufacturer string
		vehicleType  string
		year         int
	)

	cmd := &cobra.Command{
		Use:   "makes",
		Short: "List vehicle makes",
		Long:  `List vehicle makes: all of them, those of one manufacturer (--manufacturer, optionally --year), or those producing a vehicle type (--vehicle-type).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			p := newProgress(logger)
			var records []*vpic.Record
			switch {
			case manufacturer != "" && year > 0:
				records, err = client.MakesForManufacturerAndYear(ctx, manufacturer, year)
			case manufacturer != "":
				records, err = client.MakesForManufacturer(ctx, manufacturer)
			case vehicleType != "":
				records, err = client.MakesForVehicleType(ctx, vehicleType)
			default:
				records, err = client.AllMakes(ctx)
			}
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Found %d makes", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().StringVarP(&manufacturer, "manufacturer", "m", "", "manufacturer name or id")
	cmd.Flags().IntVar(&year, "year", 0, "model year, with --manufacturer")
	cmd.Flags().StringVarP(&vehicleType, "vehicle-type", "t", "", "vehicle type name")
	return cmd
}
