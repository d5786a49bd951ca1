package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newModelsCmd creates the models listing command.
func newModelsCmd(flags *rootFlags) *cobra.Command {
	var (
		year        int
		vehicleType string
	)

	cmd := &cobra.Command{
		Use:   "models <make>",
		Short: "List models for a make",
		Long:  `List models for a make, by name or numeric make id. Partial names match every make containing them. Narrow with --year and --vehicle-type.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			var filter *vpic.ModelFilter
			if year > 0 || vehicleType != "" {
				filter = &vpic.ModelFilter{ModelYear: year, VehicleType: vehicleType}
			}

			p := newProgress(logger)
			var records []*vpic.Record
			if makeID, err := strconv.Atoi(args[0]); err == nil {
				records, err = client.ModelsForMakeID(ctx, makeID, filter)
				if err != nil {
					return err
				}
			} else {
				records, err = client.ModelsForMake(ctx, args[0], filter)
				if err != nil {
					return err
				}
			}
			p.done(fmt.Sprintf("Found %d models", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringVarP(&vehicleType, "vehicle-type", "t", "", "vehicle type name")
	return cmd
}

// newTypesCmd creates the vehicle types listing command.
func newTypesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types <make>",
		Short: "List vehicle types for a make",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			var records []*vpic.Record
			if makeID, convErr := strconv.Atoi(args[0]); convErr == nil {
				records, err = client.VehicleTypesForMakeID(ctx, makeID)
			} else {
				records, err = client.VehicleTypesForMake(ctx, args[0])
			}
			if err != nil {
				return err
			}
			return renderRecords(records, flags.jsonOut)
		},
	}
}
