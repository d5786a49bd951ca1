package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newSpecsCmd creates the Canadian vehicle specifications command.
func newSpecsCmd(flags *rootFlags) *cobra.Command {
	var (
		year  int
		model string
		units string
	)

	cmd := &cobra.Command{
		Use:   "specs <make>",
		Short: "Look up Canadian vehicle specifications",
		Long:  `Look up original vehicle dimensions from Transport Canada's Canadian Vehicle Specifications database, compiled for collision investigation.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			p := newProgress(logger)
			records, err := client.CanadianVehicleSpecifications(ctx, vpic.CanadianSpecQuery{
				Year:  year,
				Make:  args[0],
				Model: model,
				Units: units,
			})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Found %d specifications", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "model year, 1971 or later (required)")
	cmd.Flags().StringVar(&model, "model", "", "model name")
	cmd.Flags().StringVar(&units, "units", "Metric", "Metric or US")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}
