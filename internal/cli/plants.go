package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newPlantsCmd creates the equipment plant codes command.
func newPlantsCmd(flags *rootFlags) *cobra.Command {
	var (
		year          int
		equipmentType int
		reportType    string
	)

	cmd := &cobra.Command{
		Use:   "plants",
		Short: "List equipment manufacturing plants",
		Long:  `List plants that manufacture vehicle equipment, each with its three-character DOT code. Data starts at 2016. Equipment types: 1 tires, 3 brake hoses, 13 glazing, 16 retread.`,
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
			records, err := client.EquipmentPlantCodes(ctx, vpic.PlantQuery{
				Year:          year,
				EquipmentType: equipmentType,
				ReportType:    reportType,
			})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Found %d plants", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().IntVar(&year, "year", 2016, "report year, 2016 or later")
	cmd.Flags().IntVar(&equipmentType, "equipment-type", 1, "equipment type code")
	cmd.Flags().StringVar(&reportType, "report-type", "All", "New, Updated, Closed or All")
	return cmd
}
