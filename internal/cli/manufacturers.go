package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newManufacturersCmd creates the manufacturers listing command and
// its details subcommand.
func newManufacturersCmd(flags *rootFlags) *cobra.Command {
	var (
		mfrType string
		page    int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "manufacturers",
		Short: "List manufacturers",
		Long:  `List manufacturers registered with vPIC, optionally filtered by manufacturer type. Results are paginated; pass --page for one page or --all to walk every page.`,
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
			if !all {
				records, err := client.AllManufacturers(ctx, mfrType, page)
				if err != nil {
					return err
				}
				p.done(fmt.Sprintf("Found %d manufacturers", len(records)))
				return renderRecords(records, flags.jsonOut)
			}

			spin := newSpinner(ctx, "Fetching manufacturer pages")
			spin.Start()
			var records []*vpic.Record
			it := client.ManufacturerPages(mfrType)
			for {
				pageRecords, err := it.Next(ctx)
				if err != nil {
					spin.Stop()
					return err
				}
				if len(pageRecords) == 0 {
					break
				}
				records = append(records, pageRecords...)
				logger.Debugf("fetched page %d (%d rows)", it.Page()-1, len(pageRecords))
			}
			spin.Stop()
			p.done(fmt.Sprintf("Found %d manufacturers", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().StringVarP(&mfrType, "type", "t", "", "manufacturer type, full name or substring")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	cmd.AddCommand(newManufacturerDetailsCmd(flags))
	return cmd
}

func newManufacturerDetailsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "details <manufacturer>",
		Short: "Show manufacturer details",
		Long:  `Show full detail records for a manufacturer, by numeric id, full name or partial name.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			records, err := client.ManufacturerDetails(ctx, args[0])
			if err != nil {
				return err
			}
			return renderRecords(records, flags.jsonOut)
		},
	}
}
