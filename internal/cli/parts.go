package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newPartsCmd creates the regulatory filings command.
func newPartsCmd(flags *rootFlags) *cobra.Command {
	var (
		cfrPart  string
		fromDate string
		toDate   string
		page     int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "List manufacturer regulatory filings",
		Long:  `List vehicle documentation filed by manufacturers under 49 CFR Part 565 (VIN guidance) or Part 566 (manufacturer identification) in a date range. Results are paginated; pass --all to walk every page.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			q := vpic.PartsQuery{CFRPart: cfrPart, FromDate: fromDate, ToDate: toDate, Page: page}

			p := newProgress(logger)
			if !all {
				records, err := client.Parts(ctx, q)
				if err != nil {
					return err
				}
				p.done(fmt.Sprintf("Found %d filings", len(records)))
				return renderRecords(records, flags.jsonOut)
			}

			var records []*vpic.Record
			it := client.PartsPages(q)
			for {
				pageRecords, err := it.Next(ctx)
				if err != nil {
					return err
				}
				if len(pageRecords) == 0 {
					break
				}
				records = append(records, pageRecords...)
				logger.Debugf("fetched page %d (%d rows)", it.Page()-1, len(pageRecords))
			}
			p.done(fmt.Sprintf("Found %d filings", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().StringVar(&cfrPart, "cfr-part", "565", "565 or 566")
	cmd.Flags().StringVar(&fromDate, "from", "", "start of the date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toDate, "to", "", "end of the date range (YYYY-MM-DD)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	return cmd
}
