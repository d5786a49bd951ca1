package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/vpic"
)

// newDecodeCmd creates the VIN decode command and its batch
// subcommand.
func newDecodeCmd(flags *rootFlags) *cobra.Command {
	var (
		year   int
		extend bool
		flat   bool
	)

	cmd := &cobra.Command{
		Use:   "decode <vin>",
		Short: "Decode a VIN or partial VIN",
		Long:  `Decode a 17-character VIN, or a partial VIN with '*' for unknown positions. Pass --year for pre-2015 vehicles where the decoder needs help; vPIC recommends always passing it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			opts := &vpic.DecodeOptions{ModelYear: year, Extended: extend}
			p := newProgress(logger)
			var rec *vpic.Record
			if flat {
				rec, err = client.DecodeVINFlat(ctx, args[0], opts)
			} else {
				rec, err = client.DecodeVIN(ctx, args[0], opts)
			}
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Decoded %s", args[0]))
			return renderRecord(rec, flags.jsonOut)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "model year of the vehicle")
	cmd.Flags().BoolVar(&extend, "extend", false, "include NCSA program variables")
	cmd.Flags().BoolVar(&flat, "flat", false, "use the flat decode endpoint instead of Variable/Value pairs")

	cmd.AddCommand(newDecodeBatchCmd(flags))
	return cmd
}

func newDecodeBatchCmd(flags *rootFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch [vin[,year]]...",
		Short: "Decode up to 50 VINs in one call",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if file != "" {
				fromFile, err := readBatchFile(file)
				if err != nil {
					return err
				}
				args = append(fromFile, args...)
			}
			if len(args) == 0 {
				return fmt.Errorf("pass VINs as arguments or via --file")
			}

			items, err := parseBatchArgs(args)
			if err != nil {
				return err
			}

			client, closer, err := flags.buildClient(ctx)
			if err != nil {
				return err
			}
			defer closer()

			p := newProgress(logger)
			records, err := client.DecodeVINBatch(ctx, items)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Decoded %d VINs", len(records)))
			return renderRecords(records, flags.jsonOut)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read VINs from a file, one vin[,year] per line")
	return cmd
}

// readBatchFile reads one vin[,year] entry per line. Blank lines and
// lines starting with '#' are skipped.
func readBatchFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// parseBatchArgs parses "VIN" or "VIN,year" arguments.
func parseBatchArgs(args []string) ([]vpic.BatchItem, error) {
	items := make([]vpic.BatchItem, 0, len(args))
	for _, arg := range args {
		vin, yearStr, hasYear := strings.Cut(arg, ",")
		item := vpic.BatchItem{VIN: strings.TrimSpace(vin)}
		if hasYear {
			year, err := strconv.Atoi(strings.TrimSpace(yearStr))
			if err != nil {
				return nil, fmt.Errorf("invalid model year in %q", arg)
			}
			item.ModelYear = year
		}
		items = append(items, item)
	}
	return items, nil
}
