package cli

import (
	"context"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vehiclekit/vpic/pkg/buildinfo"
)

// Execute runs the vpic CLI. The context carries signal cancellation
// from main; every command passes it down to the client so an
// interrupt aborts in-flight requests.
//
// Logging goes to stderr at info level, or debug with --verbose. The
// logger is attached to the command context and retrieved with
// loggerFromContext.
func Execute(ctx context.Context) error {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "vpic",
		Short:        "Query the NHTSA vPIC vehicle database",
		Long:         `vpic queries the NHTSA Vehicle Product Information Catalog: decode VINs and WMIs, list makes, models and manufacturers, and look up vehicle variables, equipment plants and regulatory filings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&flags.jsonOut, "json", false, "output JSON instead of tables")
	pf.BoolVar(&flags.rawNames, "raw-names", false, "keep the upstream API's field spelling")
	pf.StringVar(&flags.baseURL, "base-url", "", "alternative vPIC instance URL")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-request timeout")
	pf.StringVar(&flags.configFile, "config", "", "config file (default ~/.config/vpic/config.toml)")
	pf.StringVar(&flags.cacheMode, "cache", "", "response cache backend: file, redis or off")
	pf.DurationVar(&flags.cacheTTL, "cache-ttl", 24*time.Hour, "response cache entry lifetime")
	pf.StringVar(&flags.redisAddr, "redis-addr", "", "redis address for --cache=redis")

	root.AddCommand(newDecodeCmd(flags))
	root.AddCommand(newWMICmd(flags))
	root.AddCommand(newMakesCmd(flags))
	root.AddCommand(newModelsCmd(flags))
	root.AddCommand(newTypesCmd(flags))
	root.AddCommand(newManufacturersCmd(flags))
	root.AddCommand(newVariablesCmd(flags))
	root.AddCommand(newPlantsCmd(flags))
	root.AddCommand(newPartsCmd(flags))
	root.AddCommand(newSpecsCmd(flags))
	root.AddCommand(newCacheCmd(flags))

	return root.ExecuteContext(ctx)
}
