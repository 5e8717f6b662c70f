package main

import (
	"os"

	"macro-stress/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:     "macro-stress",
		Short:   "Quarterly macroeconomic stress-test projections",
		Version: version,
		Long: `macro-stress projects unemployment, inflation, output, interest rates,
credit spreads and nominal aggregates over a quarterly horizon from a YAML
scenario file and a calibration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(cmd.ErrOrStderr(), logLevel, logging.FormatAuto)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv("LOG_LEVEL"), "Log level (debug|info|warn|error)")

	root.AddCommand(
		newSimulateCmd(),
		newCompareCmd(),
		newDefaultsCmd(),
		newColumnsCmd(),
	)
	return root
}
