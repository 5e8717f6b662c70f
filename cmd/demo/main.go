package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"macro-stress/internal/analysis"
	"macro-stress/internal/config"
	"macro-stress/internal/logging"
	"macro-stress/internal/model"
	"macro-stress/internal/simulate"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Demo:
// - Build a small recession scenario in code (or load one with --scenario)
// - Run the projection engine
// - Print the first quarters of the headline series
func main() {
	if err := newDemoCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}

func newDemoCmd() *cobra.Command {
	var (
		scenarioPath string
		rows         int
		outCSV       string
	)
	cmd := &cobra.Command{
		Use:           "demo",
		Short:         "Run a built-in recession scenario and print the first quarters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.Setup(cmd.ErrOrStderr(), os.Getenv("LOG_LEVEL"), logging.FormatAuto)

			name := "demo_recession"
			in, err := demoInputs()
			if scenarioPath != "" {
				var s *config.Scenario
				if s, err = config.Load(scenarioPath); err == nil {
					name = s.Name
					in, err = s.Inputs()
				}
			}
			if err != nil {
				return err
			}

			table, err := simulate.New().Run(in)
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), name, table, rows)

			if outCSV != "" {
				if err := os.MkdirAll(filepath.Dir(outCSV), 0o755); err != nil {
					return err
				}
				if err := simulate.WriteTableCSV(outCSV, table); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nWrote CSV: %s\n", outCSV)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to YAML scenario (optional)")
	cmd.Flags().IntVarP(&rows, "rows", "n", 8, "Number of quarters to print")
	cmd.Flags().StringVar(&outCSV, "out", "", "Optional path to write the projection CSV (e.g. results/demo.csv)")
	return cmd
}

// demoInputs is a two-year recession: unemployment seeded at 4.0 and 5.0 and
// left to the gap dynamics, with a widening credit spread.
func demoInputs() (*model.Inputs, error) {
	const horizon = 12
	potential := make(model.Series, horizon)
	potential[0] = 22800
	for t := 1; t < horizon; t++ {
		potential[t] = potential[t-1] * 1.0045
	}
	return model.NewInputs(model.Inputs{
		Horizon: horizon,
		Series: model.SeriesInputs{
			Unemployment:           model.Series{4.0, 5.0},
			NaturalUnemployment:    model.Series{4.2},
			PotentialGDP:           potential,
			CoreInflationInitial:   model.Series{2.9, 2.8},
			InflationExpectations:  model.Series{2.2},
			InflationTarget:        model.Series{2.0},
			NaturalRate:            model.Series{0.6},
			TermPremium10Intercept: model.Series{0.9},
			TermPremium5Intercept:  model.Series{0.5},
		},
		Initial: model.Initial{
			RealGDP:       22750,
			NominalGDP:    29100,
			NominalDPI:    21800,
			PolicyRate:    4.4,
			TermPremium10: 0.4,
			TermPremium5:  0.2,
			BBBSpread:     1.3,
			HeadlineWedge: 0.1,
		},
		Shocks: model.Shocks{
			BBBSpread: model.Series{0, 0.8, 1.2, 0.9, 0.5},
		},
		Calibration: model.DefaultCalibration(),
	})
}

func printTable(out io.Writer, name string, t *simulate.Table, rows int) {
	fmt.Fprintf(out, "Scenario=%s quarters=%d\n\n", name, t.Rows())
	fmt.Fprintf(out, "%-3s %7s %7s %8s %7s %7s %7s %7s %7s\n",
		"q", "unemp", "core", "growth", "gap", "policy", "10y", "bbb", "cpi")
	for i := 0; i < min(rows, t.Rows()); i++ {
		fmt.Fprintf(out, "%-3d %7.2f %7.2f %8.2f %7.2f %7.2f %7.2f %7.2f %7.2f\n",
			i,
			t.Value(i, simulate.ColUnemploymentRate),
			t.Value(i, simulate.ColCorePCEInflation),
			t.Value(i, simulate.ColRealGDPGrowth),
			t.Value(i, simulate.ColOutputGap),
			t.Value(i, simulate.ColPolicyRate),
			t.Value(i, simulate.ColYield10Y),
			t.Value(i, simulate.ColBBBSpread),
			t.Value(i, simulate.ColCPIInflation),
		)
	}

	m := analysis.Stress(t)
	fmt.Fprintf(out, "\nDone. Peak unemployment=%.2f%% Output gap trough=%.2f%% Peak BBB spread=%.2f\n",
		m.PeakUnemployment, m.TroughOutputGap, m.PeakBBBSpread)
}
