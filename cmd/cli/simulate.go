package main

import (
	"fmt"
	"os"
	"path/filepath"

	"macro-stress/internal/analysis"
	"macro-stress/internal/config"
	"macro-stress/internal/simulate"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		scenarioPath string
		outPath      string
		overrides    []string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scenario and write the projection as CSV",
		Example: `  macro-stress simulate --scenario examples/scenarios/severely_adverse.yaml --out results/severe.csv
  macro-stress simulate --scenario examples/scenarios/baseline.yaml --set okun_coefficient=2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(scenarioPath, overrides)
			if err != nil {
				return err
			}
			in, err := s.Inputs()
			if err != nil {
				return err
			}
			table, err := simulate.New().Run(in)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			if err := simulate.WriteTableCSV(outPath, table); err != nil {
				return err
			}
			log.Info().Str("scenario", s.Name).Str("out", outPath).Int("rows", table.Rows()).Msg("projection written")

			m := analysis.Stress(table)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d rows to %s\n", table.Rows(), outPath)
			fmt.Fprintf(out, "Peak unemployment=%.2f%% (q%d) Output gap trough=%.2f%% (q%d)\n",
				m.PeakUnemployment, m.PeakUnemploymentPeriod, m.TroughOutputGap, m.TroughOutputGapPeriod)
			fmt.Fprintf(out, "Peak BBB spread=%.2f Final policy rate=%.2f Cumulative real growth=%.2f%%\n",
				m.PeakBBBSpread, m.FinalPolicyRate, m.CumulativeRealGrowth)
			return nil
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to YAML scenario")
	cmd.Flags().StringVar(&outPath, "out", filepath.Join("results", "projection.csv"), "Output CSV path")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Calibration override name=value (repeatable)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

// loadScenario loads a scenario and applies --set overrides on top of its
// calibration.
func loadScenario(path string, overrides []string) (*config.Scenario, error) {
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return s, nil
	}
	set, err := config.ParseOverrides(overrides)
	if err != nil {
		return nil, err
	}
	s.Calibration = config.MergeCalibration(s.Calibration, set)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	log.Debug().Interface("overrides", set).Str("scenario", s.Name).Msg("calibration overrides applied")
	return s, nil
}
