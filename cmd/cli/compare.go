package main

import (
	"fmt"

	"macro-stress/internal/analysis"
	"macro-stress/internal/simulate"

	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var (
		paths     []string
		overrides []string
	)
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Run several scenarios and rank them by severity",
		Example: `  macro-stress compare --scenario examples/scenarios/baseline.yaml --scenario examples/scenarios/severely_adverse.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := simulate.New()
			tables := make(map[string]*simulate.Table, len(paths))
			for _, p := range paths {
				s, err := loadScenario(p, overrides)
				if err != nil {
					return err
				}
				if _, dup := tables[s.Name]; dup {
					return fmt.Errorf("scenario name %q used twice", s.Name)
				}
				in, err := s.Inputs()
				if err != nil {
					return err
				}
				t, err := engine.Run(in)
				if err != nil {
					return fmt.Errorf("%s: %w", s.Name, err)
				}
				tables[s.Name] = t
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-20s %-8s %-8s %-9s %-8s %-8s\n", "rank", "scenario", "peak_u", "gap_min", "real_cum", "bbb_max", "policy_T")
			for i, r := range analysis.RankBySeverity(tables) {
				fmt.Fprintf(out, "%-4d %-20s %-8.2f %-8.2f %-9.2f %-8.2f %-8.2f\n",
					i+1,
					r.Name,
					r.PeakUnemployment,
					r.TroughOutputGap,
					r.CumulativeRealGrowth,
					r.PeakBBBSpread,
					r.FinalPolicyRate,
				)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&paths, "scenario", nil, "Path to YAML scenario (repeatable)")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Calibration override applied to every scenario (repeatable)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}
