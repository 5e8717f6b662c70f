package main

import (
	"fmt"

	"macro-stress/internal/config"
	"macro-stress/internal/simulate"

	"github.com/spf13/cobra"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default calibration as a calibration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := config.DefaultCalibrationYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the projection's output columns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, c := range simulate.ColumnCatalog() {
				fmt.Fprintf(out, "%-24s %-22s %s\n", c.Name, c.Units, c.Description)
			}
		},
	}
}
