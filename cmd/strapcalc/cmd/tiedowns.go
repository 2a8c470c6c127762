package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"Strapcalc/internal/calc/securing"
)

type tieDownsOptions struct {
	region string
	length float64
	unit   string
}

func newTieDownsCmd() *cobra.Command {
	opts := &tieDownsOptions{}
	cmd := &cobra.Command{
		Use:   "tiedowns",
		Short: "Print the minimum number of tie-downs for a cargo length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region := securing.Region(opts.region)
			if !region.Valid() {
				return fmt.Errorf("unknown region %q", opts.region)
			}
			unit := securing.DimensionUnit(opts.unit)
			if unit == "" {
				unit = securing.DimensionUnitForRegion(region)
			}
			if !unit.Valid() {
				return fmt.Errorf("unknown dimension unit %q", opts.unit)
			}
			if !(opts.length >= 0) || math.IsInf(opts.length, 1) {
				return fmt.Errorf("cargo length must be a finite non-negative number, got %g", opts.length)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", securing.MinimumTieDownCount(opts.length, unit, region))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.region, "region", "r", string(securing.RegionEurope), "region (north_america, australia, europe)")
	cmd.Flags().Float64VarP(&opts.length, "length", "l", 0, "cargo length")
	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "length unit (m, ft); defaults to the region's unit")
	return cmd
}
