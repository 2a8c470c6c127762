package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Strapcalc/internal/calc/securing"
	"Strapcalc/internal/logging"
)

type securingOptions struct {
	region        string
	weight        float64
	weightUnit    string
	length        float64
	dimensionUnit string
	method        string
	angle         float64
	json          bool
}

func newSecuringCmd() *cobra.Command {
	opts := &securingOptions{}
	cmd := &cobra.Command{
		Use:   "securing",
		Short: "Size tie-down straps for a load",
		Long: `Calculate the required working load limit for a load and list the
strap configurations that cover it.

Weight and length units default to the region's own units.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSecuring(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.region, "region", "r", string(securing.RegionEurope), "region (north_america, australia, europe)")
	cmd.Flags().Float64VarP(&opts.weight, "weight", "w", 0, "cargo weight")
	cmd.Flags().StringVar(&opts.weightUnit, "weight-unit", "", "weight unit (kg, lbs)")
	cmd.Flags().Float64VarP(&opts.length, "length", "l", 0, "cargo length")
	cmd.Flags().StringVar(&opts.dimensionUnit, "dimension-unit", "", "length unit (m, ft)")
	cmd.Flags().StringVarP(&opts.method, "method", "m", string(securing.MethodIndirect), "securing method (indirect, direct)")
	cmd.Flags().Float64VarP(&opts.angle, "angle", "a", 90, "lashing angle in degrees")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func (o *securingOptions) input() securing.Input {
	region := securing.Region(o.region)
	in := securing.Input{
		Cargo: securing.CargoInput{
			Region:        region,
			Weight:        o.weight,
			WeightUnit:    securing.WeightUnit(o.weightUnit),
			Length:        o.length,
			DimensionUnit: securing.DimensionUnit(o.dimensionUnit),
		},
		Method: securing.Method(o.method),
		Angle:  &o.angle,
	}
	if in.Cargo.WeightUnit == "" {
		in.Cargo.WeightUnit = securing.WeightUnitForRegion(region)
	}
	if in.Cargo.DimensionUnit == "" {
		in.Cargo.DimensionUnit = securing.DimensionUnitForRegion(region)
	}
	return in
}

func runSecuring(w io.Writer, opts *securingOptions) error {
	in := opts.input()
	logging.Logger.Debug("securing calculation",
		zap.String("region", string(in.Cargo.Region)),
		zap.Float64("weight", in.Cargo.Weight),
		zap.String("method", string(in.Method)),
	)

	res, err := securing.Calculate(in)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(w, res)
	}

	f := securing.RegionFactorsFor(in.Cargo.Region)
	fmt.Fprintf(w, "Standard:            %s\n", f.Standard)
	fmt.Fprintf(w, "Required capacity:   %.2f %s (incl. %.0f%% margin)\n", res.BaseRequiredWLL, res.Unit, f.SafetyMargin)
	fmt.Fprintf(w, "Method factor:       %.2f\n", res.MethodFactor)
	fmt.Fprintf(w, "Angle efficiency:    %.2f\n", res.AngleEfficiencyFactor)
	fmt.Fprintf(w, "Total required WLL:  %.0f %s\n", res.TotalRequiredWLL, res.Unit)
	fmt.Fprintf(w, "Minimum tie-downs:   %d\n\n", res.MinimumTieDowns)

	if res.NoSafeConfiguration {
		fmt.Fprintf(w, "WARNING: %s\n", res.Warning)
		return nil
	}
	fmt.Fprintln(w, "Recommended configurations:")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(w, "  %d x %.0f %s = %.0f %s, margin %.1f%%  %s\n",
			rec.StrapCount, rec.StrapWLL, rec.StrapUnit,
			rec.TotalCapacity, rec.StrapUnit, rec.SafetyMargin, rec.RecommendationReason)
	}
	return nil
}
