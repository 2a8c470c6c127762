package cmd

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"Strapcalc/internal/calc/cbm"
)

type cbmOptions struct {
	unit     string
	length   float64
	width    float64
	height   float64
	quantity int
	weightKg float64
	rate     string
	currency string
	json     bool
}

func newCBMCmd() *cobra.Command {
	opts := &cbmOptions{}
	cmd := &cobra.Command{
		Use:   "cbm",
		Short: "Work out shipment volume, container fill and freight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCBM(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.unit, "unit", "u", string(cbm.UnitCm), "dimension unit (cm, m, in, ft)")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "item length")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "item width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "item height")
	cmd.Flags().IntVarP(&opts.quantity, "quantity", "q", 1, "number of identical items")
	cmd.Flags().Float64Var(&opts.weightKg, "weight", 0, "gross weight in kg")
	cmd.Flags().StringVar(&opts.rate, "rate", "", "freight rate per chargeable tonne")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "currency of the rate")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	return cmd
}

func runCBM(w io.Writer, opts *cbmOptions) error {
	in := cbm.Input{
		Unit:          cbm.Unit(opts.unit),
		Items:         []cbm.Item{{Length: opts.length, Width: opts.width, Height: opts.height, Quantity: opts.quantity}},
		GrossWeightKg: opts.weightKg,
		Currency:      opts.currency,
	}
	if opts.rate != "" {
		rate, err := decimal.NewFromString(opts.rate)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", opts.rate, err)
		}
		in.RatePerCBM = &rate
	}

	res, err := cbm.Calculate(in)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(w, res)
	}

	fmt.Fprintf(w, "Volume:      %.3f m3 (%.2f ft3), %d pieces\n", res.TotalCBM, res.CubicFeet, res.TotalPieces)
	fmt.Fprintf(w, "Chargeable:  %.3f t\n", res.ChargeableTonnes)
	for _, c := range res.Containers {
		fmt.Fprintf(w, "  %-5s %6.1f%% full, %d needed\n", c.Type, c.FillPercent, c.ContainersNeeded)
	}
	if res.FreightCost != nil {
		fmt.Fprintf(w, "Freight:     %s %s\n", res.FreightCost.StringFixed(2), res.Currency)
	}
	if res.Notes != "" {
		fmt.Fprintln(w, res.Notes)
	}
	return nil
}
