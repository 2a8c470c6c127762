package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"Strapcalc/internal/calc/securing"
)

func newAngleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "angle <degrees>",
		Short: "Print the lashing efficiency for an angle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid angle %q: %w", args[0], err)
			}
			if deg < 0 || deg > 90 {
				return fmt.Errorf("angle must be between 0 and 90 degrees, got %g", deg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", securing.AngleEfficiencyFactor(deg))
			return nil
		},
	}
}
