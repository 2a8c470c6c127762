// Package cmd provides the strapcalc CLI commands.
package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"Strapcalc/internal/logging"
)

type rootOptions struct {
	verbose   bool
	logFormat string
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "strapcalc",
		Short: "Cargo securing and shipment volume calculators",
		Long: `strapcalc sizes lashing straps for a load under North American,
Australian or European securing rules, and works out shipment volume.

Examples:
  strapcalc securing --region europe --weight 1000 --length 9.2 --method direct
  strapcalc cbm --length 120 --width 80 --height 100 --unit cm --quantity 4
  strapcalc angle 60
  strapcalc tiedowns --length 22 --unit ft --region north_america`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.Config{Level: "warn", Format: opts.logFormat}
			if opts.verbose {
				cfg.Level = "debug"
			}
			return logging.Initialize(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")

	root.AddCommand(newSecuringCmd())
	root.AddCommand(newCBMCmd())
	root.AddCommand(newAngleCmd())
	root.AddCommand(newTieDownsCmd())
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
