// Command strapcalc runs the cargo securing and CBM calculators from a shell.
package main

import (
	"os"

	"Strapcalc/cmd/strapcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
