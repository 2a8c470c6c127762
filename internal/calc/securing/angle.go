package securing

type angleBand struct {
	minDegrees float64
	efficiency float64
}

// Empirically adjusted industry values, not a pure sine curve (60° is 0.87).
var angleBands = []angleBand{
	{90, 1.00},
	{85, 0.99},
	{80, 0.98},
	{75, 0.96},
	{70, 0.94},
	{65, 0.91},
	{60, 0.87},
	{55, 0.82},
	{50, 0.77},
	{45, 0.71},
	{40, 0.64},
	{35, 0.57},
	{30, 0.50},
	{25, 0.42},
	{20, 0.34},
	{15, 0.26},
}

const minAngleEfficiency = 0.20

// AngleEfficiencyFactor maps a tie-down angle in degrees to the fraction of the
// strap force that holds the cargo down.
func AngleEfficiencyFactor(angleDegrees float64) float64 {
	for _, b := range angleBands {
		if angleDegrees >= b.minDegrees {
			return b.efficiency
		}
	}
	return minAngleEfficiency
}
