package securing

import "math"

const minTieDowns = 2

// MinimumTieDownCount returns the regulatory minimum number of tie-downs for a
// cargo of the given length. The overflow past the long breakpoint is always
// rounded up.
func MinimumTieDownCount(length float64, unit DimensionUnit, r Region) int {
	f := RegionFactorsFor(r)
	l := ConvertDimension(length, unit, f.DimensionUnit)
	lengths := f.MinTieDownLengths

	if l <= lengths.Short {
		return minTieDowns
	}
	if lengths.Long > lengths.Short {
		if l <= lengths.Long {
			return minTieDowns + 1
		}
		return minTieDowns + 1 + int(math.Ceil((l-lengths.Long)/lengths.Step))
	}
	return minTieDowns + int(math.Ceil((l-lengths.Short)/lengths.Step))
}
