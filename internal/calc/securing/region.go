package securing

type Region string

const (
	RegionNorthAmerica Region = "north_america"
	RegionAustralia    Region = "australia"
	RegionEurope       Region = "europe"
)

// Regions lists the supported regions in display order.
var Regions = []Region{RegionNorthAmerica, RegionAustralia, RegionEurope}

func (r Region) Valid() bool {
	_, ok := regionTable[r]
	return ok
}

// TieDownLengths are the cargo-length breakpoints of the minimum tie-down rule,
// expressed in the region's dimension unit. Beyond Long, one more tie-down is
// required for every Step (or part of it).
type TieDownLengths struct {
	Short float64 `json:"short"`
	Long  float64 `json:"long"`
	Step  float64 `json:"step"`
}

type RegionFactors struct {
	Region            Region         `json:"region"`
	Standard          string         `json:"standard"`
	SafetyMargin      float64        `json:"safety_margin"`   // percent
	IndirectFactor    float64        `json:"indirect_factor"` // fraction
	MinTieDownLengths TieDownLengths `json:"min_tie_down_lengths"`
	WeightUnit        WeightUnit     `json:"weight_unit"`
	DimensionUnit     DimensionUnit  `json:"dimension_unit"`

	model loadModel
}

// Published regulatory minimums. Do not change without a standards reference.
var regionTable = map[Region]RegionFactors{
	RegionNorthAmerica: {
		Region:            RegionNorthAmerica,
		Standard:          "DOT 49 CFR 393.106",
		SafetyMargin:      20,
		IndirectFactor:    0.5,
		MinTieDownLengths: TieDownLengths{Short: 10, Long: 10, Step: 10},
		WeightUnit:        UnitLbs,
		DimensionUnit:     UnitFt,
		model:             aggregateModel{share: 0.5},
	},
	RegionAustralia: {
		Region:            RegionAustralia,
		Standard:          "AS/NZS 4380",
		SafetyMargin:      25,
		IndirectFactor:    0.8,
		MinTieDownLengths: TieDownLengths{Short: 3.0, Long: 6.0, Step: 3.0},
		WeightUnit:        UnitKg,
		DimensionUnit:     UnitM,
		model:             lashingModel{},
	},
	RegionEurope: {
		Region:            RegionEurope,
		Standard:          "EN 12195-2",
		SafetyMargin:      30,
		IndirectFactor:    0.7,
		MinTieDownLengths: TieDownLengths{Short: 3.0, Long: 6.0, Step: 3.0},
		WeightUnit:        UnitKg,
		DimensionUnit:     UnitM,
		model:             lashingModel{},
	},
}

// RegionFactorsFor returns the constants of r. Unknown regions get Europe's
// factors, the strictest of the table.
func RegionFactorsFor(r Region) RegionFactors {
	if f, ok := regionTable[r]; ok {
		return f
	}
	return regionTable[RegionEurope]
}

func IndirectTieDownFactor(r Region) float64 {
	return RegionFactorsFor(r).IndirectFactor
}

// loadFactors is what a regional model derives from the required actual load
// capacity: the WLL the straps must provide in total and the factors used.
type loadFactors struct {
	total           float64
	methodFactor    float64
	angleEfficiency float64
}

type loadModel interface {
	requiredWLL(requiredActual float64, method Method, angle float64, f RegionFactors) loadFactors
}

// aggregateModel is the DOT aggregate WLL rule: the counted strap contributions
// must add up to share of the required capacity, independent of the angle.
// A direct tie-down only counts for half of its WLL.
//
// Indirect tie-downs anchored back on the same side of the vehicle should also
// count for half, but Method does not distinguish that case.
type aggregateModel struct {
	share float64
}

func (m aggregateModel) requiredWLL(requiredActual float64, method Method, _ float64, _ RegionFactors) loadFactors {
	methodFactor := 1.0
	if method == MethodDirect {
		methodFactor = 0.5
	}
	aggregate := requiredActual * m.share
	return loadFactors{
		total:           aggregate / methodFactor,
		methodFactor:    methodFactor,
		angleEfficiency: 1.0,
	}
}

// lashingModel applies the method factor and the angle efficiency of
// over-the-top lashing (AS/NZS 4380, EN 12195-2).
type lashingModel struct{}

func (lashingModel) requiredWLL(requiredActual float64, method Method, angle float64, f RegionFactors) loadFactors {
	methodFactor, efficiency := 1.0, 1.0
	if method != MethodDirect {
		methodFactor = f.IndirectFactor
		efficiency = AngleEfficiencyFactor(angle)
	}
	return loadFactors{
		total:           requiredActual / (methodFactor * efficiency),
		methodFactor:    methodFactor,
		angleEfficiency: efficiency,
	}
}
