package securing

type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

type DimensionUnit string

const (
	UnitM  DimensionUnit = "m"
	UnitFt DimensionUnit = "ft"
)

const (
	lbsPerKg = 2.20462
	mPerFt   = 0.3048
)

func (u WeightUnit) Valid() bool    { return u == UnitKg || u == UnitLbs }
func (u DimensionUnit) Valid() bool { return u == UnitM || u == UnitFt }

// ConvertWeight converts between kg and lbs. No rounding is applied.
func ConvertWeight(weight float64, from, to WeightUnit) float64 {
	if from == to {
		return weight
	}
	if from == UnitKg && to == UnitLbs {
		return weight * lbsPerKg
	}
	return weight / lbsPerKg
}

// ConvertDimension converts between metres and feet.
func ConvertDimension(length float64, from, to DimensionUnit) float64 {
	if from == to {
		return length
	}
	if from == UnitFt && to == UnitM {
		return length * mPerFt
	}
	return length / mPerFt
}

func WeightUnitForRegion(r Region) WeightUnit {
	return RegionFactorsFor(r).WeightUnit
}

func DimensionUnitForRegion(r Region) DimensionUnit {
	return RegionFactorsFor(r).DimensionUnit
}
