package securing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Method string

const (
	MethodIndirect Method = "indirect"
	MethodDirect   Method = "direct"
)

func (m Method) Valid() bool { return m == MethodIndirect || m == MethodDirect }

type CargoInput struct {
	Region        Region        `json:"region"`
	Weight        float64       `json:"weight"`
	WeightUnit    WeightUnit    `json:"weight_unit"`
	Length        float64       `json:"length"`
	DimensionUnit DimensionUnit `json:"dimension_unit"`
}

// CalculationResult holds weights in the unit of the CargoInput. Recommendations
// carry their own strap unit.
type CalculationResult struct {
	BaseRequiredWLL       float64          `json:"base_required_wll"`
	TotalRequiredWLL      float64          `json:"total_required_wll"`
	MethodFactor          float64          `json:"method_factor"`
	AngleEfficiencyFactor float64          `json:"angle_efficiency_factor"`
	MinimumTieDowns       int              `json:"minimum_tie_downs"`
	Unit                  WeightUnit       `json:"unit"`
	Recommendations       []Recommendation `json:"recommendations"`
}

// HasSafeConfiguration reports whether at least one strap configuration clears
// the regional safety margin.
func (r CalculationResult) HasSafeConfiguration() bool {
	return len(r.Recommendations) > 0
}

// CalculateRequiredWLL derives the capacity the lashing must provide for the
// cargo and the strap configurations that satisfy it. in.Weight must be > 0;
// use ValidateCargoInput first.
func CalculateRequiredWLL(in CargoInput, method Method, angleDegrees float64) CalculationResult {
	f := RegionFactorsFor(in.Region)

	weightKg := ConvertWeight(in.Weight, in.WeightUnit, UnitKg)
	requiredActual := weightKg * (1 + f.SafetyMargin/100)

	lf := f.model.requiredWLL(requiredActual, method, angleDegrees, f)

	minCount := MinimumTieDownCount(in.Length, in.DimensionUnit, in.Region)
	recs := GenerateRecommendations(lf.total, UnitKg, minCount, in.Region)

	// Rounded half away from zero, not up.
	// TODO: confirm with the standards owner whether this should round up.
	total := math.Round(ConvertWeight(lf.total, UnitKg, in.WeightUnit))

	return CalculationResult{
		BaseRequiredWLL:       ConvertWeight(requiredActual, UnitKg, in.WeightUnit),
		TotalRequiredWLL:      total,
		MethodFactor:          lf.methodFactor,
		AngleEfficiencyFactor: lf.angleEfficiency,
		MinimumTieDowns:       minCount,
		Unit:                  in.WeightUnit,
		Recommendations:       recs,
	}
}

// ValidateCargoInput returns the problems with in as user-facing messages.
// An empty slice means the input can be calculated.
func ValidateCargoInput(in CargoInput) []string {
	errs := []string{}
	if !in.Region.Valid() {
		errs = append(errs, fmt.Sprintf("Unknown region %q", in.Region))
	}
	if !(in.Weight > 0) {
		errs = append(errs, "Cargo weight must be greater than 0")
	} else if math.IsInf(in.Weight, 1) {
		errs = append(errs, "Cargo weight must be a finite number")
	}
	if !in.WeightUnit.Valid() {
		errs = append(errs, fmt.Sprintf("Unknown weight unit %q", in.WeightUnit))
	}
	if !(in.Length >= 0) {
		errs = append(errs, "Cargo length cannot be negative")
	} else if math.IsInf(in.Length, 1) {
		errs = append(errs, "Cargo length must be a finite number")
	}
	if !in.DimensionUnit.Valid() {
		errs = append(errs, fmt.Sprintf("Unknown dimension unit %q", in.DimensionUnit))
	}
	return errs
}

var ErrInvalidInput = errors.New("invalid input")

// ValidationError lists every problem found in a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

type Input struct {
	Cargo  CargoInput `json:"cargo"`
	Method Method     `json:"method"`
	Angle  *float64   `json:"angle,omitempty"`
}

type Result struct {
	CalculationResult
	NoSafeConfiguration bool   `json:"no_safe_configuration"`
	Warning             string `json:"warning,omitempty"`
}

const (
	defaultAngle       = 90.0
	noSafeConfigNotice = "No safe strap configuration found. Split the load or use a higher rated strap."
)

// AngleOrDefault returns the requested angle, or 90° when none was given.
func (in Input) AngleOrDefault() float64 {
	if in.Angle == nil {
		return defaultAngle
	}
	return *in.Angle
}

// Validate checks the cargo, the method and the angle.
func (in Input) Validate() error {
	problems := ValidateCargoInput(in.Cargo)
	if !in.Method.Valid() {
		problems = append(problems, fmt.Sprintf("Unknown securing method %q", in.Method))
	}
	if a := in.AngleOrDefault(); !(a >= 0 && a <= 90) {
		problems = append(problems, "Lashing angle must be between 0 and 90 degrees")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{CalculationResult: CalculateRequiredWLL(in.Cargo, in.Method, in.AngleOrDefault())}
	if !res.HasSafeConfiguration() {
		res.NoSafeConfiguration = true
		res.Warning = noSafeConfigNotice
	}
	return res, nil
}
