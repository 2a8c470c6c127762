package sweep

import (
	"fmt"
	"math"

	"Strapcalc/internal/calc/securing"
)

const (
	defaultFrom = 15.0
	defaultTo   = 90.0
	defaultStep = 5.0
	maxRows     = 181
)

type Input struct {
	Cargo securing.CargoInput `json:"cargo"`

	// From and To default to 15 and 90 when omitted.
	From *float64 `json:"from,omitempty"`
	To   *float64 `json:"to,omitempty"`
	Step float64  `json:"step"`
}

type Row struct {
	Angle               float64                  `json:"angle"`
	Efficiency          float64                  `json:"efficiency"`
	TotalRequiredWLL    float64                  `json:"total_required_wll"`
	Best                *securing.Recommendation `json:"best,omitempty"`
	NoSafeConfiguration bool                     `json:"no_safe_configuration"`
}

type Result struct {
	Unit securing.WeightUnit `json:"unit"`
	Rows []Row               `json:"rows"`
	// LowestSafeAngle is the flattest angle of the sweep that still has a safe
	// configuration; nil when none has.
	LowestSafeAngle *float64 `json:"lowest_safe_angle"`
	Notes           string   `json:"notes"`
}

// Angles evaluates indirect lashing of the cargo over a range of angles.
func Angles(in Input) (Result, error) {
	if problems := securing.ValidateCargoInput(in.Cargo); len(problems) > 0 {
		return Result{}, &securing.ValidationError{Problems: problems}
	}
	from, to, step := defaultFrom, defaultTo, in.Step
	if in.From != nil {
		from = *in.From
	}
	if in.To != nil {
		to = *in.To
	}
	if !(step > 0) {
		step = defaultStep
	}
	if !(from >= 0) || !(to <= 90) || from > to || math.IsInf(step, 0) {
		return Result{}, fmt.Errorf("invalid angle range %.1f-%.1f", from, to)
	}
	// The epsilon keeps the last angle when (to-from)/step lands just below an integer.
	span := (to-from)/step + 1e-9
	if span+1 > maxRows {
		return Result{}, fmt.Errorf("step too small")
	}
	rows := int(math.Floor(span)) + 1

	out := Result{
		Unit:  in.Cargo.WeightUnit,
		Rows:  []Row{},
		Notes: "Indirect (over-the-top) lashing.",
	}
	if in.Cargo.Region == securing.RegionNorthAmerica {
		out.Notes = "Indirect lashing; the aggregate WLL rule does not depend on the angle."
	}
	for i := 0; i < rows; i++ {
		angle := math.Min(from+float64(i)*step, to)
		res := securing.CalculateRequiredWLL(in.Cargo, securing.MethodIndirect, angle)
		row := Row{
			Angle:               angle,
			Efficiency:          res.AngleEfficiencyFactor,
			TotalRequiredWLL:    res.TotalRequiredWLL,
			NoSafeConfiguration: !res.HasSafeConfiguration(),
		}
		if res.HasSafeConfiguration() {
			best := res.Recommendations[0]
			row.Best = &best
			if out.LowestSafeAngle == nil {
				a := angle
				out.LowestSafeAngle = &a
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
