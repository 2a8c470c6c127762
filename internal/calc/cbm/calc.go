package cbm

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitCm Unit = "cm"
	UnitM  Unit = "m"
	UnitIn Unit = "in"
	UnitFt Unit = "ft"
)

var metresPer = map[Unit]float64{
	UnitCm: 0.01,
	UnitM:  1,
	UnitIn: 0.0254,
	UnitFt: 0.3048,
}

const cubicFeetPerCBM = 35.3147

type Container struct {
	Type        string  `json:"type"`
	CapacityCBM float64 `json:"capacity_cbm"`
}

// Usable load volumes of standard sea containers.
var Containers = []Container{
	{Type: "20GP", CapacityCBM: 33},
	{Type: "40GP", CapacityCBM: 67},
	{Type: "40HC", CapacityCBM: 76},
}

type Item struct {
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

type Input struct {
	Unit          Unit             `json:"unit"`
	Items         []Item           `json:"items"`
	GrossWeightKg float64          `json:"gross_weight_kg"`
	RatePerCBM    *decimal.Decimal `json:"rate_per_cbm,omitempty"`
	Currency      string           `json:"currency,omitempty"`
}

type ContainerFill struct {
	Container
	FillPercent      float64 `json:"fill_percent"`
	ContainersNeeded int     `json:"containers_needed"`
}

type Result struct {
	TotalCBM         float64          `json:"total_cbm"`
	CubicFeet        float64          `json:"cubic_feet"`
	TotalPieces      int              `json:"total_pieces"`
	ChargeableTonnes float64          `json:"chargeable_tonnes"` // W/M: max(volume, weight in t)
	Containers       []ContainerFill  `json:"containers"`
	FreightCost      *decimal.Decimal `json:"freight_cost,omitempty"`
	Currency         string           `json:"currency,omitempty"`
	Notes            string           `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	factor, ok := metresPer[in.Unit]
	if !ok {
		return Result{}, fmt.Errorf("invalid unit %q", in.Unit)
	}
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items provided")
	}
	if in.GrossWeightKg < 0 {
		return Result{}, fmt.Errorf("invalid gross weight")
	}

	volume := 0.0
	pieces := 0
	for i, item := range in.Items {
		if item.Length <= 0 || item.Width <= 0 || item.Height <= 0 {
			return Result{}, fmt.Errorf("item %d: invalid dimensions", i+1)
		}
		if item.Quantity < 1 {
			return Result{}, fmt.Errorf("item %d: invalid quantity", i+1)
		}
		l, w, h := item.Length*factor, item.Width*factor, item.Height*factor
		volume += l * w * h * float64(item.Quantity)
		pieces += item.Quantity
	}

	total := round(volume, 3)
	chargeable := math.Max(total, round(in.GrossWeightKg/1000, 3))

	res := Result{
		TotalCBM:         total,
		CubicFeet:        round(volume*cubicFeetPerCBM, 2),
		TotalPieces:      pieces,
		ChargeableTonnes: chargeable,
		Containers:       make([]ContainerFill, 0, len(Containers)),
		Notes:            "Gross volume; stacking and packing losses are not included.",
	}
	for _, c := range Containers {
		res.Containers = append(res.Containers, ContainerFill{
			Container:        c,
			FillPercent:      round(volume/c.CapacityCBM*100, 1),
			ContainersNeeded: int(math.Ceil(volume / c.CapacityCBM)),
		})
	}

	if in.RatePerCBM != nil {
		if in.RatePerCBM.IsNegative() {
			return Result{}, fmt.Errorf("invalid rate")
		}
		cost := decimal.NewFromFloat(chargeable).Mul(*in.RatePerCBM).Round(2)
		res.FreightCost = &cost
		res.Currency = in.Currency
		if res.Currency == "" {
			res.Currency = "USD"
		}
	}
	return res, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
