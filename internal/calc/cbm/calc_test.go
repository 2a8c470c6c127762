package cbm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Pallets(t *testing.T) {
	rate := decimal.RequireFromString("85.50")
	res, err := Calculate(Input{
		Unit:          UnitCm,
		Items:         []Item{{Length: 120, Width: 80, Height: 100, Quantity: 4}},
		GrossWeightKg: 2000,
		RatePerCBM:    &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, 3.84, res.TotalCBM)
	assert.Equal(t, 135.61, res.CubicFeet)
	assert.Equal(t, 4, res.TotalPieces)
	assert.Equal(t, 3.84, res.ChargeableTonnes)

	require.Len(t, res.Containers, 3)
	assert.Equal(t, "20GP", res.Containers[0].Type)
	assert.Equal(t, 11.6, res.Containers[0].FillPercent)
	assert.Equal(t, 1, res.Containers[0].ContainersNeeded)

	require.NotNil(t, res.FreightCost)
	assert.True(t, decimal.RequireFromString("328.32").Equal(*res.FreightCost), "got %s", res.FreightCost)
	assert.Equal(t, "USD", res.Currency)
}

func TestCalculate_WeightIsChargeable(t *testing.T) {
	rate := decimal.NewFromInt(100)
	res, err := Calculate(Input{
		Unit:          UnitM,
		Items:         []Item{{Length: 1, Width: 1, Height: 1, Quantity: 1}},
		GrossWeightKg: 2500,
		RatePerCBM:    &rate,
		Currency:      "AUD",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, res.ChargeableTonnes)
	assert.True(t, decimal.NewFromInt(250).Equal(*res.FreightCost))
	assert.Equal(t, "AUD", res.Currency)
}

func TestCalculate_ManyContainers(t *testing.T) {
	res, err := Calculate(Input{
		Unit:  UnitM,
		Items: []Item{{Length: 10, Width: 2, Height: 2, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, res.TotalCBM)
	assert.Equal(t, 3, res.Containers[0].ContainersNeeded)
	assert.Equal(t, 2, res.Containers[2].ContainersNeeded)
	assert.Nil(t, res.FreightCost)
}

func TestCalculate_Imperial(t *testing.T) {
	res, err := Calculate(Input{
		Unit:  UnitFt,
		Items: []Item{{Length: 10, Width: 10, Height: 10, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 28.317, res.TotalCBM)
	assert.Equal(t, 1000.0, res.CubicFeet)
}

func TestCalculate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"unknown unit", Input{Unit: "mm", Items: []Item{{1, 1, 1, 1}}}},
		{"no items", Input{Unit: UnitM}},
		{"zero dimension", Input{Unit: UnitM, Items: []Item{{1, 0, 1, 1}}}},
		{"zero quantity", Input{Unit: UnitM, Items: []Item{{1, 1, 1, 0}}}},
		{"negative weight", Input{Unit: UnitM, Items: []Item{{1, 1, 1, 1}}, GrossWeightKg: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestHandler_Calc(t *testing.T) {
	body := `{"unit":"cm","items":[{"length":120,"width":80,"height":100,"quantity":4}],"rate_per_cbm":"85.50","currency":"EUR"}`
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/cbm", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 3.84, res.TotalCBM)
	assert.Equal(t, "EUR", res.Currency)

	rec = httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/cbm", strings.NewReader(`{"unit":"cm","items":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
