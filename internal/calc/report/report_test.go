package report

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Strapcalc/internal/calc/securing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	return Input{
		Project: "Depot transfer",
		Author:  "QA",
		Calculation: securing.Input{
			Cargo: securing.CargoInput{
				Region:        securing.RegionEurope,
				Weight:        1000,
				WeightUnit:    securing.UnitKg,
				Length:        9.2,
				DimensionUnit: securing.UnitM,
			},
			Method: securing.MethodDirect,
		},
	}
}

func TestRender(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleInput()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRender_NoSafeConfiguration(t *testing.T) {
	in := sampleInput()
	in.Calculation.Cargo.Weight = 900000
	in.Notes = "Split across two trailers."

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, in))
	assert.NotZero(t, buf.Len())
}

func TestRender_InvalidCalculation(t *testing.T) {
	in := sampleInput()
	in.Calculation.Cargo.Weight = 0

	err := Render(&bytes.Buffer{}, in)
	assert.True(t, errors.Is(err, securing.ErrInvalidInput))
}

func TestHandler_Generate(t *testing.T) {
	body := `{"project":"P","calculation":{"cargo":{"region":"australia","weight":800,"weight_unit":"kg","length":4,"dimension_unit":"m"},"method":"indirect","angle":45}}`
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	(&Handler{}).Generate(rec, httptest.NewRequest(http.MethodPost, "/report", strings.NewReader(`{"calculation":{}}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
