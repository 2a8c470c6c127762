package securing

import (
	"encoding/json"
	"errors"
	"net/http"

	"Strapcalc/internal/logging"

	"go.uber.org/zap"
)

type Handler struct{}

type errorResponse struct {
	Errors []string `json:"errors"`
}

type unitsResponse struct {
	Region        Region        `json:"region"`
	WeightUnit    WeightUnit    `json:"weight_unit"`
	DimensionUnit DimensionUnit `json:"dimension_unit"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	if res.NoSafeConfiguration {
		logging.Logger.Info("no safe strap configuration",
			zap.String("region", string(input.Cargo.Region)),
			zap.Float64("total_required_wll", res.TotalRequiredWLL))
	}
	WriteJSON(w, http.StatusOK, res)
}

// Units returns the canonical units of a region so forms can switch units when
// the region changes.
func (h *Handler) Units(w http.ResponseWriter, r *http.Request) {
	region := Region(r.URL.Query().Get("region"))
	if !region.Valid() {
		WriteJSON(w, http.StatusBadRequest, errorResponse{Errors: []string{"Unknown region"}})
		return
	}
	WriteJSON(w, http.StatusOK, unitsResponse{
		Region:        region,
		WeightUnit:    WeightUnitForRegion(region),
		DimensionUnit: DimensionUnitForRegion(region),
	})
}

func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	out := make([]RegionFactors, 0, len(Regions))
	for _, region := range Regions {
		out = append(out, RegionFactorsFor(region))
	}
	WriteJSON(w, http.StatusOK, out)
}

// WriteError answers 400 with the validation problems of err, or 500 for
// anything else.
func WriteError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusBadRequest, errorResponse{Errors: verr.Problems})
		return
	}
	logging.Logger.Error("securing calculation failed", zap.Error(err))
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Warn("encode response", zap.Error(err))
	}
}
