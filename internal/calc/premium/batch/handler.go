package batch

import (
	"encoding/json"
	"errors"
	"net/http"

	"Strapcalc/internal/calc/securing"
)

type Handler struct{}

func (h *Handler) Securing(w http.ResponseWriter, r *http.Request) {
	var input SecuringBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateSecuring(input)
	if err != nil {
		var verr *securing.ValidationError
		if errors.As(err, &verr) {
			securing.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error(), "errors": verr.Problems})
			return
		}
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	securing.WriteJSON(w, http.StatusOK, res)
}
