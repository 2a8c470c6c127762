package sweep

import (
	"encoding/json"
	"errors"
	"net/http"

	"Strapcalc/internal/calc/securing"
)

type Handler struct{}

func (h *Handler) Angles(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Angles(input)
	if err != nil {
		if errors.Is(err, securing.ErrInvalidInput) {
			securing.WriteError(w, err)
			return
		}
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	securing.WriteJSON(w, http.StatusOK, res)
}
