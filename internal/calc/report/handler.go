package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Strapcalc/internal/calc/securing"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input); err != nil {
		securing.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"securing-report.pdf\"")
	w.Write(buf.Bytes())
}
