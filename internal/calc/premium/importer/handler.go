package importer

import (
	"errors"
	"net/http"

	"Strapcalc/internal/calc/securing"
)

const maxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Securing(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Import(file)
	if errors.Is(err, ErrEmptySheet) {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	securing.WriteJSON(w, http.StatusOK, res)
}
