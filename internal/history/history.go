package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"Strapcalc/internal/auth"
	"Strapcalc/internal/calc/cbm"
	"Strapcalc/internal/calc/securing"
	"Strapcalc/internal/logging"
	"Strapcalc/internal/repo"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	KindSecuring = "securing"
	KindCBM      = "cbm"

	defaultLimit = 20
	maxLimit     = 100
	maxNameLen   = 120
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string          `json:"name"`
	Kind  string          `json:"kind"`
	Input json.RawMessage `json:"input"`
}

type SaveResponse struct {
	ID     int `json:"id"`
	Result any `json:"result"`
}

var errUnknownKind = errors.New("unknown calculation kind")

// run recalculates the input so that only results produced by this server are
// stored.
func run(kind string, input json.RawMessage) (any, error) {
	switch kind {
	case KindSecuring:
		var in securing.Input
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decode securing input: %w", err)
		}
		return securing.Calculate(in)
	case KindCBM:
		var in cbm.Input
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, fmt.Errorf("decode cbm input: %w", err)
		}
		return cbm.Calculate(in)
	default:
		return nil, errUnknownKind
	}
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Input) == 0 {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(req.Name) > maxNameLen {
		http.Error(w, "Name too long", http.StatusBadRequest)
		return
	}

	res, err := run(req.Kind, req.Input)
	if err != nil {
		if errors.Is(err, securing.ErrInvalidInput) {
			securing.WriteError(w, err)
			return
		}
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	encoded, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.SaveCalculation(r.Context(), repo.Calculation{
		UserID: userID,
		Name:   req.Name,
		Kind:   req.Kind,
		Input:  req.Input,
		Result: encoded,
	})
	if err != nil {
		logging.Logger.Error("save calculation", zap.Int("user_id", userID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	securing.WriteJSON(w, http.StatusCreated, SaveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxLimit)
	}

	list, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		logging.Logger.Error("list calculations", zap.Int("user_id", userID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	securing.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.GetCalculation(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Calculation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logging.Logger.Error("get calculation", zap.Int("id", id), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	securing.WriteJSON(w, http.StatusOK, c)
}
