package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
)

type QuickButtonsStore interface {
	ListQuickButtons(ctx context.Context) ([]database.QuickButton, error)
	CreateQuickButton(ctx context.Context, arg database.CreateQuickButtonParams) (database.QuickButton, error)
	DeleteQuickButton(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// QuickButtonsHandler manages the preset amount buttons on the sale
// screen, used for items sold without a catalog entry.
type QuickButtonsHandler struct {
	store QuickButtonsStore
}

func NewQuickButtonsHandler(store QuickButtonsStore) *QuickButtonsHandler {
	return &QuickButtonsHandler{store: store}
}

type quickButtonRequest struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *QuickButtonsHandler) List(w http.ResponseWriter, r *http.Request) {
	buttons, err := h.store.ListQuickButtons(r.Context())
	if err != nil {
		log.Printf("ERROR: failed to list quick buttons: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]quickButtonResponse, 0, len(buttons))
	for _, b := range buttons {
		resp = append(resp, quickButtonResponse{ID: b.ID, Label: b.Label, Amount: numericString(b.Amount)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *QuickButtonsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quickButtonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Label == "" {
		writeError(w, http.StatusBadRequest, "label is required")
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	button, err := h.store.CreateQuickButton(r.Context(), database.CreateQuickButtonParams{
		Label:  req.Label,
		Amount: decimalNumeric(req.Amount),
	})
	if err != nil {
		log.Printf("ERROR: failed to create quick button: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, quickButtonResponse{ID: button.ID, Label: button.Label, Amount: numericString(button.Amount)})
}

func (h *QuickButtonsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	buttonID, err := uuid.Parse(chi.URLParam(r, "buttonID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quick button id")
		return
	}

	if _, err := h.store.DeleteQuickButton(r.Context(), buttonID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "quick button not found")
			return
		}
		log.Printf("ERROR: failed to delete quick button: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
