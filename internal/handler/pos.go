package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
)

type POSStore interface {
	ListCategories(ctx context.Context) ([]database.Category, error)
	ListActiveProducts(ctx context.Context) ([]database.Product, error)
	ListQuickButtons(ctx context.Context) ([]database.QuickButton, error)
	GetSetting(ctx context.Context, key string) (database.Setting, error)
}

// POSHandler serves the sale screen payload: categories, active products
// and quick amount buttons in one round trip.
type POSHandler struct {
	store POSStore
}

func NewPOSHandler(store POSStore) *POSHandler {
	return &POSHandler{store: store}
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int32     `json:"sort_order"`
}

type productResponse struct {
	ID         uuid.UUID  `json:"id"`
	CategoryID *uuid.UUID `json:"category_id"`
	Name       string     `json:"name"`
	Price      string     `json:"price"`
	Cost       string     `json:"cost"`
	Stock      int32      `json:"stock"`
	ImageURL   *string    `json:"image_url"`
	IsActive   bool       `json:"is_active"`
}

type quickButtonResponse struct {
	ID     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Amount string    `json:"amount"`
}

type posCatalogResponse struct {
	Categories   []categoryResponse    `json:"categories"`
	Products     []productResponse     `json:"products"`
	QuickButtons []quickButtonResponse `json:"quick_buttons"`
	PromptPayID  string                `json:"promptpay_id"`
}

func (h *POSHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list categories: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	products, err := h.store.ListActiveProducts(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list products: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	buttons, err := h.store.ListQuickButtons(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list quick buttons: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := posCatalogResponse{
		Categories:   make([]categoryResponse, 0, len(categories)),
		Products:     make([]productResponse, 0, len(products)),
		QuickButtons: make([]quickButtonResponse, 0, len(buttons)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	for _, b := range buttons {
		resp.QuickButtons = append(resp.QuickButtons, quickButtonResponse{
			ID:     b.ID,
			Label:  b.Label,
			Amount: numericString(b.Amount),
		})
	}

	// The QR payment target. Absent until the shop configures it.
	if setting, err := h.store.GetSetting(ctx, "promptpay_id"); err == nil {
		resp.PromptPayID = setting.Value
	} else if !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("ERROR: failed to get promptpay setting: %v", err)
	}

	writeJSON(w, http.StatusOK, resp)
}

func toCategoryResponse(c database.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder}
}

func toProductResponse(p database.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		CategoryID: uuidPtr(p.CategoryID),
		Name:       p.Name,
		Price:      numericString(p.Price),
		Cost:       numericString(p.Cost),
		Stock:      p.Stock,
		ImageURL:   textPtr(p.ImageUrl),
		IsActive:   p.IsActive,
	}
}

func numericString(n pgtype.Numeric) string {
	if !n.Valid {
		return "0"
	}
	v, err := n.Value()
	if err != nil {
		return "0"
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "0"
}

func numericDecimal(n pgtype.Numeric) decimal.Decimal {
	d, err := decimal.NewFromString(numericString(n))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func uuidPtr(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	id := uuid.UUID(u.Bytes)
	return &id
}

func timePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
