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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
)

type ProductsStore interface {
	ListProducts(ctx context.Context) ([]database.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (database.Product, error)
	CreateProduct(ctx context.Context, arg database.CreateProductParams) (database.Product, error)
	UpdateProduct(ctx context.Context, arg database.UpdateProductParams) (database.Product, error)
	SoftDeleteProduct(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	AdjustProductStock(ctx context.Context, arg database.AdjustProductStockParams) (database.Product, error)
	DeductProductStock(ctx context.Context, arg database.DeductProductStockParams) (int32, error)
}

type ProductsHandler struct {
	store ProductsStore
}

func NewProductsHandler(store ProductsStore) *ProductsHandler {
	return &ProductsHandler{store: store}
}

type productRequest struct {
	CategoryID *uuid.UUID      `json:"category_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Stock      int32           `json:"stock"`
	ImageURL   string          `json:"image_url"`
}

func (req *productRequest) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.Price.IsNegative() {
		return "price must not be negative"
	}
	if req.Cost.IsNegative() {
		return "cost must not be negative"
	}
	if req.Stock < 0 {
		return "stock must not be negative"
	}
	return ""
}

func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		log.Printf("ERROR: failed to list products: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product, err := h.store.CreateProduct(r.Context(), database.CreateProductParams{
		CategoryID: uuidParam(req.CategoryID),
		Name:       req.Name,
		Price:      decimalNumeric(req.Price),
		Cost:       decimalNumeric(req.Cost),
		Stock:      req.Stock,
		ImageUrl:   textParam(req.ImageURL),
	})
	if err != nil {
		log.Printf("ERROR: failed to create product: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product, err := h.store.UpdateProduct(r.Context(), database.UpdateProductParams{
		CategoryID: uuidParam(req.CategoryID),
		Name:       req.Name,
		Price:      decimalNumeric(req.Price),
		Cost:       decimalNumeric(req.Cost),
		ImageUrl:   textParam(req.ImageURL),
		ID:         productID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("ERROR: failed to update product: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if _, err := h.store.SoftDeleteProduct(r.Context(), productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("ERROR: failed to delete product: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type adjustStockRequest struct {
	Delta int32 `json:"delta"`
}

// AdjustStock applies a signed correction to a product's stock count.
// Negative corrections go through the same guarded decrement as sales,
// so stock can never be adjusted below zero.
func (h *ProductsHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req adjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Delta == 0 {
		writeError(w, http.StatusBadRequest, "delta must be a non-zero integer")
		return
	}

	if _, err := h.store.GetProduct(r.Context(), productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("ERROR: failed to get product: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	if req.Delta < 0 {
		if _, err := h.store.DeductProductStock(r.Context(), database.DeductProductStockParams{
			ID:    productID,
			Stock: -req.Delta,
		}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				writeError(w, http.StatusConflict, "insufficient stock")
				return
			}
			log.Printf("ERROR: failed to deduct stock: %v", err)
			writeError(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		product, err := h.store.GetProduct(r.Context(), productID)
		if err != nil {
			log.Printf("ERROR: failed to get product: %v", err)
			writeError(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		writeJSON(w, http.StatusOK, toProductResponse(product))
		return
	}

	product, err := h.store.AdjustProductStock(r.Context(), database.AdjustProductStockParams{
		ID:    productID,
		Stock: req.Delta,
	})
	if err != nil {
		log.Printf("ERROR: failed to adjust stock: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func uuidParam(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func textParam(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func decimalNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}
	}
	return n
}
