package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
	"github.com/raan-pos/api/internal/enum"
	"github.com/raan-pos/api/internal/service"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// OrderWorkflow covers the transactional order operations.
// *service.OrderService satisfies it.
type OrderWorkflow interface {
	SubmitOrder(ctx context.Context, input service.SubmitOrderInput) (service.SubmitOrderResult, error)
	SettleDebt(ctx context.Context, orderID uuid.UUID, method string) (service.SettleDebtResult, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) (service.DeleteOrderResult, error)
}

type OrdersStore interface {
	ListOrders(ctx context.Context, arg database.ListOrdersParams) ([]database.Order, error)
	ListUnpaidOrders(ctx context.Context) ([]database.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.OrderItem, error)
	UpdateOrderItemName(ctx context.Context, arg database.UpdateOrderItemNameParams) (database.OrderItem, error)
}

type OrdersHandler struct {
	workflow OrderWorkflow
	store    OrdersStore
}

func NewOrdersHandler(workflow OrderWorkflow, store OrdersStore) *OrdersHandler {
	return &OrdersHandler{workflow: workflow, store: store}
}

type orderItemRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	PaymentMethod   string             `json:"payment_method"`
	Total           decimal.Decimal    `json:"total"`
	SlipURL         string             `json:"slip_url"`
	CustomerName    string             `json:"customer_name"`
	CustomerContact string             `json:"customer_contact"`
}

type orderResponse struct {
	ID              uuid.UUID  `json:"id"`
	TotalAmount     string     `json:"total_amount"`
	PaymentMethod   string     `json:"payment_method"`
	Status          string     `json:"status"`
	SlipURL         *string    `json:"slip_url"`
	CustomerName    *string    `json:"customer_name"`
	CustomerContact *string    `json:"customer_contact"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at"`
}

type orderItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int32      `json:"quantity"`
	UnitPrice   string     `json:"unit_price"`
	UnitCost    string     `json:"unit_cost"`
}

type orderDetailResponse struct {
	Order orderResponse       `json:"order"`
	Items []orderItemResponse `json:"items"`
}

type createOrderResponse struct {
	Order    orderResponse       `json:"order"`
	Items    []orderItemResponse `json:"items"`
	Notified bool                `json:"notified"`
}

func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.SubmitOrderInput{
		PaymentMethod:   req.PaymentMethod,
		Total:           req.Total,
		SlipURL:         req.SlipURL,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	result, err := h.workflow.SubmitOrder(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidMethod),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrInvalidUnitPrice),
			errors.Is(err, service.ErrInvalidTotal),
			errors.Is(err, service.ErrQuickNameRequired),
			errors.Is(err, service.ErrDebtorRequired),
			errors.Is(err, service.ErrInvalidProductID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProductNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInsufficientStock):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrTotalMismatch):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("ERROR: failed to submit order: %v", err)
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	resp := createOrderResponse{
		Order:    toOrderResponse(result.Order),
		Items:    make([]orderItemResponse, 0, len(result.Items)),
		Notified: result.Notified,
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, toOrderItemResponse(item))
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := int32(defaultPageSize)
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageSize {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = int32(n)
	}
	offset := int32(0)
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "offset must not be negative")
			return
		}
		offset = int32(n)
	}

	params := database.ListOrdersParams{Limit: limit, Offset: offset}
	if status := q.Get("status"); status != "" {
		if status != enum.OrderStatusPaid && status != enum.OrderStatusUnpaid {
			writeError(w, http.StatusBadRequest, "status must be PAID or UNPAID")
			return
		}
		params.Status = pgtype.Text{String: status, Valid: true}
	}
	if raw := q.Get("start_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start_date must be RFC3339")
			return
		}
		params.StartDate = pgtype.Timestamptz{Time: ts, Valid: true}
	}
	if raw := q.Get("end_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end_date must be RFC3339")
			return
		}
		params.EndDate = pgtype.Timestamptz{Time: ts, Valid: true}
	}

	orders, err := h.store.ListOrders(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: failed to list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.store.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		log.Printf("ERROR: failed to get order: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	items, err := h.store.ListOrderItemsByOrder(r.Context(), orderID)
	if err != nil {
		log.Printf("ERROR: failed to list order items: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := orderDetailResponse{
		Order: toOrderResponse(order),
		Items: make([]orderItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toOrderItemResponse(item))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	result, err := h.workflow.DeleteOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		log.Printf("ERROR: failed to delete order: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"order":    toOrderResponse(result.Order),
		"notified": result.Notified,
	})
}

type settleRequest struct {
	Method string `json:"method"`
}

func (h *OrdersHandler) Settle(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.workflow.SettleDebt(r.Context(), orderID, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSettleMethod):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "order not found")
		default:
			log.Printf("ERROR: failed to settle debt: %v", err)
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"order":    toOrderResponse(result.Order),
		"notified": result.Notified,
	})
}

type renameItemRequest struct {
	Name string `json:"name"`
}

func (h *OrdersHandler) RenameItem(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req renameItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := h.store.GetOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		log.Printf("ERROR: failed to get order: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	items, err := h.store.ListOrderItemsByOrder(r.Context(), orderID)
	if err != nil {
		log.Printf("ERROR: failed to list order items: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	found := false
	for _, it := range items {
		if it.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "order item not found")
		return
	}

	item, err := h.store.UpdateOrderItemName(r.Context(), database.UpdateOrderItemNameParams{
		ID:          itemID,
		ProductName: req.Name,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(w, http.StatusNotFound, "order item not found")
			return
		}
		log.Printf("ERROR: failed to rename order item: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, toOrderItemResponse(item))
}

// ListDebts returns every open tab with its line items, newest first.
func (h *OrdersHandler) ListDebts(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListUnpaidOrders(r.Context())
	if err != nil {
		log.Printf("ERROR: failed to list debts: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]orderDetailResponse, 0, len(orders))
	for _, o := range orders {
		items, err := h.store.ListOrderItemsByOrder(r.Context(), o.ID)
		if err != nil {
			log.Printf("ERROR: failed to list order items: %v", err)
			writeError(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		detail := orderDetailResponse{
			Order: toOrderResponse(o),
			Items: make([]orderItemResponse, 0, len(items)),
		}
		for _, item := range items {
			detail.Items = append(detail.Items, toOrderItemResponse(item))
		}
		resp = append(resp, detail)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toOrderResponse(o database.Order) orderResponse {
	return orderResponse{
		ID:              o.ID,
		TotalAmount:     numericString(o.TotalAmount),
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		SlipURL:         textPtr(o.SlipUrl),
		CustomerName:    textPtr(o.CustomerName),
		CustomerContact: textPtr(o.CustomerContact),
		CreatedAt:       o.CreatedAt,
		PaidAt:          timePtr(o.PaidAt),
	}
}

func toOrderItemResponse(i database.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:          i.ID,
		ProductID:   uuidPtr(i.ProductID),
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   numericString(i.UnitPrice),
		UnitCost:    numericString(i.UnitCost),
	}
}
