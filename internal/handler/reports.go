package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
)

type ReportsStore interface {
	GetSalesSummary(ctx context.Context, arg database.GetSalesSummaryParams) (database.GetSalesSummaryRow, error)
	GetTopProducts(ctx context.Context, arg database.GetTopProductsParams) ([]database.GetTopProductsRow, error)
	GetDailySales(ctx context.Context, arg database.GetDailySalesParams) ([]database.GetDailySalesRow, error)
	GetPaymentSummary(ctx context.Context, arg database.GetPaymentSummaryParams) ([]database.GetPaymentSummaryRow, error)
	GetDebtSummary(ctx context.Context) (database.GetDebtSummaryRow, error)
}

type ReportsHandler struct {
	store ReportsStore
}

func NewReportsHandler(store ReportsStore) *ReportsHandler {
	return &ReportsHandler{store: store}
}

// dateRange reads start_date/end_date query params, defaulting to the
// last 30 days. end_date is exclusive.
func dateRange(r *http.Request) (time.Time, time.Time, bool) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		start = ts
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		end = ts
	}
	return start, end, true
}

type salesSummaryResponse struct {
	OrderCount int64  `json:"order_count"`
	TotalSales string `json:"total_sales"`
	TotalCost  string `json:"total_cost"`
	Profit     string `json:"profit"`
	Margin     string `json:"margin"`
}

func (h *ReportsHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "dates must be RFC3339")
		return
	}

	row, err := h.store.GetSalesSummary(r.Context(), database.GetSalesSummaryParams{
		CreatedAt:   start,
		CreatedAt_2: end,
	})
	if err != nil {
		log.Printf("ERROR: failed to get sales summary: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	sales := numericDecimal(row.TotalSales)
	cost := numericDecimal(row.TotalCost)
	profit := sales.Sub(cost)
	margin := decimal.Zero
	if sales.IsPositive() {
		margin = profit.Div(sales).Mul(decimal.NewFromInt(100))
	}
	writeJSON(w, http.StatusOK, salesSummaryResponse{
		OrderCount: row.OrderCount,
		TotalSales: sales.StringFixed(2),
		TotalCost:  cost.StringFixed(2),
		Profit:     profit.StringFixed(2),
		Margin:     margin.StringFixed(2),
	})
}

type topProductResponse struct {
	ProductName  string `json:"product_name"`
	QuantitySold int64  `json:"quantity_sold"`
	TotalRevenue string `json:"total_revenue"`
}

func (h *ReportsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "dates must be RFC3339")
		return
	}

	limit := int32(10)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = int32(n)
	}

	rows, err := h.store.GetTopProducts(r.Context(), database.GetTopProductsParams{
		CreatedAt:   start,
		CreatedAt_2: end,
		Limit:       limit,
	})
	if err != nil {
		log.Printf("ERROR: failed to get top products: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]topProductResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, topProductResponse{
			ProductName:  row.ProductName,
			QuantitySold: row.QuantitySold,
			TotalRevenue: numericDecimal(row.TotalRevenue).StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type dailySalesResponse struct {
	Date       string `json:"date"`
	OrderCount int64  `json:"order_count"`
	TotalSales string `json:"total_sales"`
}

func (h *ReportsHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "dates must be RFC3339")
		return
	}

	rows, err := h.store.GetDailySales(r.Context(), database.GetDailySalesParams{
		CreatedAt:   start,
		CreatedAt_2: end,
	})
	if err != nil {
		log.Printf("ERROR: failed to get daily sales: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]dailySalesResponse, 0, len(rows))
	for _, row := range rows {
		date := ""
		if row.SaleDate.Valid {
			date = row.SaleDate.Time.Format("2006-01-02")
		}
		resp = append(resp, dailySalesResponse{
			Date:       date,
			OrderCount: row.OrderCount,
			TotalSales: numericDecimal(row.TotalSales).StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type paymentSummaryResponse struct {
	PaymentMethod string `json:"payment_method"`
	OrderCount    int64  `json:"order_count"`
	TotalAmount   string `json:"total_amount"`
}

func (h *ReportsHandler) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRange(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "dates must be RFC3339")
		return
	}

	rows, err := h.store.GetPaymentSummary(r.Context(), database.GetPaymentSummaryParams{
		CreatedAt:   start,
		CreatedAt_2: end,
	})
	if err != nil {
		log.Printf("ERROR: failed to get payment summary: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	resp := make([]paymentSummaryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, paymentSummaryResponse{
			PaymentMethod: row.PaymentMethod,
			OrderCount:    row.OrderCount,
			TotalAmount:   numericDecimal(row.TotalAmount).StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type debtSummaryResponse struct {
	DebtorCount      int64  `json:"debtor_count"`
	TotalOutstanding string `json:"total_outstanding"`
}

func (h *ReportsHandler) DebtSummary(w http.ResponseWriter, r *http.Request) {
	row, err := h.store.GetDebtSummary(r.Context())
	if err != nil {
		log.Printf("ERROR: failed to get debt summary: %v", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, debtSummaryResponse{
		DebtorCount:      row.DebtorCount,
		TotalOutstanding: numericDecimal(row.TotalOutstanding).StringFixed(2),
	})
}
