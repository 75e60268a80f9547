package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/raan-pos/api/internal/auth"
	"github.com/raan-pos/api/internal/enum"
	"github.com/raan-pos/api/internal/handler"
	"github.com/raan-pos/api/internal/middleware"
	"github.com/raan-pos/api/internal/ws"
)

type Deps struct {
	JWTSecret    string
	Auth         *handler.AuthHandler
	POS          *handler.POSHandler
	Orders       *handler.OrdersHandler
	Products     *handler.ProductsHandler
	Categories   *handler.CategoriesHandler
	QuickButtons *handler.QuickButtonsHandler
	Settings     *handler.SettingsHandler
	Reports      *handler.ReportsHandler
	Hub          *ws.Hub
}

// New wires the full route table. The sale surface (catalog, order
// submission) is open so the register works without a login; everything
// that inspects or mutates history sits behind the admin token.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/auth/pin", deps.Auth.Login)
	r.Get("/pos", deps.POS.Catalog)
	r.Post("/orders", deps.Orders.Create)
	r.Get("/ws/dashboard", dashboardWS(deps.JWTSecret, deps.Hub))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(deps.JWTSecret))
		r.Use(middleware.RequireAdmin)

		r.Get("/orders", deps.Orders.List)
		r.Get("/orders/{orderID}", deps.Orders.Get)
		r.Delete("/orders/{orderID}", deps.Orders.Delete)
		r.Post("/orders/{orderID}/settle", deps.Orders.Settle)
		r.Patch("/orders/{orderID}/items/{itemID}", deps.Orders.RenameItem)
		r.Get("/debts", deps.Orders.ListDebts)

		r.Get("/products", deps.Products.List)
		r.Post("/products", deps.Products.Create)
		r.Put("/products/{productID}", deps.Products.Update)
		r.Delete("/products/{productID}", deps.Products.Delete)
		r.Patch("/products/{productID}/stock", deps.Products.AdjustStock)

		r.Get("/categories", deps.Categories.List)
		r.Post("/categories", deps.Categories.Create)
		r.Put("/categories/{categoryID}", deps.Categories.Update)
		r.Delete("/categories/{categoryID}", deps.Categories.Delete)

		r.Get("/quick-buttons", deps.QuickButtons.List)
		r.Post("/quick-buttons", deps.QuickButtons.Create)
		r.Delete("/quick-buttons/{buttonID}", deps.QuickButtons.Delete)

		r.Get("/settings/{key}", deps.Settings.Get)
		r.Put("/settings/{key}", deps.Settings.Put)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", deps.Reports.SalesSummary)
			r.Get("/top-products", deps.Reports.TopProducts)
			r.Get("/daily-sales", deps.Reports.DailySales)
			r.Get("/payment-summary", deps.Reports.PaymentSummary)
			r.Get("/debts", deps.Reports.DebtSummary)
		})
	})

	return r
}

// dashboardWS authenticates via a token query param since browsers cannot
// set headers on websocket upgrades.
func dashboardWS(jwtSecret string, hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.ValidateToken(jwtSecret, r.URL.Query().Get("token"))
		if err != nil || claims.Role != enum.RoleAdmin {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ws.ServeWS(hub, w, r)
	}
}
