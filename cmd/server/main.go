package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/raan-pos/api/internal/config"
	"github.com/raan-pos/api/internal/database"
	"github.com/raan-pos/api/internal/handler"
	"github.com/raan-pos/api/internal/notify"
	"github.com/raan-pos/api/internal/router"
	"github.com/raan-pos/api/internal/service"
	"github.com/raan-pos/api/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	queries := database.New(pool)

	hub := ws.NewHub()
	go hub.Run()

	notifier := notify.NewDiscord(cfg.DiscordWebhookURL)
	if cfg.DiscordWebhookURL == "" {
		log.Println("DISCORD_WEBHOOK_URL not set, notifications disabled")
	}

	orderService := service.NewOrderService(
		pool,
		func(db database.DBTX) service.OrderStore { return database.New(db) },
		notifier,
		hub,
	)

	authHandler, err := handler.NewAuthHandler(cfg.JWTSecret, cfg.AdminPIN)
	if err != nil {
		log.Fatalf("failed to init auth handler: %v", err)
	}

	r := router.New(router.Deps{
		JWTSecret:    cfg.JWTSecret,
		Auth:         authHandler,
		POS:          handler.NewPOSHandler(queries),
		Orders:       handler.NewOrdersHandler(orderService, queries),
		Products:     handler.NewProductsHandler(queries),
		Categories:   handler.NewCategoriesHandler(queries),
		QuickButtons: handler.NewQuickButtonsHandler(queries),
		Settings:     handler.NewSettingsHandler(queries),
		Reports:      handler.NewReportsHandler(queries),
		Hub:          hub,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
