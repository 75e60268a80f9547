package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/config"
	"github.com/raan-pos/api/internal/database"
)

// Seeds a small starter catalog. Safe to run repeatedly: it does nothing
// once any category exists.
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

	existing, err := database.New(pool).ListCategories(ctx)
	if err != nil {
		log.Fatalf("failed to check existing categories: %v", err)
	}
	if len(existing) > 0 {
		log.Println("catalog already seeded, nothing to do")
		return
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("failed to begin tx: %v", err)
	}
	defer tx.Rollback(ctx)

	q := database.New(tx)

	type seedProduct struct {
		name  string
		price string
		cost  string
		stock int32
	}
	catalog := []struct {
		category string
		products []seedProduct
	}{
		{"Drinks", []seedProduct{
			{"Water 600ml", "10.00", "5.00", 48},
			{"Cola 325ml", "18.00", "12.00", 24},
			{"Iced Tea", "25.00", "8.00", 30},
		}},
		{"Snacks", []seedProduct{
			{"Potato Chips", "20.00", "14.00", 36},
			{"Peanuts", "15.00", "9.00", 40},
		}},
		{"Household", []seedProduct{
			{"Dish Soap", "35.00", "22.00", 12},
			{"Sponge", "12.00", "6.00", 20},
		}},
	}

	for i, entry := range catalog {
		category, err := q.CreateCategory(ctx, database.CreateCategoryParams{
			Name:      entry.category,
			SortOrder: int32(i),
		})
		if err != nil {
			log.Fatalf("failed to create category %s: %v", entry.category, err)
		}
		for _, p := range entry.products {
			if _, err := q.CreateProduct(ctx, database.CreateProductParams{
				CategoryID: pgtype.UUID{Bytes: category.ID, Valid: true},
				Name:       p.name,
				Price:      mustNumeric(p.price),
				Cost:       mustNumeric(p.cost),
				Stock:      p.stock,
			}); err != nil {
				log.Fatalf("failed to create product %s: %v", p.name, err)
			}
		}
	}

	for _, b := range []struct {
		label  string
		amount string
	}{
		{"10", "10.00"},
		{"20", "20.00"},
		{"50", "50.00"},
		{"100", "100.00"},
	} {
		if _, err := q.CreateQuickButton(ctx, database.CreateQuickButtonParams{
			Label:  b.label,
			Amount: mustNumeric(b.amount),
		}); err != nil {
			log.Fatalf("failed to create quick button %s: %v", b.label, err)
		}
	}

	for key, value := range map[string]string{
		"shop_name":      "My Shop",
		"receipt_footer": "Thank you!",
	} {
		if _, err := q.UpsertSetting(ctx, database.UpsertSettingParams{Key: key, Value: value}); err != nil {
			log.Fatalf("failed to seed setting %s: %v", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("failed to commit seed tx: %v", err)
	}
	log.Println("seed complete")
}

func mustNumeric(s string) pgtype.Numeric {
	d := decimal.RequireFromString(s)
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		log.Fatalf("invalid numeric %s: %v", s, err)
	}
	return n
}
