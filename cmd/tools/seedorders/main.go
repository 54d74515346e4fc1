// Command seedorders fills a store with demo orders so the dashboard can be
// exercised against live rows instead of the sample fallback.
//
//	go run ./cmd/tools/seedorders -handle @demo -n 40
package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"matajer.app/internal/config"
	"matajer.app/internal/modules/orders"
	"matajer.app/internal/modules/stores"
)

func main() {
	handle := flag.String("handle", "", "store handle to seed (required)")
	n := flag.Int("n", 25, "number of orders to create")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *handle == "" {
		logger.Error("missing -handle")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.FromEnv()
	if cfg.DBDSN == "" {
		logger.Error("DB_DSN is required")
		os.Exit(1)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		logger.Error("db_open_failed", slog.Any("err", err))
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := stores.NewRepo(db).GetByHandle(ctx, *handle)
	if err != nil {
		logger.Error("store_not_found", slog.String("handle", *handle))
		os.Exit(1)
	}

	repo := orders.NewRepo(db)
	rng := rand.New(rand.NewSource(*seed))
	generated := orders.SampleOrders(st.ID, *n, *seed, st.Currency, time.Now())

	for _, o := range generated {
		items := demoItems(rng, o)
		if err := repo.Create(ctx, o, items); err != nil {
			logger.Error("order_insert_failed", slog.String("order_id", o.ID), slog.Any("err", err))
			os.Exit(1)
		}
	}

	logger.Info("seeded", slog.String("store", st.Handle), slog.Int("orders", *n))
}

var demoProducts = []string{
	"عود فاخر", "عطر مسك", "شماغ كلاسيكي", "قهوة مختصة 250غ",
	"تمر سكري", "عسل سدر", "مبخرة نحاسية", "دلة قهوة",
}

// demoItems splits the order total over one to three line items.
func demoItems(rng *rand.Rand, o orders.Order) []orders.OrderItem {
	count := 1 + rng.Intn(3)
	remaining := o.TotalCents
	items := make([]orders.OrderItem, 0, count)

	for i := 0; i < count; i++ {
		price := remaining
		if i < count-1 {
			price = remaining / int64(count-i)
		}
		remaining -= price
		items = append(items, orders.OrderItem{
			ID:             uuid.NewString(),
			ProductID:      uuid.NewString(),
			ProductName:    demoProducts[rng.Intn(len(demoProducts))],
			Quantity:       1,
			UnitPriceCents: price,
			CreatedAt:      o.CreatedAt,
		})
	}
	return items
}
