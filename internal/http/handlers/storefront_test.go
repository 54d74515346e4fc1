package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"matajer.app/internal/cache"
	"matajer.app/internal/http/middleware"
	"matajer.app/internal/modules/orders"
	"matajer.app/internal/modules/products"
	"matajer.app/internal/modules/stores"
)

func newStorefrontRig(t *testing.T) (*gin.Engine, *gorm.DB, stores.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&stores.Store{}, &products.Product{},
		&orders.Order{}, &orders.OrderItem{},
	))

	st := stores.Store{
		ID: uuid.NewString(), OwnerUserID: "u1",
		Handle: "@demo", Name: "Demo", Currency: "SAR", Country: "SA",
		WhatsappEnabled: true, WhatsappPhone: "+966500000000",
		BankIBAN: "SA0000000000000000000000",
	}
	require.NoError(t, db.Create(&st).Error)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storefront := cache.NewStorefrontCache(nil, products.NewRepo(db), logger)
	h := NewStorefrontHandler(db, storefront)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	r.GET("/shop/:handle", h.Shop)
	r.GET("/shop/:handle/orders/:id", h.TrackOrder)
	return r, db, st
}

func TestShopShowsStoreAndInStockProducts(t *testing.T) {
	r, db, st := newStorefrontRig(t)
	repo := products.NewRepo(db)

	_, err := repo.Create(context.Background(), products.CreateInput{
		StoreID: st.ID, Name: "Visible", PriceCents: 1000, Currency: "SAR", InStock: true,
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), products.CreateInput{
		StoreID: st.ID, Name: "Hidden", PriceCents: 1000, Currency: "SAR", InStock: false,
	})
	require.NoError(t, err)

	w, out := doJSON(t, r, http.MethodGet, "/shop/@demo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	store := out["store"].(map[string]any)
	assert.Equal(t, "@demo", store["handle"])
	assert.Equal(t, "+966500000000", store["whatsapp"])
	// payment details never reach the public payload
	assert.NotContains(t, w.Body.String(), "SA0000000000000000000000")

	items := out["products"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Visible", items[0].(map[string]any)["name"])
}

func TestShopUnknownHandle(t *testing.T) {
	r, _, _ := newStorefrontRig(t)

	w, out := doJSON(t, r, http.MethodGet, "/shop/@missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "المتجر غير موجود.", out["error"])
}

func TestTrackOrder(t *testing.T) {
	r, db, st := newStorefrontRig(t)
	now := time.Now()

	o := orders.Order{
		ID: uuid.NewString(), StoreID: st.ID,
		CustomerName: "سارة", CustomerEmail: "sara@example.com", CustomerPhone: "+966512345678",
		Status: orders.StatusShipped, TotalCents: 2000, Currency: "SAR",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(&o).Error)

	w, out := doJSON(t, r, http.MethodGet, "/shop/@demo/orders/"+o.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	order := out["order"].(map[string]any)
	assert.Equal(t, "تم الشحن", order["status_text"])
	// the tracking page hides contact details
	assert.NotContains(t, w.Body.String(), "sara@example.com")

	steps := out["steps"].([]any)
	require.Len(t, steps, 4)
	third := steps[2].(map[string]any)
	assert.Equal(t, "shipped", third["status"])
	assert.Equal(t, true, third["done"])
	fourth := steps[3].(map[string]any)
	assert.Equal(t, false, fourth["done"])
}

func TestTrackOrderCancelled(t *testing.T) {
	r, db, st := newStorefrontRig(t)
	now := time.Now()

	o := orders.Order{
		ID: uuid.NewString(), StoreID: st.ID,
		CustomerName: "فهد", CustomerEmail: "f@example.com", CustomerPhone: "+966500000001",
		Status: orders.StatusCancelled, TotalCents: 500, Currency: "SAR",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(&o).Error)

	_, out := doJSON(t, r, http.MethodGet, "/shop/@demo/orders/"+o.ID, nil)
	steps := out["steps"].([]any)
	require.Len(t, steps, 1)
	assert.Equal(t, "cancelled", steps[0].(map[string]any)["status"])
}

func TestTrackOrderWrongStore(t *testing.T) {
	r, db, st := newStorefrontRig(t)

	other := stores.Store{
		ID: uuid.NewString(), OwnerUserID: "u2",
		Handle: "@other", Name: "Other", Currency: "SAR", Country: "SA",
	}
	require.NoError(t, db.Create(&other).Error)

	now := time.Now()
	o := orders.Order{
		ID: uuid.NewString(), StoreID: st.ID,
		CustomerName: "سارة", CustomerEmail: "s@example.com", CustomerPhone: "+966500000002",
		Status: orders.StatusPending, TotalCents: 100, Currency: "SAR",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(&o).Error)

	w, _ := doJSON(t, r, http.MethodGet, "/shop/@other/orders/"+o.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
