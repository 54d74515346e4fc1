package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/modules/notifications"
	"matajer.app/internal/modules/orders"
	"matajer.app/internal/modules/payments"
	"matajer.app/internal/modules/stores"
)

func newOrdersTestRig(t *testing.T) (*gin.Engine, *gorm.DB, stores.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&stores.Store{}, &orders.Order{}, &orders.OrderItem{}, &orders.OrderEvent{},
		&payments.Transaction{}, &notifications.WhatsappLog{},
	))

	st := stores.Store{
		ID: uuid.NewString(), OwnerUserID: "u1",
		Handle: "@demo", Name: "Demo", Currency: "SAR", Country: "SA",
	}
	require.NoError(t, db.Create(&st).Error)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewDashboardOrdersHandler(db, notifications.NewService(db, nil))

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	r.Use(func(c *gin.Context) {
		// stand-in for the session + RequireStore chain
		c.Set("user_id", "u1")
		c.Set("store", &st)
	})
	r.GET("/orders", h.List)
	r.GET("/orders/:id", h.Detail)
	r.PATCH("/orders/:id/status", h.UpdateStatus)
	return r, db, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestListEmptyStoreServesSamples(t *testing.T) {
	r, _, _ := newOrdersTestRig(t)

	w, out := doJSON(t, r, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "sample", out["source"])
	rows := out["orders"].([]any)
	assert.Len(t, rows, sampleOrderCount)

	first := rows[0].(map[string]any)
	assert.NotEmpty(t, first["display_id"])
	assert.NotEmpty(t, first["status_text"])
	assert.Contains(t, first["total"], "ر.س")
}

func TestListSamplesAreStableAcrossRequests(t *testing.T) {
	r, _, _ := newOrdersTestRig(t)

	ids := func(out map[string]any) []string {
		var got []string
		for _, row := range out["orders"].([]any) {
			got = append(got, row.(map[string]any)["display_id"].(string))
		}
		return got
	}

	_, a := doJSON(t, r, http.MethodGet, "/orders", nil)
	_, b := doJSON(t, r, http.MethodGet, "/orders", nil)
	assert.Equal(t, ids(a), ids(b), "the seed is derived from the store id")
}

func TestListFilteredEmptyStaysLive(t *testing.T) {
	r, _, _ := newOrdersTestRig(t)

	w, out := doJSON(t, r, http.MethodGet, "/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "live", out["source"])
	assert.Empty(t, out["orders"])

	_, bySearch := doJSON(t, r, http.MethodGet, "/orders?search=sara", nil)
	assert.Equal(t, "live", bySearch["source"])

	_, byPage := doJSON(t, r, http.MethodGet, "/orders?page=2", nil)
	assert.Equal(t, "live", byPage["source"])
}

func seedRigOrder(t *testing.T, db *gorm.DB, st stores.Store, status string, cents int64, at time.Time) orders.Order {
	t.Helper()
	o := orders.Order{
		ID: uuid.NewString(), StoreID: st.ID,
		CustomerName: "سارة القحطاني", CustomerEmail: "sara@example.com", CustomerPhone: "+966512345678",
		Status: status, TotalCents: cents, Currency: st.Currency,
		CreatedAt: at, UpdatedAt: at,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestListLiveRows(t *testing.T) {
	r, db, st := newOrdersTestRig(t)
	now := time.Now()

	seedRigOrder(t, db, st, orders.StatusPending, 1000, now)
	seedRigOrder(t, db, st, orders.StatusCompleted, 2000, now.Add(-time.Hour))

	w, out := doJSON(t, r, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "live", out["source"])
	rows := out["orders"].([]any)
	assert.Len(t, rows, 2)

	pg := out["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pg["total"])
	assert.EqualValues(t, 1, pg["total_pages"])

	counts := out["status_counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["pending"])
	assert.EqualValues(t, 1, counts["completed"])
}

func TestDetail(t *testing.T) {
	r, db, st := newOrdersTestRig(t)
	o := seedRigOrder(t, db, st, orders.StatusPending, 1500, time.Now())

	item := orders.OrderItem{
		ID: uuid.NewString(), OrderID: o.ID, ProductID: "p1",
		ProductName: "عود فاخر", Quantity: 3, UnitPriceCents: 500, CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&item).Error)

	w, out := doJSON(t, r, http.MethodGet, "/orders/"+o.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	order := out["order"].(map[string]any)
	items := order["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "15.00 ر.س", line["line_total"])
}

func TestDetailUnknownOrder(t *testing.T) {
	r, _, _ := newOrdersTestRig(t)

	w, out := doJSON(t, r, http.MethodGet, "/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "الطلب غير موجود.", out["error"])
}

func TestUpdateStatus(t *testing.T) {
	r, db, st := newOrdersTestRig(t)
	o := seedRigOrder(t, db, st, orders.StatusPending, 1000, time.Now())

	w, out := doJSON(t, r, http.MethodPatch, "/orders/"+o.ID+"/status",
		map[string]any{"status": "processing", "note": "اتصلنا بالعميل"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "processing", out["status"])
	assert.Equal(t, "قيد المعالجة", out["status_text"])

	var got orders.Order
	require.NoError(t, db.First(&got, "id = ?", o.ID).Error)
	assert.Equal(t, orders.StatusProcessing, got.Status)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	r, db, st := newOrdersTestRig(t)
	o := seedRigOrder(t, db, st, orders.StatusPending, 1000, time.Now())

	w, out := doJSON(t, r, http.MethodPatch, "/orders/"+o.ID+"/status",
		map[string]any{"status": "refunded"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "حالة غير معروفة.", out["error"])
}
