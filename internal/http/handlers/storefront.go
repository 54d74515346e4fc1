package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/cache"
	"matajer.app/internal/http/middleware"
	"matajer.app/internal/modules/orders"
	"matajer.app/internal/modules/stores"
	"matajer.app/internal/shared/apperr"
	"matajer.app/pkg/view"
)

// StorefrontHandler serves the public shop pages: no session required,
// everything is keyed by the store handle.
type StorefrontHandler struct {
	stores     *stores.Repo
	orders     *orders.Repo
	storefront *cache.StorefrontCache
}

func NewStorefrontHandler(db *gorm.DB, storefront *cache.StorefrontCache) *StorefrontHandler {
	return &StorefrontHandler{
		stores:     stores.NewRepo(db),
		orders:     orders.NewRepo(db),
		storefront: storefront,
	}
}

func storePublicView(s stores.Store) view.StorePublic {
	pub := view.StorePublic{
		Handle:      s.Handle,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		CoverURL:    s.CoverURL,
		Currency:    s.Currency,
		Country:     s.Country,
		Instagram:   s.Instagram,
		Twitter:     s.Twitter,
	}
	if s.WhatsappEnabled {
		pub.Whatsapp = s.WhatsappPhone
	}
	return pub
}

// Shop returns the store header plus one page of in-stock products.
func (h *StorefrontHandler) Shop(c *gin.Context) {
	s, err := h.stores.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("المتجر غير موجود."))
		return
	}

	page := parseInt(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := parseInt(c.Query("limit"), 24)
	if limit < 1 || limit > 100 {
		limit = 24
	}

	items, err := h.storefront.ListInStock(c.Request.Context(), s.ID, limit, (page-1)*limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]view.Product, 0, len(items))
	for _, p := range items {
		out = append(out, productView(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"store":    storePublicView(s),
		"products": out,
		"page":     page,
		"limit":    limit,
	})
}

// TrackOrder is the customer-facing order status page. It deliberately
// exposes less than the dashboard detail: status, totals and the event
// trail, but no customer contact fields beyond the name.
func (h *StorefrontHandler) TrackOrder(c *gin.Context) {
	s, err := h.stores.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("المتجر غير موجود."))
		return
	}

	o, items, err := h.orders.GetWithItems(c.Request.Context(), s.ID, c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("الطلب غير موجود."))
		return
	}

	lines := make([]view.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, view.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   view.Money(it.UnitPriceCents, o.Currency),
			LineTotal:   view.Money(it.UnitPriceCents*int64(it.Quantity), o.Currency),
		})
	}

	steps := trackingSteps(o.Status)
	now := time.Now()

	c.JSON(http.StatusOK, gin.H{
		"order": gin.H{
			"display_id":    orders.FormatOrderID(o.ID, s.Name),
			"customer_name": o.CustomerName,
			"status":        o.Status,
			"status_text":   view.OrderStatusText(o.Status),
			"total":         view.Money(o.TotalCents, o.Currency),
			"time_ago":      view.TimeAgo(o.CreatedAt, now),
			"items":         lines,
		},
		"steps": steps,
	})
}

type trackingStep struct {
	Status string `json:"status"`
	Text   string `json:"text"`
	Done   bool   `json:"done"`
}

// trackingSteps renders the pending→processing→shipped→completed ladder,
// marking everything up to the current status as done. A cancelled order
// collapses to a single step.
func trackingSteps(status string) []trackingStep {
	if status == orders.StatusCancelled {
		return []trackingStep{{Status: status, Text: view.OrderStatusText(status), Done: true}}
	}
	ladder := []string{orders.StatusPending, orders.StatusProcessing, orders.StatusShipped, orders.StatusCompleted}
	reached := 0
	for i, st := range ladder {
		if st == status {
			reached = i
		}
	}
	steps := make([]trackingStep, 0, len(ladder))
	for i, st := range ladder {
		steps = append(steps, trackingStep{
			Status: st,
			Text:   view.OrderStatusText(st),
			Done:   i <= reached,
		})
	}
	return steps
}
