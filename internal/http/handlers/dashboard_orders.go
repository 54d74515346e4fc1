package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/http/validation"
	"matajer.app/internal/modules/notifications"
	"matajer.app/internal/modules/orders"
	"matajer.app/internal/modules/payments"
	"matajer.app/internal/shared/apperr"
	"matajer.app/pkg/view"
)

const sampleOrderCount = 8

type DashboardOrdersHandler struct {
	repo      *orders.Repo
	svc       *orders.Service
	payments  *payments.Repo
	notif     *notifications.Service
	formatter *orders.Formatter
}

func NewDashboardOrdersHandler(db *gorm.DB, notif *notifications.Service) *DashboardOrdersHandler {
	return &DashboardOrdersHandler{
		repo:      orders.NewRepo(db),
		svc:       orders.NewService(db, notif),
		payments:  payments.NewRepo(db),
		notif:     notif,
		formatter: orders.NewFormatter(0), // default capacity
	}
}

// List is the dashboard orders table: filter tabs, search, sort, pagination.
// A failed query is an error; only a genuinely empty unfiltered first page
// falls back to generated sample rows, labeled source=sample.
func (h *DashboardOrdersHandler) List(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}

	p := orders.ListParams{
		Page:   parseInt(c.Query("page"), 1),
		Limit:  parseInt(c.Query("limit"), 20),
		Status: c.Query("status"),
		Search: strings.TrimSpace(c.Query("search")),
		Sort:   c.Query("sort"),
	}

	res, err := h.repo.List(c.Request.Context(), st.ID, p)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	items := res.Items
	total := res.Total
	source := "live"
	if orders.SampleEligible(p, res.Total) {
		items = orders.SampleOrders(st.ID, sampleOrderCount, sampleSeed(st.ID), st.Currency, time.Now())
		total = int64(len(items))
		source = "sample"
	}

	now := time.Now()
	out := view.OrderList{
		Orders: h.formatter.FormatAll(items, st.Name, now),
		Pagination: view.Pagination{
			Total:      total,
			Page:       res.Page,
			Limit:      res.Limit,
			TotalPages: view.PagesFromTotal(total, res.Limit),
		},
		Source: source,
	}

	counts, err := h.repo.StatusCounts(c.Request.Context(), st.ID)
	if err != nil {
		// tab badges are cosmetic; the table still renders
		counts = map[string]int64{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":        out.Orders,
		"pagination":    out.Pagination,
		"source":        out.Source,
		"status_counts": counts,
	})
}

func (h *DashboardOrdersHandler) Detail(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	id := c.Param("id")

	o, items, err := h.repo.GetWithItems(c.Request.Context(), st.ID, id)
	if err != nil {
		middleware.Fail(c, apperr.NotFoundErr("الطلب غير موجود."))
		return
	}

	now := time.Now()
	vm := view.OrderDetail{Order: *h.formatter.Format(o, st.Name, now)}
	for _, it := range items {
		vm.Items = append(vm.Items, view.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   view.Money(it.UnitPriceCents, o.Currency),
			LineTotal:   view.Money(it.UnitPriceCents*int64(it.Quantity), o.Currency),
		})
	}

	ev, _ := h.repo.ListEvents(c.Request.Context(), o.ID)
	for _, e := range ev {
		note := ""
		if e.Note != nil {
			note = *e.Note
		}
		vm.Events = append(vm.Events, view.OrderEvent{
			FromStatus: e.FromStatus,
			ToStatus:   e.ToStatus,
			Note:       note,
			At:         e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	// financial ledger, newest first
	txs, _ := h.payments.ListByOrder(c.Request.Context(), o.ID)
	ledger := make([]gin.H, 0, len(txs))
	for _, t := range txs {
		ledger = append(ledger, gin.H{
			"event":     t.Event,
			"method":    t.Method,
			"amount":    view.Money(t.AmountCents, t.Currency),
			"reference": t.Reference,
			"at":        t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"order": vm, "transactions": ledger})
}

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"omitempty,max=500"`
}

func (h *DashboardOrdersHandler) UpdateStatus(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	u, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	var in updateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), orders.UpdateStatusInput{
		StoreID:     st.ID,
		OrderID:     id,
		ActorUserID: u.ID,
		To:          in.Status,
		Note:        in.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrUnknownStatus):
			middleware.Fail(c, apperr.InvalidErr("حالة غير معروفة.", map[string]string{"status": "قيمة غير مسموح بها."}))
		case errors.Is(err, orders.ErrConflict):
			middleware.Fail(c, apperr.ConflictErr("تم تعديل الطلب من جهة أخرى، حدّث الصفحة."))
		case errors.Is(err, gorm.ErrRecordNotFound):
			middleware.Fail(c, apperr.NotFoundErr("الطلب غير موجود."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"status":      in.Status,
		"status_text": view.OrderStatusText(in.Status),
	})
}
