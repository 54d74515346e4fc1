package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/modules/customers"
	"matajer.app/internal/shared/apperr"
	"matajer.app/pkg/view"
)

type DashboardCustomersHandler struct {
	repo *customers.Repo
}

func NewDashboardCustomersHandler(db *gorm.DB) *DashboardCustomersHandler {
	return &DashboardCustomersHandler{repo: customers.NewRepo(db)}
}

func (h *DashboardCustomersHandler) List(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}

	res, err := h.repo.List(c.Request.Context(), st.ID, customers.ListParams{
		Page:  parseInt(c.Query("page"), 1),
		Limit: parseInt(c.Query("limit"), 20),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	now := time.Now()
	out := make([]view.Customer, 0, len(res.Items))
	for _, cu := range res.Items {
		out = append(out, view.Customer{
			Name:        cu.Name,
			Email:       cu.Email,
			Phone:       cu.Phone,
			OrderCount:  cu.OrderCount,
			TotalSpent:  view.Money(cu.SpentCents, st.Currency),
			FirstSeen:   cu.FirstSeen.UTC().Format(time.RFC3339),
			LastSeen:    cu.LastSeen.UTC().Format(time.RFC3339),
			LastSeenAgo: view.TimeAgo(cu.LastSeen, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": out,
		"pagination": view.Pagination{
			Total:      res.Total,
			Page:       res.Page,
			Limit:      res.Limit,
			TotalPages: view.PagesFromTotal(res.Total, res.Limit),
		},
	})
}
