package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/cache"
	"matajer.app/internal/http/middleware"
	"matajer.app/internal/http/validation"
	"matajer.app/internal/modules/products"
	"matajer.app/internal/shared/apperr"
	"matajer.app/pkg/view"
)

type DashboardProductsHandler struct {
	repo       *products.Repo
	storefront *cache.StorefrontCache
}

func NewDashboardProductsHandler(db *gorm.DB, storefront *cache.StorefrontCache) *DashboardProductsHandler {
	return &DashboardProductsHandler{repo: products.NewRepo(db), storefront: storefront}
}

func productView(p products.Product) view.Product {
	return view.Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       view.Money(p.PriceCents, p.Currency),
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		InStock:     p.InStock,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

func (h *DashboardProductsHandler) List(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}

	items, err := h.repo.List(c.Request.Context(), st.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]view.Product, 0, len(items))
	for _, p := range items {
		out = append(out, productView(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

type productInput struct {
	Name        string `json:"name" binding:"required,min=2,max=190"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	InStock     *bool  `json:"in_stock" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500"`
	Category    string `json:"category" binding:"omitempty,max=100"`
}

func (h *DashboardProductsHandler) Create(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}

	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}

	p, err := h.repo.Create(c.Request.Context(), products.CreateInput{
		StoreID:     st.ID,
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    st.Currency, // products always price in the store currency
		InStock:     *in.InStock,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
	})
	if err != nil {
		if errors.Is(err, products.ErrSlugTaken) {
			middleware.Fail(c, apperr.ConflictErr("يوجد منتج بنفس الاسم."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.storefront.Invalidate(c.Request.Context(), st.ID)
	c.JSON(http.StatusCreated, gin.H{"product": productView(p)})
}

func (h *DashboardProductsHandler) Update(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	id := c.Param("id")

	if _, err := h.repo.Get(c.Request.Context(), st.ID, id); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("المنتج غير موجود."))
		return
	}

	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}

	err := h.repo.Update(c.Request.Context(), st.ID, id, map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price_cents": in.PriceCents,
		"in_stock":    *in.InStock,
		"image_url":   in.ImageURL,
		"category":    in.Category,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	p, err := h.repo.Get(c.Request.Context(), st.ID, id)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.storefront.Invalidate(c.Request.Context(), st.ID)
	c.JSON(http.StatusOK, gin.H{"product": productView(p)})
}

func (h *DashboardProductsHandler) Delete(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), st.ID, id); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.storefront.Invalidate(c.Request.Context(), st.ID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
