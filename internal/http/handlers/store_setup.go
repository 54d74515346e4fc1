package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/http/validation"
	"matajer.app/internal/modules/stores"
	"matajer.app/internal/shared/apperr"
)

type StoreSetupHandler struct {
	repo *stores.Repo
}

func NewStoreSetupHandler(db *gorm.DB) *StoreSetupHandler {
	return &StoreSetupHandler{repo: stores.NewRepo(db)}
}

type storeSetupInput struct {
	Name     string `json:"name" binding:"required,min=2,max=190"`
	Handle   string `json:"handle" binding:"required,min=3,max=64"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
	Country  string `json:"country" binding:"omitempty,len=2"`
}

// Create finishes onboarding: one store per user.
func (h *StoreSetupHandler) Create(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("يجب تسجيل الدخول."))
		return
	}

	if _, err := h.repo.GetByOwner(c.Request.Context(), u.ID); err == nil {
		middleware.Fail(c, apperr.ConflictErr("لديك متجر بالفعل."))
		return
	}

	var in storeSetupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}

	s, err := h.repo.Create(c.Request.Context(), stores.CreateInput{
		OwnerUserID: u.ID,
		Handle:      in.Handle,
		Name:        in.Name,
		Currency:    in.Currency,
		Country:     in.Country,
	})
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidHandle):
			middleware.Fail(c, apperr.InvalidErr("معرّف المتجر غير صالح.", map[string]string{"handle": "استخدم أحرفاً إنجليزية وأرقاماً فقط."}))
		case errors.Is(err, stores.ErrHandleTaken):
			middleware.Fail(c, apperr.ConflictErr("معرّف المتجر محجوز."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"store": gin.H{
			"id":     s.ID,
			"handle": s.Handle,
			"name":   s.Name,
		},
	})
}

// CheckHandle lets the setup form validate availability as the user types.
func (h *StoreSetupHandler) CheckHandle(c *gin.Context) {
	raw := c.Query("handle")
	_, err := h.repo.GetByHandle(c.Request.Context(), raw)
	c.JSON(http.StatusOK, gin.H{"available": err != nil})
}
