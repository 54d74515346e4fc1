package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/http/validation"
	"matajer.app/internal/modules/stores"
	"matajer.app/internal/shared/apperr"
	"matajer.app/pkg/view"
)

type DashboardSettingsHandler struct {
	repo *stores.Repo
}

func NewDashboardSettingsHandler(db *gorm.DB) *DashboardSettingsHandler {
	return &DashboardSettingsHandler{repo: stores.NewRepo(db)}
}

func settingsView(s stores.Store) view.StoreSettings {
	return view.StoreSettings{
		ID:           s.ID,
		Handle:       s.Handle,
		Name:         s.Name,
		Description:  s.Description,
		LogoURL:      s.LogoURL,
		CoverURL:     s.CoverURL,
		Currency:     s.Currency,
		Country:      s.Country,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Instagram:    s.Instagram,
		Twitter:      s.Twitter,

		PaymentCOD:    s.PaymentCOD,
		PaymentBank:   s.PaymentBank,
		PaymentOnline: s.PaymentOnline,
		BankName:      s.BankName,
		BankIBAN:      s.BankIBAN,

		ShippingEnabled:   s.ShippingEnabled,
		ShippingFee:       view.Money(s.ShippingFeeCents, s.Currency),
		ShippingFeeCents:  s.ShippingFeeCents,
		FreeShippingAbove: s.FreeShippingAboveCents,

		WhatsappEnabled: s.WhatsappEnabled,
		WhatsappPhone:   s.WhatsappPhone,
	}
}

func (h *DashboardSettingsHandler) Get(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settingsView(*st)})
}

// apply writes the column map and responds with the fresh settings view.
func (h *DashboardSettingsHandler) apply(c *gin.Context, storeID string, updates map[string]any) {
	if err := h.repo.UpdateSettings(c.Request.Context(), storeID, updates); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	fresh, err := h.repo.Get(c.Request.Context(), storeID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settingsView(fresh)})
}

type generalSettingsInput struct {
	Name         string `json:"name" binding:"required,min=2,max=190"`
	Description  string `json:"description" binding:"omitempty,max=1000"`
	LogoURL      string `json:"logo_url" binding:"omitempty,url,max=500"`
	CoverURL     string `json:"cover_url" binding:"omitempty,url,max=500"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=32"`
	Instagram    string `json:"instagram" binding:"omitempty,max=190"`
	Twitter      string `json:"twitter" binding:"omitempty,max=190"`
}

func (h *DashboardSettingsHandler) UpdateGeneral(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	var in generalSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	h.apply(c, st.ID, map[string]any{
		"name":          in.Name,
		"description":   in.Description,
		"logo_url":      in.LogoURL,
		"cover_url":     in.CoverURL,
		"contact_email": in.ContactEmail,
		"contact_phone": in.ContactPhone,
		"instagram":     in.Instagram,
		"twitter":       in.Twitter,
	})
}

type paymentSettingsInput struct {
	PaymentCOD    *bool  `json:"payment_cod" binding:"required"`
	PaymentBank   *bool  `json:"payment_bank" binding:"required"`
	PaymentOnline *bool  `json:"payment_online" binding:"required"`
	BankName      string `json:"bank_name" binding:"omitempty,max=190"`
	BankIBAN      string `json:"bank_iban" binding:"omitempty,max=64"`
}

func (h *DashboardSettingsHandler) UpdatePayment(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	var in paymentSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	if *in.PaymentBank && in.BankIBAN == "" {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", map[string]string{"bank_iban": "مطلوب عند تفعيل التحويل البنكي."}))
		return
	}
	h.apply(c, st.ID, map[string]any{
		"payment_cod":    *in.PaymentCOD,
		"payment_bank":   *in.PaymentBank,
		"payment_online": *in.PaymentOnline,
		"bank_name":      in.BankName,
		"bank_iban":      in.BankIBAN,
	})
}

type shippingSettingsInput struct {
	ShippingEnabled        *bool `json:"shipping_enabled" binding:"required"`
	ShippingFeeCents       int64 `json:"shipping_fee_cents" binding:"omitempty,gte=0"`
	FreeShippingAboveCents int64 `json:"free_shipping_above_cents" binding:"omitempty,gte=0"`
}

func (h *DashboardSettingsHandler) UpdateShipping(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	var in shippingSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	h.apply(c, st.ID, map[string]any{
		"shipping_enabled":          *in.ShippingEnabled,
		"shipping_fee_cents":        in.ShippingFeeCents,
		"free_shipping_above_cents": in.FreeShippingAboveCents,
	})
}

type whatsappSettingsInput struct {
	WhatsappEnabled *bool  `json:"whatsapp_enabled" binding:"required"`
	WhatsappPhone   string `json:"whatsapp_phone" binding:"omitempty,e164"`
}

func (h *DashboardSettingsHandler) UpdateWhatsapp(c *gin.Context) {
	st, ok := middleware.CurrentStore(c)
	if !ok {
		middleware.Fail(c, apperr.ForbiddenErr("لا يوجد متجر."))
		return
	}
	var in whatsappSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	if *in.WhatsappEnabled && in.WhatsappPhone == "" {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", map[string]string{"whatsapp_phone": "مطلوب عند تفعيل الإشعارات."}))
		return
	}
	h.apply(c, st.ID, map[string]any{
		"whatsapp_enabled": *in.WhatsappEnabled,
		"whatsapp_phone":   in.WhatsappPhone,
	})
}
