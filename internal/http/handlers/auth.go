package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matajer.app/internal/http/middleware"
	"matajer.app/internal/http/validation"
	"matajer.app/internal/modules/auth"
	"matajer.app/internal/modules/stores"
	"matajer.app/internal/shared/apperr"
)

type AuthHandlers struct {
	db       *gorm.DB
	sessCfg  middleware.SessionCfg
	repo     *auth.Repo
	stores   *stores.Repo
	resetSvc *auth.ResetService
}

func NewAuthHandlers(db *gorm.DB, sessCfg middleware.SessionCfg, resetSvc *auth.ResetService) *AuthHandlers {
	return &AuthHandlers{
		db:       db,
		sessCfg:  sessCfg,
		repo:     auth.NewRepo(db),
		stores:   stores.NewRepo(db),
		resetSvc: resetSvc,
	}
}

type signupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (h *AuthHandlers) Signup(c *gin.Context) {
	var in signupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.repo.Create(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			middleware.Fail(c, apperr.ConflictErr("البريد الإلكتروني مسجل مسبقاً."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if _, err := middleware.CreateSession(c, h.sessCfg, u.ID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":      gin.H{"id": u.ID, "email": u.Email},
		"has_store": false,
	})
}

type signinInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandlers) Signin(c *gin.Context) {
	var in signinInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}

	u, err := h.repo.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		middleware.Fail(c, apperr.UnauthorizedErr("البريد الإلكتروني أو كلمة المرور غير صحيحة."))
		return
	}

	if _, err := middleware.CreateSession(c, h.sessCfg, u.ID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	_, hasStore := h.storeOf(c, u.ID)
	c.JSON(http.StatusOK, gin.H{
		"user":      gin.H{"id": u.ID, "email": u.Email},
		"has_store": hasStore,
	})
}

func (h *AuthHandlers) Signout(c *gin.Context) {
	if err := middleware.DeleteSession(c, h.sessCfg); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me tells the SPA who is signed in and whether the dashboard is reachable.
func (h *AuthHandlers) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("يجب تسجيل الدخول."))
		return
	}
	lang := middleware.CurrentLanguage(c)

	st, hasStore := h.storeOf(c, u.ID)
	resp := gin.H{
		"user":      gin.H{"id": u.ID, "email": u.Email},
		"has_store": hasStore,
		"lang":      lang,
		"dir":       middleware.Direction(lang),
	}
	if hasStore {
		resp["store_handle"] = st.Handle
	}
	c.JSON(http.StatusOK, resp)
}

type forgotInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword always answers ok so the endpoint cannot be used to probe
// for registered emails.
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var in forgotInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	if err := h.resetSvc.Start(c.Request.Context(), in.Email); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type resetInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var in resetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	if err := h.resetSvc.Complete(c.Request.Context(), in.Token, in.Password); err != nil {
		if errors.Is(err, auth.ErrResetTokenInvalid) {
			middleware.Fail(c, apperr.InvalidErr("رابط إعادة التعيين غير صالح أو منتهي.", nil))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type languageInput struct {
	Lang string `json:"lang" binding:"required,oneof=ar en"`
}

// SetLanguage persists the language choice in the app-language cookie.
func (h *AuthHandlers) SetLanguage(c *gin.Context) {
	var in languageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("تحقق من الحقول.", validation.FromBindError(err, &in)))
		return
	}
	c.SetCookie(middleware.LanguageCookie, in.Lang, 365*24*3600, "/", "", h.sessCfg.Secure, false)
	c.JSON(http.StatusOK, gin.H{"lang": in.Lang, "dir": middleware.Direction(in.Lang)})
}

func (h *AuthHandlers) storeOf(c *gin.Context, userID string) (stores.Store, bool) {
	st, err := h.stores.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		return stores.Store{}, false
	}
	return st, true
}
