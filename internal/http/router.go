// Package http wires the gin engine: middleware chain, API routes and the
// local uploads mount. The SPA is served separately; everything here is JSON.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"matajer.app/internal/cache"
	"matajer.app/internal/config"
	"matajer.app/internal/http/handlers"
	"matajer.app/internal/http/middleware"
	"matajer.app/internal/mailer"
	"matajer.app/internal/modules/auth"
	"matajer.app/internal/modules/notifications"
	"matajer.app/internal/modules/products"
	"matajer.app/internal/storage"
)

type Deps struct {
	Logger  *slog.Logger
	DB      *gorm.DB
	Cfg     config.Config
	Storage storage.Storage
	Redis   *redis.Client // nil disables the storefront cache
	Mailer  mailer.Service
	WAProv  notifications.Provider // nil means log-only

	// LocalUploadsDir, when set, is mounted under /uploads for the local
	// storage driver. Empty for S3.
	LocalUploadsDir string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	sessCfg := middleware.SessionCfgFrom(d.DB, d.Cfg.Session)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.Language(),
		middleware.SessionMiddleware(sessCfg),
	)

	storefront := cache.NewStorefrontCache(d.Redis, products.NewRepo(d.DB), d.Logger)
	notif := notifications.NewService(d.DB, d.WAProv)
	resetSvc := auth.NewResetService(d.DB, d.Mailer, d.Cfg.AppBaseURL, d.Cfg.SMTP.From, d.Cfg.SMTP.FromName)

	authH := handlers.NewAuthHandlers(d.DB, sessCfg, resetSvc)
	setupH := handlers.NewStoreSetupHandler(d.DB)
	shopH := handlers.NewStorefrontHandler(d.DB, storefront)
	ordersH := handlers.NewDashboardOrdersHandler(d.DB, notif)
	productsH := handlers.NewDashboardProductsHandler(d.DB, storefront)
	customersH := handlers.NewDashboardCustomersHandler(d.DB)
	settingsH := handlers.NewDashboardSettingsHandler(d.DB)
	uploadsH := handlers.NewUploadsHandler(d.Storage)

	api := r.Group("/api")

	authG := api.Group("/auth")
	{
		authG.POST("/signup", authH.Signup)
		authG.POST("/signin", authH.Signin)
		authG.POST("/signout", authH.Signout)
		authG.GET("/me", authH.Me)
		authG.POST("/forgot-password", authH.ForgotPassword)
		authG.POST("/reset-password", authH.ResetPassword)
	}

	api.PUT("/language", authH.SetLanguage)

	setup := api.Group("/store-setup", middleware.RequireAuth())
	{
		setup.POST("", setupH.Create)
		setup.GET("/check-handle", setupH.CheckHandle)
	}

	shop := api.Group("/shop/:handle")
	{
		shop.GET("", shopH.Shop)
		shop.GET("/orders/:id", shopH.TrackOrder)
	}

	dash := api.Group("/dashboard", middleware.RequireAuth(), middleware.RequireStore(d.DB))
	{
		dash.GET("/orders", ordersH.List)
		dash.GET("/orders/:id", ordersH.Detail)
		dash.PATCH("/orders/:id/status", ordersH.UpdateStatus)

		dash.GET("/products", productsH.List)
		dash.POST("/products", productsH.Create)
		dash.PUT("/products/:id", productsH.Update)
		dash.DELETE("/products/:id", productsH.Delete)

		dash.GET("/customers", customersH.List)

		dash.GET("/settings", settingsH.Get)
		dash.PUT("/settings/general", settingsH.UpdateGeneral)
		dash.PUT("/settings/payment", settingsH.UpdatePayment)
		dash.PUT("/settings/shipping", settingsH.UpdateShipping)
		dash.PUT("/settings/whatsapp", settingsH.UpdateWhatsapp)

		dash.POST("/uploads", uploadsH.Upload)
	}

	if d.LocalUploadsDir != "" {
		r.Static("/uploads", d.LocalUploadsDir)
	}

	return r
}
