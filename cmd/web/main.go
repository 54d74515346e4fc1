package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"matajer.app/internal/config"
	apphttp "matajer.app/internal/http"
	"matajer.app/internal/http/middleware"
	"matajer.app/internal/mailer"
	"matajer.app/internal/modules/auth"
	"matajer.app/internal/modules/notifications"
	"matajer.app/internal/modules/orders"
	"matajer.app/internal/modules/payments"
	"matajer.app/internal/modules/products"
	"matajer.app/internal/modules/stores"
	"matajer.app/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.FromEnv()
	if cfg.DBDSN == "" {
		logger.Error("DB_DSN is required")
		os.Exit(1)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Error("db_open_failed", slog.Any("err", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&auth.PasswordReset{},
		&middleware.Session{},
		&stores.Store{},
		&products.Product{},
		&orders.Order{},
		&orders.OrderItem{},
		&orders.OrderEvent{},
		&payments.Transaction{},
		&notifications.WhatsappLog{},
	); err != nil {
		logger.Error("migrate_failed", slog.Any("err", err))
		os.Exit(1)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis_unreachable", slog.String("addr", cfg.RedisAddr), slog.Any("err", err))
			rdb = nil
		}
		cancel()
	}

	storeRes, err := storage.FromEnv(context.Background())
	if err != nil {
		logger.Error("storage_init_failed", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("storage_ready", slog.String("driver", storeRes.Driver))

	var mail mailer.Service
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.Warn("smtp_not_configured_using_mock")
		mail = &mailer.Mock{}
	}

	localDir := ""
	if storeRes.Driver == "local" {
		localDir = os.Getenv("LOCAL_UPLOAD_DIR")
		if localDir == "" {
			localDir = "./storage/uploads"
		}
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:          logger,
		DB:              db,
		Cfg:             cfg,
		Storage:         storeRes.Storage,
		Redis:           rdb,
		Mailer:          mail,
		LocalUploadsDir: localDir,
	})

	logger.Info("listening", slog.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("server_stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
