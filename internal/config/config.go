package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr   string
	DBDSN      string
	AppBaseURL string

	Session SessionConfig
	SMTP    SMTPConfig

	RedisAddr string // empty disables the storefront cache
}

type SessionConfig struct {
	CookieName string
	Secure     bool
	TTL        time.Duration
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

// FromEnv reads configuration from the environment. Callers load .env first.
func FromEnv() Config {
	return Config{
		HTTPAddr:   envOr("HTTP_ADDR", ":8080"),
		DBDSN:      os.Getenv("DB_DSN"),
		AppBaseURL: envOr("APP_BASE_URL", "http://localhost:8080"),
		Session: SessionConfig{
			CookieName: envOr("SESSION_COOKIE", "matajer_session"),
			Secure:     envBool("SESSION_SECURE", false),
			TTL:        envDuration("SESSION_TTL", 30*24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@matajer.local"),
			FromName:      envOr("SMTP_FROM_NAME", "Matajer"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_SKIP_VERIFY_TLS", false),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
