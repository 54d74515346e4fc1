package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"matajer.app/internal/config"
)

// Session is a database-backed session row keyed by the cookie value.
type Session struct {
	ID         string    `gorm:"primaryKey;type:char(36)"`
	UserID     string    `gorm:"type:char(36);not null;index:ix_sessions_user_id"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	LastSeenAt time.Time `gorm:"not null"`
}

func (Session) TableName() string { return "sessions" }

type SessionCfg struct {
	DB         *gorm.DB
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func SessionCfgFrom(db *gorm.DB, c config.SessionConfig) SessionCfg {
	return SessionCfg{DB: db, CookieName: c.CookieName, Secure: c.Secure, TTL: c.TTL}
}

// SessionMiddleware resolves the session cookie into a user id in context.
// Missing or expired sessions just leave the request anonymous.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		var sess Session
		if err := cfg.DB.Where("id = ? AND expires_at > ?", sessionID, time.Now()).First(&sess).Error; err != nil {
			c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
			c.Next()
			return
		}

		c.Set("session", &sess)
		c.Set("user_id", sess.UserID)

		var userEmail string
		row := cfg.DB.Table("users").Select("email").Where("id = ?", sess.UserID).Row()
		if err := row.Scan(&userEmail); err == nil {
			c.Set("user_email", userEmail)
		}

		c.Next()
	}
}

// CreateSession issues a session row and sets the cookie.
func CreateSession(c *gin.Context, cfg SessionCfg, userID string) (*Session, error) {
	sess := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		ExpiresAt:  time.Now().Add(cfg.TTL),
		CreatedAt:  time.Now(),
		LastSeenAt: time.Now(),
	}
	if err := cfg.DB.Create(sess).Error; err != nil {
		return nil, err
	}
	c.SetCookie(cfg.CookieName, sess.ID, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
	return sess, nil
}

// DeleteSession removes the session row and clears the cookie.
func DeleteSession(c *gin.Context, cfg SessionCfg) error {
	sessionID, err := c.Cookie(cfg.CookieName)
	if err != nil || sessionID == "" {
		return nil
	}
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
	return cfg.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

// ContextUser is the authenticated user seen by handlers.
type ContextUser struct {
	ID    string
	Email string
}

func CurrentUser(c *gin.Context) (ContextUser, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return ContextUser{}, false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return ContextUser{}, false
	}

	var emailStr string
	if email, ok := c.Get("user_email"); ok && email != nil {
		emailStr, _ = email.(string)
	}
	return ContextUser{ID: userID, Email: emailStr}, true
}
