package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"matajer.app/internal/mailer"
)

var ErrResetTokenInvalid = errors.New("reset token invalid or expired")

const resetTTL = 2 * time.Hour

// ResetService runs the forgot/reset password flow. The raw token travels
// only inside the email link; the database keeps its sha256.
type ResetService struct {
	db         *gorm.DB
	mail       mailer.Service
	appBaseURL string
	from       string
	fromName   string
}

func NewResetService(db *gorm.DB, mail mailer.Service, appBaseURL, from, fromName string) *ResetService {
	return &ResetService{db: db, mail: mail, appBaseURL: appBaseURL, from: from, fromName: fromName}
}

// Start creates a reset token for the account and emails the link.
// Unknown emails return nil so the endpoint does not leak registrations.
func (s *ResetService) Start(ctx context.Context, email string) error {
	var u User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", normalizeEmail(email)).Error; err != nil {
		return nil
	}

	rawToken, err := randomToken(32)
	if err != nil {
		return err
	}
	hash := sha256.Sum256([]byte(rawToken))

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// one pending reset per user
		_ = tx.WithContext(ctx).Where("user_id = ? AND used_at IS NULL", u.ID).Delete(&PasswordReset{}).Error

		pr := PasswordReset{
			UserID:    u.ID,
			TokenHash: hex.EncodeToString(hash[:]),
			ExpiresAt: time.Now().Add(resetTTL),
			CreatedAt: time.Now(),
		}
		return tx.WithContext(ctx).Create(&pr).Error
	})
	if err != nil {
		return err
	}

	if s.mail == nil {
		return nil
	}
	resetURL := strings.TrimRight(s.appBaseURL, "/") + "/reset-password?token=" + rawToken
	return s.mail.Send(ctx, mailer.Email{
		From:     s.from,
		FromName: s.fromName,
		To:       []string{u.Email},
		Subject:  "إعادة تعيين كلمة المرور",
		TextBody: "لإعادة تعيين كلمة المرور الخاصة بك، افتح الرابط التالي:\n" + resetURL +
			"\n\nالرابط صالح لمدة ساعتين.",
	})
}

// Complete consumes a token and sets the new password in one transaction.
func (s *ResetService) Complete(ctx context.Context, rawToken, newPassword string) error {
	hash := sha256.Sum256([]byte(rawToken))
	tokenHash := hex.EncodeToString(hash[:])

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pr PasswordReset
		if err := tx.WithContext(ctx).
			First(&pr, "token_hash = ? AND expires_at > ? AND used_at IS NULL", tokenHash, time.Now()).Error; err != nil {
			return ErrResetTokenInvalid
		}

		if err := tx.WithContext(ctx).Model(&PasswordReset{}).
			Where("id = ?", pr.ID).
			Update("used_at", time.Now()).Error; err != nil {
			return err
		}

		return NewRepo(tx).UpdatePassword(ctx, pr.UserID, newPassword)
	})
}

func randomToken(nBytes int) (string, error) {
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
