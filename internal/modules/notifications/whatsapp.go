// Package notifications records WhatsApp notification attempts.
// Sending is delegated to a provider; every attempt lands in
// whatsapp_notifications_log regardless of outcome.
package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WhatsappLog struct {
	ID           string  `gorm:"primaryKey;type:char(36)"`
	StoreID      string  `gorm:"type:char(36);not null;index:ix_whatsapp_log_store_id"`
	OrderID      string  `gorm:"type:char(36);not null;index:ix_whatsapp_log_order_id"`
	Phone        string  `gorm:"type:varchar(32);not null"`
	Message      string  `gorm:"type:varchar(1000);not null"`
	Status       string  `gorm:"type:varchar(20);not null"` // queued|sent|failed
	ErrorMessage *string `gorm:"type:varchar(500)"`
	SentAt       *time.Time
	CreatedAt    time.Time `gorm:"not null"`
}

func (WhatsappLog) TableName() string { return "whatsapp_notifications_log" }

// Provider sends a WhatsApp message. Implementations must not block long;
// failures are recorded, never retried.
type Provider interface {
	Send(ctx context.Context, phone, message string) error
}

type Service struct {
	db       *gorm.DB
	provider Provider // nil means log-only
}

func NewService(db *gorm.DB, provider Provider) *Service {
	return &Service{db: db, provider: provider}
}

type Entry struct {
	StoreID string
	OrderID string
	Phone   string
	Message string
}

// EnqueueTx writes the log row inside the caller's transaction and attempts
// delivery after it. Delivery failure updates the row, not the caller's tx.
func (s *Service) EnqueueTx(ctx context.Context, tx *gorm.DB, e Entry) (string, error) {
	row := WhatsappLog{
		ID:        uuid.NewString(),
		StoreID:   e.StoreID,
		OrderID:   e.OrderID,
		Phone:     e.Phone,
		Message:   e.Message,
		Status:    "queued",
		CreatedAt: time.Now(),
	}
	if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

// Deliver attempts the send for a queued row and records the outcome.
func (s *Service) Deliver(ctx context.Context, logID string) error {
	var row WhatsappLog
	if err := s.db.WithContext(ctx).First(&row, "id = ?", logID).Error; err != nil {
		return err
	}
	if s.provider == nil {
		return nil
	}

	now := time.Now()
	if err := s.provider.Send(ctx, row.Phone, row.Message); err != nil {
		msg := err.Error()
		return s.db.WithContext(ctx).Model(&WhatsappLog{}).
			Where("id = ?", row.ID).
			Updates(map[string]any{"status": "failed", "error_message": &msg}).Error
	}
	return s.db.WithContext(ctx).Model(&WhatsappLog{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{"status": "sent", "sent_at": &now}).Error
}

func (s *Service) ListByOrder(ctx context.Context, orderID string) ([]WhatsappLog, error) {
	var out []WhatsappLog
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "order_id = ?", orderID).Error
	return out, err
}
