package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"matajer.app/internal/modules/notifications"
	"matajer.app/internal/modules/stores"
	"matajer.app/pkg/view"
)

// Service mutates orders on behalf of the dashboard.
type Service struct {
	db    *gorm.DB
	notif *notifications.Service // nil disables whatsapp logging
}

func NewService(db *gorm.DB, notif *notifications.Service) *Service {
	return &Service{db: db, notif: notif}
}

type UpdateStatusInput struct {
	StoreID     string
	OrderID     string
	ActorUserID string
	To          string
	Note        string
}

// UpdateStatus moves an order to any valid status. The dashboard allows
// arbitrary transitions; the guard below only protects against a concurrent
// change between read and write.
func (s *Service) UpdateStatus(ctx context.Context, in UpdateStatusInput) error {
	if !ValidStatus(in.To) {
		return ErrUnknownStatus
	}

	var pendingLog string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ? AND store_id = ?", in.OrderID, in.StoreID).Error; err != nil {
			return err
		}

		from := o.Status
		if from == in.To {
			return nil
		}

		now := time.Now()
		res := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND store_id = ? AND status = ?", o.ID, in.StoreID, from). // optimistic guard
			Updates(map[string]any{
				"status":     in.To,
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}

		var notePtr *string
		if n := trimSpace(in.Note); n != "" {
			notePtr = &n
		}
		ev := OrderEvent{
			ID:          uuid.NewString(),
			OrderID:     o.ID,
			ActorUserID: in.ActorUserID,
			Action:      "status_change",
			FromStatus:  from,
			ToStatus:    in.To,
			Note:        notePtr,
			CreatedAt:   now,
		}
		if err := tx.WithContext(ctx).Create(&ev).Error; err != nil {
			return err
		}

		if s.notif == nil {
			return nil
		}
		var st stores.Store
		if err := tx.WithContext(ctx).First(&st, "id = ?", in.StoreID).Error; err != nil {
			return err
		}
		if !st.WhatsappEnabled || o.CustomerPhone == "" {
			return nil
		}
		logID, err := s.notif.EnqueueTx(ctx, tx, notifications.Entry{
			StoreID: st.ID,
			OrderID: o.ID,
			Phone:   o.CustomerPhone,
			Message: statusMessage(st.Name, o, in.To),
		})
		if err != nil {
			return err
		}
		pendingLog = logID
		return nil
	})
	if err != nil {
		return err
	}

	// Delivery happens outside the tx; a send failure must not undo the update.
	if pendingLog != "" {
		_ = s.notif.Deliver(ctx, pendingLog)
	}
	return nil
}

func statusMessage(storeName string, o Order, to string) string {
	return fmt.Sprintf("%s: تم تحديث حالة طلبك %s إلى \"%s\"",
		storeName, FormatOrderID(o.ID, storeName), view.OrderStatusText(to))
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
