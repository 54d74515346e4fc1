package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type RecordInput struct {
	StoreID     string
	OrderID     string
	Method      string
	Event       string
	AmountCents int64
	Currency    string
	Reference   string
}

func (r *Repo) Record(ctx context.Context, in RecordInput) (Transaction, error) {
	t := Transaction{
		ID:          uuid.NewString(),
		StoreID:     in.StoreID,
		OrderID:     in.OrderID,
		Method:      in.Method,
		Event:       in.Event,
		AmountCents: in.AmountCents,
		Currency:    in.Currency,
		Reference:   in.Reference,
		CreatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (r *Repo) ListByOrder(ctx context.Context, orderID string) ([]Transaction, error) {
	var out []Transaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "order_id = ?", orderID).Error
	return out, err
}

// NetCents sums the signed ledger for an order.
func (r *Repo) NetCents(ctx context.Context, orderID string) (int64, error) {
	var net *int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select("SUM(amount_cents)").
		Where("order_id = ?", orderID).
		Scan(&net).Error
	if err != nil || net == nil {
		return 0, err
	}
	return *net, nil
}
