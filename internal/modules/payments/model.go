package payments

import "time"

// Transaction is one ledger entry in payment_transactions. Amounts are
// signed: captures positive, refunds negative.
type Transaction struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	StoreID     string    `gorm:"type:char(36);not null;index:ix_payment_tx_store_id"`
	OrderID     string    `gorm:"type:char(36);not null;index:ix_payment_tx_order_id"`
	Method      string    `gorm:"type:varchar(20);not null"` // cod|bank|online
	Event       string    `gorm:"type:varchar(20);not null"` // capture|refund
	AmountCents int64     `gorm:"not null"`
	Currency    string    `gorm:"type:char(3);not null"`
	Reference   string    `gorm:"type:varchar(190)"` // provider or bank reference
	CreatedAt   time.Time `gorm:"not null"`
}

func (Transaction) TableName() string { return "payment_transactions" }
