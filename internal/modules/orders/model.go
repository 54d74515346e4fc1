package orders

import "time"

// Order statuses. The dashboard surfaces the first four as filter tabs;
// shipped appears on the storefront tracking page only.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusShipped    = "shipped"
)

var validStatuses = map[string]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusShipped:    {},
}

func ValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

type Order struct {
	ID            string    `gorm:"primaryKey;type:char(36)"`
	StoreID       string    `gorm:"type:char(36);not null;index:ix_orders_store_id"`
	CustomerName  string    `gorm:"type:varchar(190);not null"`
	CustomerEmail string    `gorm:"type:varchar(190);not null"`
	CustomerPhone string    `gorm:"type:varchar(32);not null"`
	Status        string    `gorm:"type:varchar(20);not null;index:ix_orders_status"`
	TotalCents    int64     `gorm:"not null"`
	Currency      string    `gorm:"type:char(3);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID             string    `gorm:"primaryKey;type:char(36)"`
	OrderID        string    `gorm:"type:char(36);not null;index:ix_order_items_order_id"`
	ProductID      string    `gorm:"type:char(36);not null"`
	ProductName    string    `gorm:"type:varchar(190);not null"` // snapshot at order time
	Quantity       int       `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"` // snapshot at order time
	CreatedAt      time.Time `gorm:"not null"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderEvent is the audit row written on every status change.
type OrderEvent struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	OrderID     string    `gorm:"type:char(36);not null;index:ix_order_events_order_id"`
	ActorUserID string    `gorm:"type:char(36);not null"`
	Action      string    `gorm:"type:varchar(32);not null"`
	FromStatus  string    `gorm:"type:varchar(20);not null"`
	ToStatus    string    `gorm:"type:varchar(20);not null"`
	Note        *string   `gorm:"type:varchar(500)"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (OrderEvent) TableName() string { return "order_events" }
