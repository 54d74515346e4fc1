package stores

import "time"

// Store is the tenant root. Every child row carries StoreID.
type Store struct {
	ID          string `gorm:"primaryKey;type:char(36)"`
	OwnerUserID string `gorm:"type:char(36);not null;index:ix_stores_owner"`
	Handle      string `gorm:"type:varchar(64);not null;uniqueIndex:ux_stores_handle"`
	Name        string `gorm:"type:varchar(190);not null"`
	Description string `gorm:"type:varchar(1000)"`
	LogoURL     string `gorm:"type:varchar(500)"`
	CoverURL    string `gorm:"type:varchar(500)"`
	Currency    string `gorm:"type:char(3);not null;default:SAR"`
	Country     string `gorm:"type:char(2);not null;default:SA"`

	ContactEmail string `gorm:"type:varchar(190)"`
	ContactPhone string `gorm:"type:varchar(32)"`
	Instagram    string `gorm:"type:varchar(190)"`
	Twitter      string `gorm:"type:varchar(190)"`

	PaymentCOD    bool   `gorm:"not null;default:true"`
	PaymentBank   bool   `gorm:"not null;default:false"`
	PaymentOnline bool   `gorm:"not null;default:false"`
	BankName      string `gorm:"type:varchar(190)"`
	BankIBAN      string `gorm:"type:varchar(64)"`

	ShippingEnabled        bool  `gorm:"not null;default:false"`
	ShippingFeeCents       int64 `gorm:"not null;default:0"`
	FreeShippingAboveCents int64 `gorm:"not null;default:0"`

	WhatsappEnabled bool   `gorm:"not null;default:false"`
	WhatsappPhone   string `gorm:"type:varchar(32)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Store) TableName() string { return "stores" }
