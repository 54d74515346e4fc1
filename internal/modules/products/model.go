package products

import "time"

type Product struct {
	ID          string    `gorm:"primaryKey;type:char(36)"`
	StoreID     string    `gorm:"type:char(36);not null;index:ix_products_store_id;uniqueIndex:ux_products_store_slug"`
	Name        string    `gorm:"type:varchar(190);not null"`
	Slug        string    `gorm:"type:varchar(190);not null;uniqueIndex:ux_products_store_slug"`
	Description string    `gorm:"type:varchar(2000)"`
	PriceCents  int64     `gorm:"not null"`
	Currency    string    `gorm:"type:char(3);not null"`
	InStock     bool      `gorm:"not null;default:true"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	Category    string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (Product) TableName() string { return "products" }
