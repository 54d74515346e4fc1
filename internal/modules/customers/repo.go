// Package customers derives the dashboard customer list from orders.
// There is no customers table; a customer is whoever placed at least one
// order, keyed by email within a store.
package customers

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type Customer struct {
	Name       string
	Email      string
	Phone      string
	OrderCount int64
	SpentCents int64
	FirstSeen  time.Time
	LastSeen   time.Time
}

type ListParams struct {
	Page  int
	Limit int
}

type ListResult struct {
	Items []Customer
	Total int64
	Page  int
	Limit int
}

func (r *Repo) List(ctx context.Context, storeID string, in ListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Table("orders").
		Where("store_id = ?", storeID).
		Distinct("customer_email").
		Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var items []Customer
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(`customer_email AS email,
			MAX(customer_name) AS name,
			MAX(customer_phone) AS phone,
			COUNT(*) AS order_count,
			SUM(total_cents) AS spent_cents,
			MIN(created_at) AS first_seen,
			MAX(created_at) AS last_seen`).
		Where("store_id = ?", storeID).
		Group("customer_email").
		Order("last_seen DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Scan(&items).Error
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}
