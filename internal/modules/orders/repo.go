package orders

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// Sort options exposed by the dashboard orders screen.
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

type ListParams struct {
	Page   int
	Limit  int
	Status string // "" or "all" means no filter
	Search string // ORed over customer name/email/phone and order id
	Sort   string // one of the Sort* constants, default newest
}

type ListResult struct {
	Items []Order
	Total int64
	Page  int
	Limit int
}

func sortClause(sort string) string {
	switch sort {
	case SortOldest:
		return "created_at ASC"
	case SortHighest:
		return "total_cents DESC"
	case SortLowest:
		return "total_cents ASC"
	default:
		return "created_at DESC"
	}
}

// List returns one filtered page plus the matching total. The count and the
// page are two separate queries; the total can drift under concurrent writes.
func (r *Repo) List(ctx context.Context, storeID string, in ListParams) (ListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	base := r.db.WithContext(ctx).Model(&Order{}).Where("store_id = ?", storeID)

	status := strings.TrimSpace(in.Status)
	if status != "" && status != "all" {
		base = base.Where("status = ?", status)
	}
	if q := strings.TrimSpace(in.Search); q != "" {
		like := "%" + q + "%"
		base = base.Where(
			"(customer_name LIKE ? OR customer_email LIKE ? OR customer_phone LIKE ? OR id LIKE ?)",
			like, like, like, like,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return ListResult{}, err
	}

	var items []Order
	if err := base.
		Order(sortClause(in.Sort)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error; err != nil {
		return ListResult{}, err
	}

	return ListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// GetWithItems loads one order scoped to its store.
func (r *Repo) GetWithItems(ctx context.Context, storeID, id string) (Order, []OrderItem, error) {
	var o Order
	if err := r.db.WithContext(ctx).First(&o, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		return Order{}, nil, err
	}
	var items []OrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items, "order_id = ?", o.ID).Error; err != nil {
		return Order{}, nil, err
	}
	return o, items, nil
}

func (r *Repo) ListEvents(ctx context.Context, orderID string) ([]OrderEvent, error) {
	var ev []OrderEvent
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ev, "order_id = ?", orderID).Error
	return ev, err
}

// StatusCounts backs the dashboard filter tab badges.
func (r *Repo) StatusCounts(ctx context.Context, storeID string) (map[string]int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Order{}).
		Select("status, COUNT(*) AS n").
		Where("store_id = ?", storeID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}

// Create inserts an order with its items in one transaction.
// Used by the seeding tool and tests; checkout flows live elsewhere.
func (r *Repo) Create(ctx context.Context, o Order, items []OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
