package products

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"matajer.app/internal/shared/handle"
)

var ErrSlugTaken = errors.New("product slug already taken in this store")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// List returns all products of a store for the dashboard, newest edits first.
func (r *Repo) List(ctx context.Context, storeID string) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

// ListInStock backs the public storefront: in-stock products only.
func (r *Repo) ListInStock(ctx context.Context, storeID string, limit, offset int) ([]Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	var items []Product
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND in_stock = ?", storeID, true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, storeID, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ? AND store_id = ?", id, storeID).Error
	return p, err
}

type CreateInput struct {
	StoreID     string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	InStock     bool
	ImageURL    string
	Category    string
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		StoreID:     in.StoreID,
		Name:        in.Name,
		Slug:        slugFromName(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		InStock:     in.InStock,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if IsDuplicateKey(err) {
			return Product{}, ErrSlugTaken
		}
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, storeID, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND store_id = ?", id, storeID).
		Updates(updates).Error
}

func (r *Repo) Delete(ctx context.Context, storeID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		Delete(&Product{}).Error
}

func slugFromName(name string) string {
	// handle.Normalize gives "@foo-bar"; product slugs drop the prefix.
	s := handle.Normalize(name)
	return s[1:]
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
