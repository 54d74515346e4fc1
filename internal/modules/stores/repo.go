package stores

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"matajer.app/internal/shared/handle"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type CreateInput struct {
	OwnerUserID string
	Handle      string
	Name        string
	Currency    string
	Country     string
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (Store, error) {
	h := handle.Normalize(in.Handle)
	if !handle.Valid(h) {
		return Store{}, ErrInvalidHandle
	}
	currency := in.Currency
	if currency == "" {
		currency = "SAR"
	}
	country := in.Country
	if country == "" {
		country = "SA"
	}

	s := Store{
		ID:          uuid.NewString(),
		OwnerUserID: in.OwnerUserID,
		Handle:      h,
		Name:        in.Name,
		Currency:    currency,
		Country:     country,
		PaymentCOD:  true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		if isDuplicateKey(err) {
			return Store{}, ErrHandleTaken
		}
		return Store{}, err
	}
	return s, nil
}

func (r *Repo) GetByHandle(ctx context.Context, h string) (Store, error) {
	var s Store
	err := r.db.WithContext(ctx).First(&s, "handle = ?", handle.Normalize(h)).Error
	return s, err
}

func (r *Repo) GetByOwner(ctx context.Context, userID string) (Store, error) {
	var s Store
	err := r.db.WithContext(ctx).First(&s, "owner_user_id = ?", userID).Error
	return s, err
}

func (r *Repo) Get(ctx context.Context, id string) (Store, error) {
	var s Store
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

// UpdateSettings applies a partial column update from the settings screens.
func (r *Repo) UpdateSettings(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()
	return r.db.WithContext(ctx).Model(&Store{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	// sqlite (tests) reports constraint violations through gorm
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
