package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func (r *Repo) Create(ctx context.Context, email, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

// Authenticate verifies credentials and returns the user.
// The error is deliberately identical for unknown email and wrong password.
func (r *Repo) Authenticate(ctx context.Context, email, password string) (User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", normalizeEmail(email)).Error; err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", normalizeEmail(email)).Error
	return u, err
}

func (r *Repo) Get(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (r *Repo) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash": string(hash),
			"updated_at":    time.Now(),
		}).Error
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
