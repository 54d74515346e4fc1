package auth

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;type:char(36)"`
	Email        string    `gorm:"type:varchar(190);not null;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (User) TableName() string { return "users" }

// PasswordReset stores the sha256 of the emailed token, never the token.
type PasswordReset struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:char(36);not null;index:ix_password_resets_user_id"`
	TokenHash string    `gorm:"type:char(64);not null;uniqueIndex:ux_password_resets_token"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (PasswordReset) TableName() string { return "password_resets" }
