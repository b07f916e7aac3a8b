// Package domain defines the persisted entities of the platform.
package domain

import "time"

// User is an account on the platform. Password holds a bcrypt hash, never the
// plaintext credential.
type User struct {
	ID         uint      `gorm:"primaryKey"`
	Username   string    `gorm:"type:varchar(191);uniqueIndex:idx_username;not null"`
	Email      string    `gorm:"type:varchar(191);uniqueIndex:idx_email;not null"`
	Password   string    `gorm:"type:text;not null"`
	IsAdmin    bool      `gorm:"not null;default:false"`
	IsVerified bool      `gorm:"not null;default:false"`
	IsBanned   bool      `gorm:"not null;default:false"`
	RegisterIP string    `gorm:"type:varchar(64)"`
	Tags       []string  `gorm:"serializer:json"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
