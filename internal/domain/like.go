package domain

import "time"

// Like is a join record between a user and a post. The composite unique index
// enforces at most one like per (user, post) at the storage layer.
type Like struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"uniqueIndex:idx_like_user_post;not null"`
	PostID     uint      `gorm:"uniqueIndex:idx_like_user_post;not null"`
	PostUserID uint      `gorm:"index;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
