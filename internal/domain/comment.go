package domain

import "time"

// Comment is text attached to a post. UUID is the client-visible identifier;
// the numeric primary key never leaves the storage layer.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"type:varchar(36);uniqueIndex:idx_comment_uuid;not null"`
	Text      string `gorm:"type:text;not null"`
	UserID    uint   `gorm:"index;not null"`
	User      User
	PostID    uint      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
