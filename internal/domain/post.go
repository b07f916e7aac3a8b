package domain

import "time"

// PostType enumerates the kinds of content a post can carry.
type PostType string

const (
	PostTypeDocument PostType = "Document"
	PostTypeLink     PostType = "Link"
	PostTypeQuestion PostType = "Question"
)

// Valid reports whether t is one of the known post types.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeDocument, PostTypeLink, PostTypeQuestion:
		return true
	}
	return false
}

// Post is a published piece of content. URL is the canonical slug the post is
// addressed by; Document posts have a PDF stored under "<URL>.pdf" in the
// object store.
type Post struct {
	ID          uint     `gorm:"primaryKey"`
	Type        PostType `gorm:"type:varchar(16);not null"`
	Title       string   `gorm:"type:varchar(255);not null"`
	Description string   `gorm:"type:text"`
	UserID      uint     `gorm:"index;not null"`
	User        User
	URL         string    `gorm:"type:varchar(191);uniqueIndex:idx_post_url;not null"`
	Subject     string    `gorm:"type:varchar(191);index"`
	Unit        string    `gorm:"type:varchar(191)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
