package post

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	StatusDraft     = 0
	StatusPublished = 1
)

// Post has no DeletedAt: deleting a post removes the row for good.
type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    int       `gorm:"not null;default:0"`
	UserID    uuid.UUID `gorm:"type:char(36);not null"` // owner, immutable after create
	UpdatedBy uuid.UUID `gorm:"type:char(36);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
