package user

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}

type User struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"index;not null"`
	Password  string    `gorm:"not null"`
	Roles     []Role    `gorm:"many2many:user_roles"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	// Soft-delete tombstone: deleted users keep their row but drop out of
	// the default query scope.
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// HasRole reports role membership. Membership is a set test, not a hierarchy.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
