package database

import (
	"errors"

	"yoripe/internal/core/user"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed ensures the fixed roles and the bootstrap accounts exist. Safe to run
// on every startup. The manager and user accounts are only seeded outside
// production.
func Seed(db *gorm.DB, env string) error {
	for _, name := range []string{user.RoleAdmin, user.RoleManager, user.RoleUser} {
		if err := db.Where(user.Role{Name: name}).FirstOrCreate(&user.Role{}).Error; err != nil {
			return err
		}
	}

	if err := ensureUser(db, "Admin", "admin@yoripe.com", "!OrdinaryAdmin", user.RoleAdmin); err != nil {
		return err
	}

	if env != "production" {
		if err := ensureUser(db, "Manager", "manager@yoripe.com", "!OrdinaryManager", user.RoleManager); err != nil {
			return err
		}
		if err := ensureUser(db, "User", "user@yoripe.com", "JustOrdinaryUser#1", user.RoleUser); err != nil {
			return err
		}
	}

	return nil
}

func ensureUser(db *gorm.DB, name, email, password, role string) error {
	var existing user.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &user.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Omit("Roles").Create(u).Error; err != nil {
		return err
	}

	var r user.Role
	if err := db.Where("name = ?", role).First(&r).Error; err != nil {
		return err
	}
	return db.Model(u).Association("Roles").Replace(&r)
}
