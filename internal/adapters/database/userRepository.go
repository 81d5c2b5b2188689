package database

import (
	"context"
	"errors"
	"fmt"

	"yoripe/internal/apperrors"
	"yoripe/internal/core/user"

	"gorm.io/gorm"
)

// UserRepositoryDatabase is the gorm-backed UserRepository. The gorm
// DeletedAt default scope keeps soft-deleted users out of every query
// except FindByIDUnscoped.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := repo.db.WithContext(ctx).Omit("Roles").Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := repo.db.WithContext(ctx).Preload("Roles").Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByIDUnscoped(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := repo.db.WithContext(ctx).Unscoped().Preload("Roles").Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := repo.db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*user.User
	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Order("created_at asc").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (repo *UserRepositoryDatabase) Update(ctx context.Context, u *user.User) error {
	return repo.db.WithContext(ctx).Omit("Roles").Save(u).Error
}

func (repo *UserRepositoryDatabase) SoftDelete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Where("id = ?", id).Delete(&user.User{}).Error
}

// ReplaceRoles swaps the user's role set for the single named role.
func (repo *UserRepositoryDatabase) ReplaceRoles(ctx context.Context, u *user.User, role string) error {
	var r user.Role
	if err := repo.db.WithContext(ctx).Where("name = ?", role).First(&r).Error; err != nil {
		return fmt.Errorf("unknown role %q: %w", role, err)
	}
	return repo.db.WithContext(ctx).Model(u).Association("Roles").Replace(&r)
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
