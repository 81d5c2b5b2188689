package database

import (
	"context"

	"yoripe/internal/core/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase is the gorm-backed PostRepository. Post carries no
// DeletedAt, so Delete removes the row for good.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, offset, limit int) ([]*post.Post, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&post.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Order("created_at asc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	return repo.db.WithContext(ctx).Save(p).Error
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{}).Error
}
