package post

import (
	"context"
	"time"

	"yoripe/internal/core/post"
)

// PostRepository is the outbound port for persisting posts. List orders by
// creation time ascending. Delete removes the row outright.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	List(ctx context.Context, offset, limit int) ([]*post.Post, int64, error)
	Update(ctx context.Context, p *post.Post) error
	Delete(ctx context.Context, id string) error
}

type PostDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Status    int       `json:"status"`
	UserID    string    `json:"user_id"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Page struct {
	Items   []*PostDTO `json:"items"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int64      `json:"total"`
}

type CreatePostInput struct {
	Title   string
	Content string
	Status  int
}

// UpdatePostInput carries partial updates: nil means "leave unchanged".
type UpdatePostInput struct {
	Title   *string
	Content *string
	Status  *int
}
