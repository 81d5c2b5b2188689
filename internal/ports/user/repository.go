package user

import (
	"context"
	"time"

	"yoripe/internal/core/user"
)

// UserRepository is the outbound port for persisting users. FindByID and
// FindByEmail follow the default scope (soft-deleted rows excluded);
// FindByIDUnscoped sees tombstoned rows too.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByIDUnscoped(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context, offset, limit int) ([]*user.User, int64, error)
	Update(ctx context.Context, u *user.User) error
	SoftDelete(ctx context.Context, id string) error
	ReplaceRoles(ctx context.Context, u *user.User, role string) error
}

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Page struct {
	Items   []*UserDTO `json:"items"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int64      `json:"total"`
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries partial updates: nil means "leave unchanged".
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}
