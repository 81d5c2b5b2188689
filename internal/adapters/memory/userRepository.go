package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"yoripe/internal/apperrors"
	"yoripe/internal/core/user"

	"gorm.io/gorm"
)

// UserRepositoryMemory is an in-memory UserRepository mirroring the gorm
// adapter's scoping rules: soft-deleted users stay stored but are invisible
// to everything except FindByIDUnscoped.
type UserRepositoryMemory struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{users: make(map[string]*user.User)}
}

func (repo *UserRepositoryMemory) Create(ctx context.Context, u *user.User) (*user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	stored := cloneUser(u)
	repo.users[u.ID.String()] = stored
	return cloneUser(stored), nil
}

func (repo *UserRepositoryMemory) FindByID(ctx context.Context, id string) (*user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok || u.DeletedAt.Valid {
		return nil, apperrors.ErrNotFound
	}
	return cloneUser(u), nil
}

func (repo *UserRepositoryMemory) FindByIDUnscoped(ctx context.Context, id string) (*user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return cloneUser(u), nil
}

func (repo *UserRepositoryMemory) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, u := range repo.users {
		if u.Email == email && !u.DeletedAt.Valid {
			return cloneUser(u), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (repo *UserRepositoryMemory) List(ctx context.Context, offset, limit int) ([]*user.User, int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	live := make([]*user.User, 0, len(repo.users))
	for _, u := range repo.users {
		if !u.DeletedAt.Valid {
			live = append(live, u)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].CreatedAt.Before(live[j].CreatedAt)
	})

	total := int64(len(live))
	if offset >= len(live) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(live) {
		end = len(live)
	}

	page := make([]*user.User, 0, end-offset)
	for _, u := range live[offset:end] {
		page = append(page, cloneUser(u))
	}
	return page, total, nil
}

func (repo *UserRepositoryMemory) Update(ctx context.Context, u *user.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.users[u.ID.String()]
	if !ok || stored.DeletedAt.Valid {
		return apperrors.ErrNotFound
	}

	updated := cloneUser(u)
	updated.Roles = stored.Roles
	updated.UpdatedAt = time.Now()
	repo.users[u.ID.String()] = updated
	return nil
}

func (repo *UserRepositoryMemory) SoftDelete(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok || u.DeletedAt.Valid {
		return apperrors.ErrNotFound
	}
	u.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}

func (repo *UserRepositoryMemory) ReplaceRoles(ctx context.Context, u *user.User, role string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.users[u.ID.String()]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.Roles = []user.Role{{Name: role}}
	u.Roles = []user.Role{{Name: role}}
	return nil
}

func cloneUser(u *user.User) *user.User {
	c := *u
	c.Roles = append([]user.Role(nil), u.Roles...)
	return &c
}
