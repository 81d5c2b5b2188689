package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"yoripe/internal/apperrors"
	"yoripe/internal/core/post"
)

// PostRepositoryMemory is an in-memory PostRepository. Delete removes the
// entry outright, matching the hard-delete contract of the gorm adapter.
type PostRepositoryMemory struct {
	mu       sync.Mutex
	posts    map[string]*post.Post
	sequence []string
}

func NewPostRepositoryMemory() *PostRepositoryMemory {
	return &PostRepositoryMemory{posts: make(map[string]*post.Post)}
}

func (repo *PostRepositoryMemory) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	stored := clonePost(p)
	repo.posts[p.ID.String()] = stored
	repo.sequence = append(repo.sequence, p.ID.String())
	return clonePost(stored), nil
}

func (repo *PostRepositoryMemory) FindByID(ctx context.Context, id string) (*post.Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	p, ok := repo.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return clonePost(p), nil
}

func (repo *PostRepositoryMemory) List(ctx context.Context, offset, limit int) ([]*post.Post, int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all := make([]*post.Post, 0, len(repo.posts))
	for _, id := range repo.sequence {
		if p, ok := repo.posts[id]; ok {
			all = append(all, p)
		}
	}
	// Stable, so equal timestamps keep insertion order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	page := make([]*post.Post, 0, end-offset)
	for _, p := range all[offset:end] {
		page = append(page, clonePost(p))
	}
	return page, total, nil
}

func (repo *PostRepositoryMemory) Update(ctx context.Context, p *post.Post) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.posts[p.ID.String()]; !ok {
		return apperrors.ErrNotFound
	}
	updated := clonePost(p)
	updated.UpdatedAt = time.Now()
	repo.posts[p.ID.String()] = updated
	return nil
}

func (repo *PostRepositoryMemory) Delete(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.posts[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(repo.posts, id)
	return nil
}

func clonePost(p *post.Post) *post.Post {
	c := *p
	return &c
}
