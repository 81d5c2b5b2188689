package memory

import (
	"context"
	"sync"
	"time"

	"yoripe/internal/apperrors"
)

// TokenRepositoryMemory is an in-memory token registry honoring the same
// expiry semantics as the Redis adapter.
type TokenRepositoryMemory struct {
	mu     sync.Mutex
	tokens map[string]tokenEntry
}

type tokenEntry struct {
	userID    string
	expiresAt time.Time
}

func NewTokenRepositoryMemory() *TokenRepositoryMemory {
	return &TokenRepositoryMemory{tokens: make(map[string]tokenEntry)}
}

func (repo *TokenRepositoryMemory) Store(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.tokens[tokenID] = tokenEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (repo *TokenRepositoryMemory) Owner(ctx context.Context, tokenID string) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	entry, ok := repo.tokens[tokenID]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", apperrors.ErrTokenRevoked
	}
	return entry.userID, nil
}

func (repo *TokenRepositoryMemory) Revoke(ctx context.Context, tokenID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.tokens, tokenID)
	return nil
}
