package token

import (
	"context"
	"time"
)

// TokenRepository registers issued bearer tokens by their token id. A token
// is live only while its registration exists; Revoke deletes it. Several
// live tokens may belong to the same user.
type TokenRepository interface {
	Store(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	// Owner returns the owning user id, or apperrors.ErrTokenRevoked when
	// the registration is gone.
	Owner(ctx context.Context, tokenID string) (string, error)
	Revoke(ctx context.Context, tokenID string) error
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
