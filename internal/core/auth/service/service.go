package authapp

import (
	"context"
	"fmt"
	"time"

	userEntity "yoripe/internal/core/user"

	"yoripe/internal/apperrors"
	tokenPort "yoripe/internal/ports/token"
	userPort "yoripe/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService issues and revokes bearer tokens. A token is a signed JWT
// whose jti is registered in the token store for the token's lifetime;
// logout deletes the registration, which invalidates the token even though
// its signature stays valid.
type AuthService struct {
	UserRepository  userPort.UserRepository
	TokenRepository tokenPort.TokenRepository
	jwtKey          []byte
}

func NewAuthService(users userPort.UserRepository, tokens tokenPort.TokenRepository, jwtKey []byte) *AuthService {
	return &AuthService{
		UserRepository:  users,
		TokenRepository: tokens,
		jwtKey:          jwtKey,
	}
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password collapse to the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*tokenPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokenID := uuid.Must(uuid.NewV4()).String()
	now := time.Now()

	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Id:        tokenID,
		Issuer:    "yoripe",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("could not sign token: %w", err)
	}

	if err := s.TokenRepository.Store(ctx, tokenID, u.ID.String(), tokenTTL); err != nil {
		return nil, fmt.Errorf("could not register token: %w", err)
	}

	return &tokenPort.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
	}, nil
}

// Logout revokes a single token; other tokens of the same user stay live.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.TokenRepository.Revoke(ctx, tokenID)
}

// Authenticate resolves a raw bearer token to its actor. It returns the
// token id alongside the user so the caller can later revoke exactly the
// token the request presented.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*userEntity.User, string, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, "", fmt.Errorf("invalid token: %w", apperrors.ErrTokenRevoked)
	}

	if claims.Id == "" {
		return nil, "", fmt.Errorf("token has no id: %w", apperrors.ErrTokenRevoked)
	}

	ownerID, err := s.TokenRepository.Owner(ctx, claims.Id)
	if err != nil {
		return nil, "", err
	}
	if ownerID != claims.Subject {
		return nil, "", fmt.Errorf("token subject mismatch: %w", apperrors.ErrTokenRevoked)
	}

	u, err := s.UserRepository.FindByID(ctx, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("token owner not found: %w", apperrors.ErrTokenRevoked)
	}

	return u, claims.Id, nil
}
