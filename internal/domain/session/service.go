package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const DefaultTTL = 24 * time.Hour

type Servicer interface {
	Create(ctx context.Context, userID int) (string, error)
	Validate(ctx context.Context, token string) (int, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log.With("component", "session_service"),
	}
}

// Create issues a new opaque token for userID. Only its hash is stored.
func (s *Service) Create(ctx context.Context, userID int) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)

	expiresAt := time.Now().Add(s.ttl)
	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

// Validate resolves a token to its owner. An empty, unknown or expired
// token yields ErrUnauthenticated; storage failures are returned wrapped.
func (s *Service) Validate(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}

	userID, err := s.repo.Validate(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return 0, ErrUnauthenticated
		}
		return 0, fmt.Errorf("validate session: %w", err)
	}

	return userID, nil
}

// Revoke deletes the session behind token. Revoking an unknown token is not
// an error.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthenticated
	}

	if err := s.repo.Delete(ctx, hashToken(token)); err != nil && !errors.Is(err, ErrNoSession) {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
