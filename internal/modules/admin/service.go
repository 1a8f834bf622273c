// README: Admin service: login/logout lifecycle and session checks.
package admin

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jatriwheels/internal/types"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// accountStore is what Service needs from persistence.
type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	RecordLogin(ctx context.Context, id types.ID) error
	IncrementLoginAttempts(ctx context.Context, id types.ID) error
}

type Service struct {
	store   accountStore
	tokens  *TokenManager
	revoker Revoker
	log     *zap.Logger
}

func NewService(store accountStore, tokens *TokenManager, revoker Revoker, log *zap.Logger) *Service {
	return &Service{store: store, tokens: tokens, revoker: revoker, log: log}
}

// Login verifies credentials and issues a session token. A failed
// password bumps the account's attempt counter; success clears it and
// stamps last_login.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	a, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(normalizeHash(a.PasswordHash)), []byte(password)); err != nil {
		if err := s.store.IncrementLoginAttempts(ctx, a.ID); err != nil {
			s.log.Warn("failed to record login attempt", zap.Error(err))
		}
		return "", nil, ErrInvalidCredentials
	}

	if err := s.store.RecordLogin(ctx, a.ID); err != nil {
		s.log.Warn("failed to record login", zap.Error(err))
	}

	token, _, err := s.tokens.Issue(a)
	if err != nil {
		return "", nil, err
	}
	return token, a, nil
}

// Logout invalidates the presented token for its remaining lifetime.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	return s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// Authenticate parses and checks a token for middleware use.
func (s *Service) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// normalizeHash converts the $2y$ bcrypt prefix written by PHP-era
// tooling to the $2a$ prefix Go's bcrypt understands.
func normalizeHash(hash string) string {
	return strings.Replace(hash, "$2y$", "$2a$", 1)
}
