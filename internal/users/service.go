package users

import (
	"context"
	"errors"

	"github.com/deepblocks/auth-service/internal/auth/password"
	"github.com/deepblocks/auth-service/internal/auth/token"
	apperrors "github.com/deepblocks/auth-service/internal/errors"
	"github.com/deepblocks/auth-service/internal/logger"
)

// Service orchestrates the signup and login flows. It holds no per-request
// state; all collaborators are injected at construction.
type Service struct {
	repo   Repository
	hasher password.Hasher
	issuer *token.Issuer
	log    *logger.Logger
}

// NewService creates the auth flow service.
func NewService(repo Repository, hasher password.Hasher, issuer *token.Issuer, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
		log:    log.WithComponent("users"),
	}
}

// SignUp registers a new user: existence check, hash, persist.
//
// A lookup failure during the existence check is a hard internal error, not
// retried. An existing record is a conflict. The returned record carries no
// hash material in its JSON form.
func (s *Service) SignUp(ctx context.Context, email, plainPassword string) (*User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("Signup existence check failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		return nil, apperrors.EmailRegistered()
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user, err := s.repo.Insert(ctx, &User{Email: email, HashedPassword: hash})
	if err != nil {
		// The unique index can still reject a concurrent duplicate that
		// slipped past the existence check.
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperrors.EmailRegistered()
		}
		s.log.Error("Signup insert failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperrors.DatabaseError(err)
	}

	s.log.Info("User registered", map[string]interface{}{"email": user.Email})
	return user, nil
}

// Login verifies credentials and mints an access token. An unknown email and
// a wrong password produce the same invalid-credentials error so callers
// cannot distinguish the two.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (*Token, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		s.log.Error("Login lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, apperrors.DatabaseError(err)
	}

	if err := s.hasher.Verify(plainPassword, user.HashedPassword); err != nil {
		// Covers both a wrong password and a malformed stored hash.
		s.log.Debug("Password verification failed", map[string]interface{}{
			"email": email,
		})
		return nil, apperrors.InvalidCredentials()
	}

	accessToken, err := s.issuer.Issue(user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &Token{AccessToken: accessToken, TokenType: TokenTypeBearer}, nil
}
