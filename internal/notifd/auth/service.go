// Package auth implements username/password accounts for the admin API.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

// User is a stored admin account.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Service defines the account operations
type Service interface {
	// SignUp creates a new account
	SignUp(ctx context.Context, req *types.SignUpRequest) (*types.UserInfo, error)
	// SignIn verifies credentials. Unknown users and bad passwords fail
	// with distinct errors so the UI can say which it was.
	SignIn(ctx context.Context, req *types.SignInRequest) (*types.UserInfo, error)
	// Verify checks a username/password pair, for request middleware
	Verify(ctx context.Context, username, password string) bool
}

// Repository defines the storage operations for accounts
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type authService struct {
	repo   Repository
	logger zerolog.Logger
	cost   int
	now    func() time.Time
}

// NewService creates the account service backed by the given repository.
func NewService(repo Repository, logger zerolog.Logger) Service {
	return &authService{
		repo:   repo,
		logger: logger.With().Str("component", "auth").Logger(),
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

func (s *authService) SignUp(ctx context.Context, req *types.SignUpRequest) (*types.UserInfo, error) {
	const op = "auth.SignUp"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, errors.NewError("INTERNAL", "failed to hash password", op, err)
	}

	u := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", u.Username).Msg("account created")
	return &types.UserInfo{Username: u.Username}, nil
}

func (s *authService) SignIn(ctx context.Context, req *types.SignInRequest) (*types.UserInfo, error) {
	const op = "auth.SignIn"

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn().Str("username", req.Username).Msg("sign-in rejected")
		return nil, errors.NewError("UNAUTHORIZED", "invalid credentials", op, errors.ErrUnauthorized)
	}

	return &types.UserInfo{Username: u.Username}, nil
}

func (s *authService) Verify(ctx context.Context, username, password string) bool {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
