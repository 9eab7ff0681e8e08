package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func newTestService(repo Repository) *authService {
	return &authService{
		repo:   repo,
		logger: zerolog.Nop(),
		cost:   bcrypt.MinCost,
		now:    time.Now,
	}
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
		if u.Username != "admin" || u.PasswordHash == "" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
	})).Return(nil)

	svc := newTestService(repo)
	info, err := svc.SignUp(ctx, &types.SignUpRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
	repo.AssertExpectations(t)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("Create", ctx, mock.Anything).
		Return(errors.NewError("CONFLICT", "username taken", "repository.Create", errors.ErrConflict))

	svc := newTestService(repo)
	_, err := svc.SignUp(ctx, &types.SignUpRequest{Username: "admin", Password: "s3cret"})
	assert.True(t, errors.IsConflict(err))
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("GetByUsername", ctx, "admin").Return(&User{
		Username:     "admin",
		PasswordHash: hashFor(t, "s3cret"),
	}, nil)

	svc := newTestService(repo)
	info, err := svc.SignIn(ctx, &types.SignInRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
}

func TestSignIn_UnknownUser(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("GetByUsername", ctx, "ghost").
		Return(nil, errors.NewError("NOT_FOUND", "user not found", "repository.GetByUsername", errors.ErrNotFound))

	svc := newTestService(repo)
	_, err := svc.SignIn(ctx, &types.SignInRequest{Username: "ghost", Password: "whatever"})
	assert.True(t, errors.IsNotFound(err))
}

func TestSignIn_WrongPassword(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("GetByUsername", ctx, "admin").Return(&User{
		Username:     "admin",
		PasswordHash: hashFor(t, "s3cret"),
	}, nil)

	svc := newTestService(repo)
	_, err := svc.SignIn(ctx, &types.SignInRequest{Username: "admin", Password: "wrong"})
	assert.True(t, errors.IsUnauthorized(err))
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("GetByUsername", ctx, "admin").Return(&User{
		Username:     "admin",
		PasswordHash: hashFor(t, "s3cret"),
	}, nil)
	repo.On("GetByUsername", ctx, "ghost").
		Return(nil, errors.NewError("NOT_FOUND", "user not found", "repository.GetByUsername", errors.ErrNotFound))

	svc := newTestService(repo)
	assert.True(t, svc.Verify(ctx, "admin", "s3cret"))
	assert.False(t, svc.Verify(ctx, "admin", "wrong"))
	assert.False(t, svc.Verify(ctx, "ghost", "anything"))
}
