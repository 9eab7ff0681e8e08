package tv

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, tv *types.TV) error {
	args := m.Called(ctx, tv)
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, tv *types.TV) error {
	args := m.Called(ctx, tv)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) Get(ctx context.Context, id uuid.UUID) (*types.TV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TV), args.Error(1)
}

func (m *mockRepository) GetByName(ctx context.Context, name string) (*types.TV, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TV), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, activeOnly bool) ([]types.TV, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TV), args.Error(1)
}

func newTestService(repo Repository, now time.Time) *tvService {
	return &tvService{
		repo:   repo,
		logger: zerolog.Nop(),
		now:    func() time.Time { return now },
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := &mockRepository{}
	repo.On("Create", ctx, mock.MatchedBy(func(tv *types.TV) bool {
		return tv.Name == "TV1" && tv.ID != uuid.Nil && tv.CreatedAt.Equal(now)
	})).Return(nil)

	svc := newTestService(repo, now)
	tv, err := svc.Register(ctx, &types.TVRequest{
		Name:        "TV1",
		DisplayName: "Lobby",
		Location:    "Building A",
		Active:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "TV1", tv.Name)
	assert.True(t, tv.Active)
	repo.AssertExpectations(t)
}

func TestRegister_MissingName(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo, time.Now())

	_, err := svc.Register(context.Background(), &types.TVRequest{DisplayName: "Lobby"})
	assert.True(t, errors.IsInvalidInput(err))
	repo.AssertNotCalled(t, "Create")
}

func TestRegister_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{}
	repo.On("Create", ctx, mock.Anything).
		Return(errors.NewError("CONFLICT", "tv already exists", "repository.Create", errors.ErrConflict))

	svc := newTestService(repo, time.Now())
	_, err := svc.Register(ctx, &types.TVRequest{Name: "TV1", DisplayName: "Lobby"})
	assert.True(t, errors.IsConflict(err))
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	created := now.Add(-48 * time.Hour)

	repo := &mockRepository{}
	repo.On("Get", ctx, id).Return(&types.TV{
		ID:        id,
		Name:      "TV1",
		CreatedAt: created,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(tv *types.TV) bool {
		return tv.ID == id && tv.Location == "Building B" && tv.UpdatedAt.Equal(now)
	})).Return(nil)

	svc := newTestService(repo, now)
	tv, err := svc.Update(ctx, id, &types.TVRequest{
		Name:        "TV1",
		DisplayName: "Lobby",
		Location:    "Building B",
		Active:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, created, tv.CreatedAt)
	repo.AssertExpectations(t)
}

func TestToggleStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := &mockRepository{}
	repo.On("Get", ctx, id).Return(&types.TV{ID: id, Name: "TV1", Active: false}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(tv *types.TV) bool {
		return tv.Active
	})).Return(nil)

	svc := newTestService(repo, time.Now())
	tv, err := svc.ToggleStatus(ctx, id)
	require.NoError(t, err)
	assert.True(t, tv.Active)
}

func TestListActive(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("List", ctx, true).Return([]types.TV{{Name: "TV1", Active: true}}, nil)

	svc := newTestService(repo, time.Now())
	tvs, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, tvs, 1)
	assert.Equal(t, "TV1", tvs[0].Name)
	repo.AssertExpectations(t)
}

func TestCheckName(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("GetByName", ctx, "TV1").Return(&types.TV{Name: "TV1", Active: true}, nil)

	svc := newTestService(repo, time.Now())
	status, err := svc.CheckName(ctx, "TV1")
	require.NoError(t, err)
	assert.Equal(t, &types.TVStatus{Name: "TV1", Active: true}, status)
}

func TestCheckName_Unknown(t *testing.T) {
	ctx := context.Background()

	repo := &mockRepository{}
	repo.On("GetByName", ctx, "ghost").
		Return(nil, errors.NewError("NOT_FOUND", "tv not found", "repository.GetByName", errors.ErrNotFound))

	svc := newTestService(repo, time.Now())
	_, err := svc.CheckName(ctx, "ghost")
	assert.True(t, errors.IsNotFound(err))
}
