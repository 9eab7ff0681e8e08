package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error) {
	args := m.Called(ctx, tvName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileAssignment), args.Error(1)
}

func (m *mockAPI) SchedulesForTV(ctx context.Context, tvName string) ([]types.ContentSchedule, error) {
	args := m.Called(ctx, tvName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ContentSchedule), args.Error(1)
}

type mockCache struct {
	entry *content.LegacyContent
}

func (m *mockCache) Load(tvName string) (*content.LegacyContent, bool) {
	return m.entry, m.entry != nil
}

func activeAssignment() *types.ProfileAssignment {
	return &types.ProfileAssignment{
		ID:        uuid.New(),
		TVName:    "TV1",
		ProfileID: uuid.New(),
		Active:    true,
		Profile: &types.Profile{
			Title:  "Lobby",
			Active: true,
			Slides: []types.Slide{{ContentType: types.ContentTypeText, Content: "hi"}},
		},
	}
}

func TestResolve_ProfileWins(t *testing.T) {
	api := &mockAPI{}
	api.On("AssignmentForTV", mock.Anything, "TV1").Return(activeAssignment(), nil)

	r := New(api, nil, zerolog.Nop())
	got := r.Resolve(context.Background(), "TV1")

	require.NotNil(t, got)
	assert.Equal(t, content.KindProfile, got.Kind)
	assert.Equal(t, "Lobby", got.Profile.Title)
	api.AssertNotCalled(t, "SchedulesForTV")
}

func TestResolve_InactiveProfileFallsThrough(t *testing.T) {
	a := activeAssignment()
	a.Profile.Active = false

	api := &mockAPI{}
	api.On("AssignmentForTV", mock.Anything, "TV1").Return(a, nil)
	api.On("SchedulesForTV", mock.Anything, "TV1").Return([]types.ContentSchedule{
		{Title: "meeting"},
	}, nil)

	r := New(api, nil, zerolog.Nop())
	got := r.Resolve(context.Background(), "TV1")

	require.NotNil(t, got)
	assert.Equal(t, content.KindSchedule, got.Kind)
	assert.Equal(t, "meeting", got.Schedule.Title)
}

func TestResolve_FirstScheduleChosen(t *testing.T) {
	api := &mockAPI{}
	api.On("AssignmentForTV", mock.Anything, "TV1").Return(nil, assert.AnError)
	api.On("SchedulesForTV", mock.Anything, "TV1").Return([]types.ContentSchedule{
		{Title: "windowed"},
		{Title: "immediate"},
	}, nil)

	r := New(api, nil, zerolog.Nop())
	got := r.Resolve(context.Background(), "TV1")

	require.NotNil(t, got)
	assert.Equal(t, "windowed", got.Schedule.Title)
}

func TestResolve_NoContent(t *testing.T) {
	api := &mockAPI{}
	api.On("AssignmentForTV", mock.Anything, "TV1").Return(nil, assert.AnError)
	api.On("SchedulesForTV", mock.Anything, "TV1").Return([]types.ContentSchedule{}, nil)

	r := New(api, &mockCache{entry: &content.LegacyContent{Type: "embed"}}, zerolog.Nop())
	got := r.Resolve(context.Background(), "TV1")

	// An empty schedule list is an answer, not a failure; the cache is
	// only for when the server cannot be reached.
	assert.Nil(t, got)
}

func TestResolve_CacheFallback(t *testing.T) {
	api := &mockAPI{}
	api.On("AssignmentForTV", mock.Anything, "TV1").Return(nil, assert.AnError)
	api.On("SchedulesForTV", mock.Anything, "TV1").Return(nil, assert.AnError)

	cache := &mockCache{entry: &content.LegacyContent{Type: "embed", Content: "https://example.com"}}
	r := New(api, cache, zerolog.Nop())
	got := r.Resolve(context.Background(), "TV1")

	require.NotNil(t, got)
	assert.Equal(t, content.KindLegacyEmbed, got.Kind)
}

func TestResolve_EverythingFails(t *testing.T) {
	api := &mockAPI{}
	api.On("AssignmentForTV", mock.Anything, "TV1").Return(nil, assert.AnError)
	api.On("SchedulesForTV", mock.Anything, "TV1").Return(nil, assert.AnError)

	r := New(api, &mockCache{}, zerolog.Nop())
	assert.Nil(t, r.Resolve(context.Background(), "TV1"))
}
