package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *types.ContentScheduleRequest) (*types.ContentSchedule, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContentSchedule), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *types.ContentScheduleRequest) (*types.ContentSchedule, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContentSchedule), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockService) Get(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContentSchedule), args.Error(1)
}

func (m *mockService) List(ctx context.Context) ([]types.ContentSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ContentSchedule), args.Error(1)
}

func (m *mockService) Toggle(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContentSchedule), args.Error(1)
}

func (m *mockService) ActiveForTV(ctx context.Context, tvName string) ([]types.ContentSchedule, error) {
	args := m.Called(ctx, tvName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ContentSchedule), args.Error(1)
}

func setupRouter(svc *mockService) chi.Router {
	h := NewHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Route("/api/content", func(r chi.Router) {
		h.RegisterDisplayRoutes(r)
		h.RegisterAdminRoutes(r)
	})
	return r
}

func TestHandleCreate(t *testing.T) {
	svc := &mockService{}
	created := &types.ContentSchedule{
		ID:    uuid.New(),
		Title: "Welcome",
	}
	svc.On("Create", mock.Anything, mock.AnythingOfType("*types.ContentScheduleRequest")).
		Return(created, nil)

	body, err := json.Marshal(types.ContentScheduleRequest{
		Title:       "Welcome",
		ContentType: types.ContentTypeText,
		Content:     "Hello",
		TargetTVs:   []string{"TV1"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/content/from-request", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got types.ContentSchedule
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	svc.AssertExpectations(t)
}

func TestHandleCreate_BadBody(t *testing.T) {
	svc := &mockService{}

	req := httptest.NewRequest(http.MethodPost, "/api/content/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestHandleCreate_ValidationError(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.NewError("INVALID_INPUT", "title is required", "schedule.Create", errors.ErrInvalidInput))

	req := httptest.NewRequest(http.MethodPost, "/api/content/", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr types.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, "INVALID_INPUT", apiErr.Code)
}

func TestHandleGet_NotFound(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("Get", mock.Anything, id).
		Return(nil, errors.NewError("NOT_FOUND", "schedule not found", "schedule.Get", errors.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/content/"+id.String(), nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGet_InvalidID(t *testing.T) {
	svc := &mockService{}

	req := httptest.NewRequest(http.MethodGet, "/api/content/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Get")
}

func TestHandleList_EmptyIsArray(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return([]types.ContentSchedule(nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/content/all", nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleToggle(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("Toggle", mock.Anything, id).
		Return(&types.ContentSchedule{ID: id, Active: false}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/content/"+id.String()+"/toggle", nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got types.ContentSchedule
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.False(t, got.Active)
}

func TestHandleDelete(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/content/"+id.String(), nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleActiveForTV(t *testing.T) {
	svc := &mockService{}
	now := time.Now()
	svc.On("ActiveForTV", mock.Anything, "TV1").Return([]types.ContentSchedule{
		{ID: uuid.New(), Title: "meeting", CreatedAt: now},
		{ID: uuid.New(), Title: "announcement", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/content/tv/TV1", nil)
	rec := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []types.ContentSchedule
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "meeting", got[0].Title)
}
