package tv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

type tvService struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates the TV registry service backed by the given repository.
func NewService(repo Repository, logger zerolog.Logger) Service {
	return &tvService{
		repo:   repo,
		logger: logger.With().Str("component", "tv").Logger(),
		now:    time.Now,
	}
}

func (s *tvService) Register(ctx context.Context, req *types.TVRequest) (*types.TV, error) {
	const op = "tv.Register"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	now := s.now()
	tv := &types.TV{
		ID:          uuid.New(),
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Location:    req.Location,
		Active:      req.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, tv); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", tv.Name).Str("location", tv.Location).Msg("tv registered")
	return tv, nil
}

func (s *tvService) Update(ctx context.Context, id uuid.UUID, req *types.TVRequest) (*types.TV, error) {
	const op = "tv.Update"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	tv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tv.Name = req.Name
	tv.DisplayName = req.DisplayName
	tv.Description = req.Description
	tv.Location = req.Location
	tv.Active = req.Active
	tv.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, tv); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", tv.Name).Msg("tv updated")
	return tv, nil
}

func (s *tvService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id.String()).Msg("tv deleted")
	return nil
}

func (s *tvService) Get(ctx context.Context, id uuid.UUID) (*types.TV, error) {
	return s.repo.Get(ctx, id)
}

func (s *tvService) GetByName(ctx context.Context, name string) (*types.TV, error) {
	const op = "tv.GetByName"

	if name == "" {
		return nil, errors.NewError("INVALID_INPUT", "tv name is required", op, errors.ErrInvalidInput)
	}
	return s.repo.GetByName(ctx, name)
}

func (s *tvService) List(ctx context.Context) ([]types.TV, error) {
	return s.repo.List(ctx, false)
}

func (s *tvService) ListActive(ctx context.Context) ([]types.TV, error) {
	return s.repo.List(ctx, true)
}

func (s *tvService) ToggleStatus(ctx context.Context, id uuid.UUID) (*types.TV, error) {
	tv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tv.Active = !tv.Active
	tv.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, tv); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", tv.Name).Bool("active", tv.Active).Msg("tv status toggled")
	return tv, nil
}

func (s *tvService) CheckName(ctx context.Context, name string) (*types.TVStatus, error) {
	tv, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &types.TVStatus{Name: tv.Name, Active: tv.Active}, nil
}
