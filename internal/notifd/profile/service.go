package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

type profileService struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates the profile service backed by the given repository.
func NewService(repo Repository, logger zerolog.Logger) Service {
	return &profileService{
		repo:   repo,
		logger: logger.With().Str("component", "profile").Logger(),
		now:    time.Now,
	}
}

func fromRequest(req *types.ProfileRequest) *types.Profile {
	return &types.Profile{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		Slides:         req.Slides,
		Active:         req.Active,
		TimeSchedules:  req.TimeSchedules,
		DailySchedule:  req.DailySchedule,
		DailyStartTime: req.DailyStartTime,
		DailyEndTime:   req.DailyEndTime,
	}
}

func (s *profileService) Create(ctx context.Context, req *types.ProfileRequest) (*types.Profile, error) {
	const op = "profile.Create"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	p := fromRequest(req)
	p.CreatedAt = s.now()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("id", p.ID.String()).
		Str("title", p.Title).
		Int("slides", len(p.Slides)).
		Msg("profile created")

	return p, nil
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, req *types.ProfileRequest) (*types.Profile, error) {
	const op = "profile.Update"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p := fromRequest(req)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", p.ID.String()).Str("title", p.Title).Msg("profile updated")
	return p, nil
}

func (s *profileService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id.String()).Msg("profile deleted")
	return nil
}

func (s *profileService) Get(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	return s.repo.Get(ctx, id)
}

func (s *profileService) List(ctx context.Context) ([]types.Profile, error) {
	return s.repo.List(ctx)
}

func (s *profileService) Assign(ctx context.Context, req *types.AssignProfileRequest) (*types.ProfileAssignment, error) {
	const op = "profile.Assign"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	// The profile must exist before it can be assigned.
	p, err := s.repo.Get(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	a := &types.ProfileAssignment{
		ID:        uuid.New(),
		TVName:    req.TVName,
		ProfileID: req.ProfileID,
		Active:    true,
		CreatedAt: s.now(),
	}

	if err := s.repo.Assign(ctx, a); err != nil {
		return nil, err
	}
	a.Profile = p

	s.logger.Info().
		Str("tv", a.TVName).
		Str("profile", p.Title).
		Msg("profile assigned")

	return a, nil
}

func (s *profileService) Unassign(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Unassign(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("assignment", id.String()).Msg("profile unassigned")
	return nil
}

func (s *profileService) AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error) {
	const op = "profile.AssignmentForTV"

	if tvName == "" {
		return nil, errors.NewError("INVALID_INPUT", "tv name is required", op, errors.ErrInvalidInput)
	}
	return s.repo.AssignmentForTV(ctx, tvName)
}

func (s *profileService) ListAssignments(ctx context.Context) ([]types.ProfileAssignment, error) {
	return s.repo.ListAssignments(ctx)
}
