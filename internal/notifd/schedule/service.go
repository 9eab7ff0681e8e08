package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

type scheduleService struct {
	repo   Repository
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates the schedule service backed by the given repository.
func NewService(repo Repository, logger zerolog.Logger) Service {
	return &scheduleService{
		repo:   repo,
		logger: logger.With().Str("component", "schedule").Logger(),
		now:    time.Now,
	}
}

func fromRequest(req *types.ContentScheduleRequest) *types.ContentSchedule {
	s := &types.ContentSchedule{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		ContentType:    req.ContentType,
		Content:        req.Content,
		ImageURLs:      req.ImageURLs,
		VideoURLs:      req.VideoURLs,
		TargetTVs:      req.TargetTVs,
		Active:         req.Active,
		TimeSchedules:  req.TimeSchedules,
		DailySchedule:  req.DailySchedule,
		DailyStartTime: req.DailyStartTime,
		DailyEndTime:   req.DailyEndTime,
	}

	// Fold a legacy single start/end pair into the window list.
	if len(s.TimeSchedules) == 0 && req.StartTime != nil && req.EndTime != nil {
		s.TimeSchedules = []types.TimeWindow{{StartTime: *req.StartTime, EndTime: *req.EndTime}}
	}
	// Mirror the first window for older consumers.
	if len(s.TimeSchedules) > 0 {
		s.StartTime = &s.TimeSchedules[0].StartTime
		s.EndTime = &s.TimeSchedules[0].EndTime
	}
	return s
}

func (s *scheduleService) Create(ctx context.Context, req *types.ContentScheduleRequest) (*types.ContentSchedule, error) {
	const op = "schedule.Create"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	sched := fromRequest(req)
	sched.CreatedAt = s.now()
	sched.UpdatedAt = sched.CreatedAt

	if err := s.repo.Create(ctx, sched); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("id", sched.ID.String()).
		Str("title", sched.Title).
		Str("contentType", string(sched.ContentType)).
		Strs("targets", sched.TargetTVs).
		Msg("schedule created")

	return sched, nil
}

func (s *scheduleService) Update(ctx context.Context, id uuid.UUID, req *types.ContentScheduleRequest) (*types.ContentSchedule, error) {
	const op = "schedule.Update"

	if err := req.Validate(); err != nil {
		return nil, errors.NewError("INVALID_INPUT", err.Error(), op, errors.ErrInvalidInput)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sched := fromRequest(req)
	sched.ID = existing.ID
	sched.CreatedAt = existing.CreatedAt
	sched.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sched); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("id", sched.ID.String()).
		Str("title", sched.Title).
		Msg("schedule updated")

	return sched, nil
}

func (s *scheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id.String()).Msg("schedule deleted")
	return nil
}

func (s *scheduleService) Get(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	return s.repo.Get(ctx, id)
}

func (s *scheduleService) List(ctx context.Context) ([]types.ContentSchedule, error) {
	return s.repo.List(ctx)
}

func (s *scheduleService) Toggle(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	sched, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sched.Active = !sched.Active
	sched.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sched); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("id", sched.ID.String()).
		Bool("active", sched.Active).
		Msg("schedule toggled")

	return sched, nil
}

func (s *scheduleService) ActiveForTV(ctx context.Context, tvName string) ([]types.ContentSchedule, error) {
	const op = "schedule.ActiveForTV"

	if tvName == "" {
		return nil, errors.NewError("INVALID_INPUT", "tv name is required", op, errors.ErrInvalidInput)
	}

	schedules, err := s.repo.ListByTarget(ctx, tvName)
	if err != nil {
		return nil, err
	}

	return ActiveForTV(schedules, s.now()), nil
}
