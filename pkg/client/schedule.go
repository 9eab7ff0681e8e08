package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// CreateSchedule stores a new content schedule.
func (c *Client) CreateSchedule(ctx context.Context, req *types.ContentScheduleRequest) (*types.ContentSchedule, error) {
	var sched types.ContentSchedule
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "content", "from-request"), req, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// ListSchedules returns every content schedule.
func (c *Client) ListSchedules(ctx context.Context) ([]types.ContentSchedule, error) {
	var schedules []types.ContentSchedule
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "content", "all"), nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetSchedule returns one schedule by id.
func (c *Client) GetSchedule(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	var sched types.ContentSchedule
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "content", id.String()), nil, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// UpdateSchedule replaces a schedule.
func (c *Client) UpdateSchedule(ctx context.Context, id uuid.UUID, req *types.ContentScheduleRequest) (*types.ContentSchedule, error) {
	var sched types.ContentSchedule
	if err := c.do(ctx, http.MethodPut, c.endpoint("api", "content", id.String()), req, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// DeleteSchedule removes a schedule.
func (c *Client) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("api", "content", id.String()), nil, nil)
}

// ToggleSchedule flips a schedule's active flag.
func (c *Client) ToggleSchedule(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	var sched types.ContentSchedule
	if err := c.do(ctx, http.MethodPatch, c.endpoint("api", "content", id.String(), "toggle"), nil, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// SchedulesForTV returns the eligible schedules for a display, already
// filtered and ordered by the server. The first entry is the one to play.
func (c *Client) SchedulesForTV(ctx context.Context, tvName string) ([]types.ContentSchedule, error) {
	var schedules []types.ContentSchedule
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "content", "tv", trimName(tvName)), nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
