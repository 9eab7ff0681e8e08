// Package schedule implements content schedule management and the
// server-side eligibility and ordering rules displays rely on.
package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Service defines the content schedule business operations
type Service interface {
	// Create validates and stores a new schedule
	Create(ctx context.Context, req *types.ContentScheduleRequest) (*types.ContentSchedule, error)
	// Update validates and replaces an existing schedule
	Update(ctx context.Context, id uuid.UUID, req *types.ContentScheduleRequest) (*types.ContentSchedule, error)
	// Delete removes a schedule
	Delete(ctx context.Context, id uuid.UUID) error
	// Get returns one schedule by id
	Get(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error)
	// List returns all schedules
	List(ctx context.Context) ([]types.ContentSchedule, error)
	// Toggle flips the active flag and returns the updated schedule
	Toggle(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error)
	// ActiveForTV returns the schedules a display should consider right
	// now, pre-filtered and ordered by priority
	ActiveForTV(ctx context.Context, tvName string) ([]types.ContentSchedule, error)
}

// Repository defines the storage operations for schedules
type Repository interface {
	Create(ctx context.Context, s *types.ContentSchedule) error
	Update(ctx context.Context, s *types.ContentSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error)
	List(ctx context.Context) ([]types.ContentSchedule, error)
	// ListByTarget returns all schedules targeting the named TV,
	// regardless of eligibility
	ListByTarget(ctx context.Context, tvName string) ([]types.ContentSchedule, error)
}
