// Package profile implements profile management and per-TV profile
// assignments, the highest-priority content source for displays.
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Service defines the profile business operations
type Service interface {
	// Create validates and stores a new profile
	Create(ctx context.Context, req *types.ProfileRequest) (*types.Profile, error)
	// Update validates and replaces an existing profile
	Update(ctx context.Context, id uuid.UUID, req *types.ProfileRequest) (*types.Profile, error)
	// Delete removes a profile and any assignments pointing at it
	Delete(ctx context.Context, id uuid.UUID) error
	// Get returns one profile by id
	Get(ctx context.Context, id uuid.UUID) (*types.Profile, error)
	// List returns all profiles
	List(ctx context.Context) ([]types.Profile, error)
	// Assign binds a profile to a TV, replacing any previous assignment
	Assign(ctx context.Context, req *types.AssignProfileRequest) (*types.ProfileAssignment, error)
	// Unassign removes an assignment by id
	Unassign(ctx context.Context, id uuid.UUID) error
	// AssignmentForTV returns the active assignment for a TV, with the
	// profile embedded. Returns ErrNotFound when the TV has none.
	AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error)
	// ListAssignments returns every active assignment
	ListAssignments(ctx context.Context) ([]types.ProfileAssignment, error)
}

// Repository defines the storage operations for profiles and assignments
type Repository interface {
	Create(ctx context.Context, p *types.Profile) error
	Update(ctx context.Context, p *types.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*types.Profile, error)
	List(ctx context.Context) ([]types.Profile, error)

	// Assign deactivates any existing assignment for the TV and stores
	// the new one, atomically
	Assign(ctx context.Context, a *types.ProfileAssignment) error
	Unassign(ctx context.Context, id uuid.UUID) error
	AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error)
	ListAssignments(ctx context.Context) ([]types.ProfileAssignment, error)
}
