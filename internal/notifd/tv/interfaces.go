// Package tv implements the display registry. Every schedule target and
// profile assignment refers to a TV by its registry name.
package tv

import (
	"context"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Service defines the TV registry business operations
type Service interface {
	// Register validates and stores a new TV
	Register(ctx context.Context, req *types.TVRequest) (*types.TV, error)
	// Update replaces an existing TV's metadata
	Update(ctx context.Context, id uuid.UUID, req *types.TVRequest) (*types.TV, error)
	// Delete removes a TV from the registry
	Delete(ctx context.Context, id uuid.UUID) error
	// Get returns one TV by id
	Get(ctx context.Context, id uuid.UUID) (*types.TV, error)
	// GetByName returns one TV by registry name
	GetByName(ctx context.Context, name string) (*types.TV, error)
	// List returns all TVs
	List(ctx context.Context) ([]types.TV, error)
	// ListActive returns only TVs marked active
	ListActive(ctx context.Context) ([]types.TV, error)
	// ToggleStatus flips the active flag and returns the updated TV
	ToggleStatus(ctx context.Context, id uuid.UUID) (*types.TV, error)
	// CheckName reports whether a TV name is registered and active.
	// Displays call this before starting their content loop.
	CheckName(ctx context.Context, name string) (*types.TVStatus, error)
}

// Repository defines the storage operations for the TV registry
type Repository interface {
	Create(ctx context.Context, tv *types.TV) error
	Update(ctx context.Context, tv *types.TV) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*types.TV, error)
	GetByName(ctx context.Context, name string) (*types.TV, error)
	List(ctx context.Context, activeOnly bool) ([]types.TV, error)
}
