package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// CreateProfile stores a new profile.
func (c *Client) CreateProfile(ctx context.Context, req *types.ProfileRequest) (*types.Profile, error) {
	var p types.Profile
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "profiles"), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles returns every profile.
func (c *Client) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	var profiles []types.Profile
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "profiles"), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetProfile returns one profile by id.
func (c *Client) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "profiles", id.String()), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile replaces a profile.
func (c *Client) UpdateProfile(ctx context.Context, id uuid.UUID, req *types.ProfileRequest) (*types.Profile, error) {
	var p types.Profile
	if err := c.do(ctx, http.MethodPut, c.endpoint("api", "profiles", id.String()), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProfile removes a profile.
func (c *Client) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("api", "profiles", id.String()), nil, nil)
}

// AssignProfile binds a profile to a TV, replacing any previous
// assignment for that TV.
func (c *Client) AssignProfile(ctx context.Context, req *types.AssignProfileRequest) (*types.ProfileAssignment, error) {
	var a types.ProfileAssignment
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "profiles", "assign"), req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UnassignProfile removes an assignment by id.
func (c *Client) UnassignProfile(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("api", "profiles", "assignments", id.String()), nil, nil)
}

// ListAssignments returns every active assignment.
func (c *Client) ListAssignments(ctx context.Context) ([]types.ProfileAssignment, error) {
	var assignments []types.ProfileAssignment
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "profiles", "assignments"), nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// AssignmentForTV returns the active assignment for a TV, profile
// embedded. A TV without one gets a 404 (see IsNotFound).
func (c *Client) AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error) {
	var a types.ProfileAssignment
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "profiles", "tv", trimName(tvName)), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
