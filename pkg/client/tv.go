package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// RegisterTV creates a new TV registry entry.
func (c *Client) RegisterTV(ctx context.Context, req *types.TVRequest) (*types.TV, error) {
	var tv types.TV
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "tvs"), req, &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// ListTVs returns every registered TV.
func (c *Client) ListTVs(ctx context.Context) ([]types.TV, error) {
	var tvs []types.TV
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "tvs"), nil, &tvs); err != nil {
		return nil, err
	}
	return tvs, nil
}

// ListActiveTVs returns only TVs marked active.
func (c *Client) ListActiveTVs(ctx context.Context) ([]types.TV, error) {
	var tvs []types.TV
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "tvs", "active"), nil, &tvs); err != nil {
		return nil, err
	}
	return tvs, nil
}

// GetTVByName returns the TV with the given registry name.
func (c *Client) GetTVByName(ctx context.Context, name string) (*types.TV, error) {
	var tv types.TV
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "tvs", "name", trimName(name)), nil, &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// UpdateTV replaces a TV's metadata.
func (c *Client) UpdateTV(ctx context.Context, id uuid.UUID, req *types.TVRequest) (*types.TV, error) {
	var tv types.TV
	if err := c.do(ctx, http.MethodPut, c.endpoint("api", "tvs", id.String()), req, &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// DeleteTV removes a TV from the registry.
func (c *Client) DeleteTV(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("api", "tvs", id.String()), nil, nil)
}

// ToggleTVStatus flips a TV's active flag.
func (c *Client) ToggleTVStatus(ctx context.Context, id uuid.UUID) (*types.TV, error) {
	var tv types.TV
	if err := c.do(ctx, http.MethodPut, c.endpoint("api", "tvs", id.String(), "toggle-status"), nil, &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// CheckTV probes whether a TV name is registered and active. Displays
// call this before entering their content loop.
func (c *Client) CheckTV(ctx context.Context, name string) (*types.TVStatus, error) {
	var status types.TVStatus
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "tvs", "check", trimName(name)), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
