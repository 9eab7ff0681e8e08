package client

import (
	"context"
	"net/http"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// SignUp creates an admin account.
func (c *Client) SignUp(ctx context.Context, req *types.SignUpRequest) (*types.UserInfo, error) {
	var info types.UserInfo
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "auth", "signup"), req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SignIn verifies admin credentials.
func (c *Client) SignIn(ctx context.Context, req *types.SignInRequest) (*types.UserInfo, error) {
	var info types.UserInfo
	if err := c.do(ctx, http.MethodPost, c.endpoint("api", "auth", "signin"), req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// DeviceData returns the latest environmental sample.
func (c *Client) DeviceData(ctx context.Context) (types.DeviceData, error) {
	var data types.DeviceData
	if err := c.do(ctx, http.MethodGet, c.endpoint("api", "device-data"), nil, &data); err != nil {
		return types.DeviceData{}, err
	}
	return data, nil
}
