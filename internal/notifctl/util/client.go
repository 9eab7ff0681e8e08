package util

import (
	"fmt"
	"os"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/config"
	"github.com/HyperDarkmoon/notifmanager-sub000/pkg/client"
)

// GetClient creates an API client configured from the environment and the
// active context. Environment variables win over the config file.
func GetClient() (*client.Client, error) {
	server := os.Getenv("NOTIF_API_URL")
	username := os.Getenv("NOTIF_API_USERNAME")
	password := os.Getenv("NOTIF_API_PASSWORD")

	if server == "" || username == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		ctx := cfg.Current()
		if ctx == nil {
			if server == "" {
				return nil, fmt.Errorf("no server configured - set NOTIF_API_URL or run 'notifctl login'")
			}
		} else {
			if server == "" {
				server = ctx.Server
			}
			if username == "" {
				username = ctx.Username
				password = ctx.Password
			}
		}
	}

	opts := []client.Option{}
	if username != "" {
		opts = append(opts, client.WithBasicAuth(username, password))
	}

	c, err := client.NewClient(server, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return c, nil
}
