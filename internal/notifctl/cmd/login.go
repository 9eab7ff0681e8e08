package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/config"
	"github.com/HyperDarkmoon/notifmanager-sub000/pkg/client"
)

// newLoginCmd creates the login command, which verifies credentials and
// stores them as the active context.
func newLoginCmd() *cobra.Command {
	var (
		server   string
		username string
		password string
		context  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against a notifmanager server",
		Long: `Verify admin credentials against a server and store them as the
active context for subsequent commands.`,
		Example: `  # Log in and save the context
  notifctl login --server=https://signage.example.com --username=admin --password=secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.NewClient(server)
			if err != nil {
				return err
			}

			info, err := c.SignIn(cmd.Context(), &types.SignInRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.SetContext(&config.Context{
				Name:     context,
				Server:   server,
				Username: username,
				Password: password,
			})
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %q, context %q saved\n", info.Username, context)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8090", "API server URL")
	cmd.Flags().StringVar(&username, "username", "", "Admin username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (required)")
	cmd.Flags().StringVar(&context, "context", "default", "Context name to store")

	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
