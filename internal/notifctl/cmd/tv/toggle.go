package tv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newToggleCommand creates a command for flipping a TV's active state
func newToggleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle NAME",
		Short: "Toggle a TV's active state",
		Long: `Flip a TV between active and inactive. Inactive TVs keep their
schedules and assignments but displays polling for them show nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			tv, err := client.GetTVByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error looking up tv: %w", err)
			}

			updated, err := client.ToggleTVStatus(cmd.Context(), tv.ID)
			if err != nil {
				return fmt.Errorf("error toggling tv: %w", err)
			}

			state := "inactive"
			if updated.Active {
				state = "active"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "TV %q is now %s\n", updated.Name, state)
			return nil
		},
	}
	return cmd
}
