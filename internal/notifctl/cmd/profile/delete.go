package profile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newDeleteCommand creates a command for deleting a profile
func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid profile id %q: %w", args[0], err)
			}

			client, err := util.GetClient()
			if err != nil {
				return err
			}

			if err := client.DeleteProfile(cmd.Context(), id); err != nil {
				return fmt.Errorf("error deleting profile: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %s deleted\n", id)
			return nil
		},
	}
}
