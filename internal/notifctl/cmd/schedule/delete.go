package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newDeleteCommand creates a command for deleting a schedule
func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a content schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid schedule id %q: %w", args[0], err)
			}

			client, err := util.GetClient()
			if err != nil {
				return err
			}

			if err := client.DeleteSchedule(cmd.Context(), id); err != nil {
				return fmt.Errorf("error deleting schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schedule %s deleted\n", id)
			return nil
		},
	}
}
