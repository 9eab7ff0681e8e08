package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newToggleCommand creates a command for flipping a schedule active flag
func newToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle ID",
		Short:   "Toggle a schedule between active and inactive",
		Example: "  notifctl schedule toggle 6fa459ea-ee8a-3ca4-894e-db77e160355e",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid schedule id %q: %w", args[0], err)
			}

			client, err := util.GetClient()
			if err != nil {
				return err
			}

			sched, err := client.ToggleSchedule(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error toggling schedule: %w", err)
			}

			state := "inactive"
			if sched.Active {
				state = "active"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule %q is now %s\n", sched.Title, state)
			return nil
		},
	}
}
