package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newUnassignCommand creates a command for removing a TV's profile assignment
func newUnassignCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unassign TV",
		Short:   "Remove the active profile assignment from a TV",
		Example: "  notifctl profile unassign TV1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			assignment, err := client.AssignmentForTV(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error looking up assignment for %s: %w", args[0], err)
			}

			if err := client.UnassignProfile(cmd.Context(), assignment.ID); err != nil {
				return fmt.Errorf("error removing assignment: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Assignment removed from %s\n", args[0])
			return nil
		},
	}
}
