package profile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newAssignCommand creates a command for assigning a profile to a TV
func newAssignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assign TV PROFILE_ID",
		Short: "Assign a profile to a TV",
		Long: `Assign a profile to a TV. A TV carries at most one active profile,
so assigning replaces whatever was assigned before.`,
		Example: "  notifctl profile assign TV1 6fa459ea-ee8a-3ca4-894e-db77e160355e",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid profile id %q: %w", args[1], err)
			}

			client, err := util.GetClient()
			if err != nil {
				return err
			}

			assignment, err := client.AssignProfile(cmd.Context(), &types.AssignProfileRequest{
				TVName:    args[0],
				ProfileID: profileID,
			})
			if err != nil {
				return fmt.Errorf("error assigning profile: %w", err)
			}

			title := assignment.ProfileID.String()
			if assignment.Profile != nil {
				title = assignment.Profile.Title
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q assigned to %s (assignment %s)\n",
				title, assignment.TVName, assignment.ID)
			return nil
		},
	}
}
