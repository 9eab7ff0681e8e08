package tv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newUpdateCommand creates a command for updating a TV's metadata
func newUpdateCommand() *cobra.Command {
	var (
		displayName string
		description string
		location    string
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a TV's metadata",
		Long: `Update a registered TV. Unset flags keep their current value; the
registry name itself cannot change.`,
		Example: `  # Move a TV to a new location
  notifctl tv update TV1 --location=cafeteria`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			current, err := client.GetTVByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error looking up tv: %w", err)
			}

			req := &types.TVRequest{
				Name:        current.Name,
				DisplayName: current.DisplayName,
				Description: current.Description,
				Location:    current.Location,
				Active:      current.Active,
			}
			if cmd.Flags().Changed("display-name") {
				req.DisplayName = displayName
			}
			if cmd.Flags().Changed("description") {
				req.Description = description
			}
			if cmd.Flags().Changed("location") {
				req.Location = location
			}
			if cmd.Flags().Changed("active") {
				req.Active = active
			}

			updated, err := client.UpdateTV(cmd.Context(), current.ID, req)
			if err != nil {
				return fmt.Errorf("error updating tv: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "TV %q updated\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable name")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&location, "location", "", "Physical location")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the TV is active")

	return cmd
}
