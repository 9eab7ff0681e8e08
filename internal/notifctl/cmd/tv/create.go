package tv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newCreateCommand creates a command for registering a TV
func newCreateCommand() *cobra.Command {
	var (
		displayName string
		description string
		location    string
		inactive    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Register a TV",
		Long: `Register a new TV under the given registry name. The name is what
the display daemon polls with and what schedules target, like "TV1" or
"lobby-north".`,
		Example: `  # Register a TV for the main lobby
  notifctl tv create TV1 --display-name="Main Lobby" --location=lobby`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			tv, err := client.RegisterTV(cmd.Context(), &types.TVRequest{
				Name:        args[0],
				DisplayName: displayName,
				Description: description,
				Location:    location,
				Active:      !inactive,
			})
			if err != nil {
				return fmt.Errorf("error registering tv: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "TV %q registered (id %s)\n", tv.Name, tv.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&location, "location", "", "Physical location")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Register the TV as inactive")

	_ = cmd.MarkFlagRequired("display-name")

	return cmd
}
