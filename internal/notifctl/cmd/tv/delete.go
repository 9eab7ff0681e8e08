package tv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newDeleteCommand creates a command for removing a TV
func newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a TV from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			tv, err := client.GetTVByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error looking up tv: %w", err)
			}
			if err := client.DeleteTV(cmd.Context(), tv.ID); err != nil {
				return fmt.Errorf("error deleting tv: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "TV %q deleted\n", tv.Name)
			return nil
		},
	}
	return cmd
}
