package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newListCommand creates a command for listing profiles
func newListCommand() *cobra.Command {
	var (
		assignments bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Example: `  # List all profiles
  notifctl profile list

  # Show which TV runs which profile
  notifctl profile list --assignments`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			if assignments {
				list, err := client.ListAssignments(cmd.Context())
				if err != nil {
					return fmt.Errorf("error listing assignments: %w", err)
				}

				if output == "json" {
					return util.PrintJSON(cmd.OutOrStdout(), list)
				}

				tw := util.NewTabWriter(cmd.OutOrStdout())
				defer tw.Flush()

				fmt.Fprintf(tw, "TV\tPROFILE\tACTIVE\tASSIGNED\tID\n")
				for i := range list {
					a := &list[i]
					title := a.ProfileID.String()
					if a.Profile != nil {
						title = a.Profile.Title
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
						a.TVName,
						util.Truncate(title, 30),
						util.FormatBool(a.Active),
						util.FormatAge(a.CreatedAt),
						a.ID)
				}
				return nil
			}

			profiles, err := client.ListProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing profiles: %w", err)
			}

			if output == "json" {
				return util.PrintJSON(cmd.OutOrStdout(), profiles)
			}

			tw := util.NewTabWriter(cmd.OutOrStdout())
			defer tw.Flush()

			fmt.Fprintf(tw, "TITLE\tSLIDES\tACTIVE\tCREATED\tID\n")
			for i := range profiles {
				p := &profiles[i]
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
					util.Truncate(p.Title, 30),
					len(p.Slides),
					util.FormatBool(p.Active),
					util.FormatAge(p.CreatedAt),
					p.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&assignments, "assignments", false, "List TV assignments instead of profiles")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")

	return cmd
}
