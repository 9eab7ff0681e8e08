package tv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newListCommand creates a command for listing TVs
func newListCommand() *cobra.Command {
	var (
		activeOnly bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered TVs",
		Example: `  # List all TVs
  notifctl tv list

  # List only active TVs as JSON
  notifctl tv list --active -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			list := client.ListTVs
			if activeOnly {
				list = client.ListActiveTVs
			}
			tvs, err := list(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing tvs: %w", err)
			}

			switch output {
			case "json":
				return util.PrintJSON(cmd.OutOrStdout(), tvs)
			default:
				tw := util.NewTabWriter(cmd.OutOrStdout())
				defer tw.Flush()

				fmt.Fprintf(tw, "NAME\tDISPLAY NAME\tLOCATION\tACTIVE\tID\n")
				for _, t := range tvs {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
						t.Name,
						t.DisplayName,
						t.Location,
						util.FormatBool(t.Active),
						t.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only list active TVs")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")

	return cmd
}
