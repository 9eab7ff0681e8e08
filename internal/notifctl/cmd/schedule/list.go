package schedule

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newListCommand creates a command for listing schedules
func newListCommand() *cobra.Command {
	var (
		tvName string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content schedules",
		Long: `List all content schedules, or with --tv the eligible schedules for
one TV in the order a display would play them.`,
		Example: `  # List everything
  notifctl schedule list

  # What is TV1 playing right now?
  notifctl schedule list --tv TV1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			var schedules []types.ContentSchedule
			if tvName != "" {
				schedules, err = client.SchedulesForTV(cmd.Context(), tvName)
			} else {
				schedules, err = client.ListSchedules(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("error listing schedules: %w", err)
			}

			switch output {
			case "json":
				return util.PrintJSON(cmd.OutOrStdout(), schedules)
			default:
				tw := util.NewTabWriter(cmd.OutOrStdout())
				defer tw.Flush()

				fmt.Fprintf(tw, "TITLE\tTYPE\tMODE\tTARGETS\tACTIVE\tCREATED\tID\n")
				for i := range schedules {
					s := &schedules[i]
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						util.Truncate(s.Title, 30),
						s.ContentType,
						scheduleMode(s),
						strings.Join(s.TargetTVs, ","),
						util.FormatBool(s.Active),
						util.FormatAge(s.CreatedAt),
						s.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tvName, "tv", "", "Show eligible schedules for one TV, in play order")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")

	return cmd
}

func scheduleMode(s *types.ContentSchedule) string {
	switch {
	case s.DailySchedule:
		return fmt.Sprintf("daily %s-%s", s.DailyStartTime, s.DailyEndTime)
	case len(s.TimeSchedules) > 0:
		return fmt.Sprintf("windowed (%d)", len(s.TimeSchedules))
	default:
		return "immediate"
	}
}
