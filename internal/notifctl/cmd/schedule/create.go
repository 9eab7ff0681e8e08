package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/util"
)

// newCreateCommand creates a command for creating a content schedule
func newCreateCommand() *cobra.Command {
	var (
		description string
		contentType string
		content     string
		images      []string
		videos      []string
		targets     []string
		windows     []string
		dailyStart  string
		dailyEnd    string
		inactive    bool
	)

	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a content schedule",
		Long: `Create a content schedule targeting one or more TVs.

With no --window and no --daily-start the schedule is immediate: it plays
whenever nothing scheduled is active. Time windows are absolute RFC 3339
pairs; daily times are HH:MM and may wrap midnight.`,
		Example: `  # Immediate text announcement on two TVs
  notifctl schedule create "Welcome" --type TEXT --content "Welcome!" --target TV1 --target TV2

  # A four-image grid during one meeting
  notifctl schedule create "Board deck" --type IMAGE_QUAD \
    --image /files/a.png --image /files/b.png --image /files/c.png --image /files/d.png \
    --target TV3 --window "2026-09-01T09:00:00Z,2026-09-01T11:00:00Z"

  # Night menu, every day, across midnight
  notifctl schedule create "Night menu" --type EMBED --content "https://menu.example.com" \
    --target TV2 --daily-start 22:00 --daily-end 06:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := util.GetClient()
			if err != nil {
				return err
			}

			timeWindows, err := parseWindows(windows)
			if err != nil {
				return err
			}

			req := &types.ContentScheduleRequest{
				Title:          args[0],
				Description:    description,
				ContentType:    types.ContentType(strings.ToUpper(contentType)),
				Content:        content,
				ImageURLs:      images,
				VideoURLs:      videos,
				TargetTVs:      targets,
				Active:         !inactive,
				TimeSchedules:  timeWindows,
				DailySchedule:  dailyStart != "" || dailyEnd != "",
				DailyStartTime: dailyStart,
				DailyEndTime:   dailyEnd,
			}

			sched, err := client.CreateSchedule(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("error creating schedule: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schedule %q created (id %s)\n", sched.Title, sched.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringVar(&contentType, "type", "", "Content type: TEXT, IMAGE_SINGLE, IMAGE_DUAL, IMAGE_QUAD, VIDEO, EMBED (required)")
	cmd.Flags().StringVar(&content, "content", "", "Text or embed URL for TEXT/EMBED types")
	cmd.Flags().StringArrayVar(&images, "image", nil, "Image URL (repeatable)")
	cmd.Flags().StringArrayVar(&videos, "video", nil, "Video URL (repeatable)")
	cmd.Flags().StringArrayVar(&targets, "target", nil, "Target TV name (repeatable, required)")
	cmd.Flags().StringArrayVar(&windows, "window", nil, `Time window as "start,end" in RFC 3339 (repeatable)`)
	cmd.Flags().StringVar(&dailyStart, "daily-start", "", "Daily start time HH:MM")
	cmd.Flags().StringVar(&dailyEnd, "daily-end", "", "Daily end time HH:MM")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Create the schedule as inactive")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// parseWindows converts "start,end" RFC 3339 pairs into time windows.
func parseWindows(specs []string) ([]types.TimeWindow, error) {
	var windows []types.TimeWindow
	for _, spec := range specs {
		parts := strings.SplitN(spec, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid window %q - use \"start,end\"", spec)
		}
		start, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid window start %q: %w", parts[0], err)
		}
		end, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid window end %q: %w", parts[1], err)
		}
		windows = append(windows, types.TimeWindow{StartTime: start, EndTime: end})
	}
	return windows, nil
}
