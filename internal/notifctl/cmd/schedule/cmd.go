// Package schedule implements the content schedule management commands
package schedule

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the schedule management command and its subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage content schedules",
		Long: `The schedule command provides subcommands for managing content
schedules: what each TV shows and when.

A schedule is immediate (no time constraints), time-windowed (one or more
absolute start/end pairs) or daily-recurring (a wall-clock interval that
may wrap midnight). Time-windowed content beats daily content, and any
scheduled content beats immediate content.`,
	}

	cmd.AddCommand(
		newListCommand(),
		newCreateCommand(),
		newToggleCommand(),
		newDeleteCommand(),
	)

	return cmd
}
