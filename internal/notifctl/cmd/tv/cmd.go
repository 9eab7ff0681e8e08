// Package tv implements the TV registry management commands
package tv

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the tv management command and its subcommands
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tv",
		Short: "Manage TV registrations",
		Long: `The tv command provides subcommands for managing the TV registry.

Schedules and profile assignments target TVs by their registry name, so a
TV must be registered before a display daemon starts polling with it.`,
	}

	cmd.AddCommand(
		newListCommand(),
		newCreateCommand(),
		newUpdateCommand(),
		newDeleteCommand(),
		newToggleCommand(),
	)

	return cmd
}
