// Package profile implements the profile management commands
package profile

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the profile command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage slide profiles",
		Long: `Manage slide profiles and their TV assignments.

A profile bundles up to three slides that rotate on a display. Assigning
a profile to a TV replaces any previous assignment for that TV.`,
	}

	cmd.AddCommand(
		newListCommand(),
		newCreateCommand(),
		newDeleteCommand(),
		newAssignCommand(),
		newUnassignCommand(),
	)

	return cmd
}
