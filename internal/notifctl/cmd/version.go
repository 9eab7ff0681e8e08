package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// These variables are set during build
var (
	version = "dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notifctl version %s (%s)\n", version, commit)
		},
	}
}
