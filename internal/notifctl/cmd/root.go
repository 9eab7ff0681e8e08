// Package cmd implements the notifctl CLI commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	profilecmd "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/cmd/profile"
	schedulecmd "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/cmd/schedule"
	tvcmd "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/cmd/tv"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notifctl",
	Short: "Notification manager control tool",
	Long: `notifctl is a command line tool for managing the notifmanager
deployment: TV registrations, content schedules, profiles and profile
assignments.

Server address and credentials come from the active context (see
'notifctl login') or the NOTIF_API_URL, NOTIF_API_USERNAME and
NOTIF_API_PASSWORD environment variables.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		tvcmd.NewCommand(),
		schedulecmd.NewCommand(),
		profilecmd.NewCommand(),
		newLoginCmd(),
		newVersionCmd(),
	)
}
