// The notifctl command provides a command-line interface for managing
// TVs, content schedules, and slide profiles.
package main

import "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifctl/cmd"

func main() {
	cmd.Execute()
}
