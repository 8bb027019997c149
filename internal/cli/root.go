// Package cli implements the overlearn CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "overlearn",
	Short: "Talk to the OverLearn desktop daemon",
	Long: `overlearn controls the OverLearn desktop daemon: start and stop it,
send desktop notifications and run a Pomodoro timer in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("Error:")+" "+err.Error())
	}
	return err
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(pomodoroCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
