// Package cmd implements the overlearnd command line.
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/overlearn/overlearn/internal/config"
)

var (
	foreground bool
	port       int
)

var rootCmd = &cobra.Command{
	Use:           "overlearnd",
	Short:         "OverLearn desktop daemon",
	Long:          "overlearnd owns the tray icon and delivers desktop notifications for the OverLearn front end.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDaemon,
}

func init() {
	rootCmd.Flags().BoolVar(&foreground, "foreground", false, "Run in foreground without a system tray")
	rootCmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides server.port, 0 for dynamic allocation)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("Error: %v", err)
	}
	return err
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	log.SetPrefix("[overlearnd] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := config.EnsureGlobalDir(); err != nil {
		return err
	}

	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return err
	}
	if running {
		log.Fatalf("Daemon already running on port %d (PID %d)", info.Port, info.PID)
	}

	settings, err := config.EnsureSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		settings.Server.Port = port
	}

	d := newDaemon(settings)

	if foreground {
		log.Println("Running in foreground mode (no system tray)")
		return d.runForeground()
	}
	log.Println("Running in background mode (with system tray)")
	d.runWithTray()
	return nil
}
