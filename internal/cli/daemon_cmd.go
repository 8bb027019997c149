package cli

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/overlearn/overlearn/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the OverLearn daemon",
	Long:  `Manage the OverLearn daemon process.`,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE:  runDaemonStatus,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon",
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the daemon",
	RunE:  runDaemonStop,
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("Daemon is already running (PID %d, port %d).\n", info.PID, info.Port)
		return nil
	}

	if info != nil {
		_ = config.RemoveDaemonInfo()
	}

	fmt.Print("Starting daemon...")
	if startErr := startDaemon(); startErr != nil {
		fmt.Println()
		return startErr
	}

	_, freshInfo, err := config.IsDaemonRunning()
	if err != nil || freshInfo == nil {
		fmt.Println(" started.")
		return nil
	}

	fmt.Printf(" %s (PID %d, port %d).\n", styleSuccess.Render("started"), freshInfo.PID, freshInfo.Port)
	return nil
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Println(styleSuccess.Render("Daemon is running."))
	printField("Host", info.Host)
	printField("Port", fmt.Sprint(info.Port))
	printField("PID", fmt.Sprint(info.PID))
	printField("Uptime", uptime.String())

	// Live details are best effort: the pid may be alive while the port is not
	// yet accepting connections.
	_ = withDaemon(func(ctx context.Context, c *daemonClient) error {
		st, err := c.GetStatus(ctx)
		if err != nil {
			return err
		}
		printField("Backend", st.Backend)
		printField("Reminders", fmt.Sprint(st.Reminders))
		if st.NextReminder != nil {
			printField("Next reminder", st.NextReminder.AsTime().Local().Format(time.DateTime))
		}
		printField("Window", visibility(st.WindowVisible))
		if st.FrontendUrl != "" {
			printField("Front end", st.FrontendUrl)
		}
		return nil
	})

	return nil
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", styleLabel.Render(fmt.Sprintf("%-11s", label+":")), styleValue.Render(value))
}

func visibility(visible bool) string {
	if visible {
		return "shown"
	}
	return "hidden"
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	// Ask politely first, then fall back to SIGTERM.
	err = withDaemon(func(ctx context.Context, c *daemonClient) error {
		return c.Shutdown(ctx)
	})
	if err != nil {
		process, findErr := os.FindProcess(info.PID)
		if findErr != nil {
			return fmt.Errorf("failed to find daemon process: %w", findErr)
		}
		if err := process.Signal(syscall.SIGTERM); err != nil {
			return fmt.Errorf("failed to send stop signal: %w", err)
		}
	}

	// Poll for shutdown (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		stillRunning, _, err := config.IsDaemonRunning()
		if err == nil && !stillRunning {
			fmt.Println("Daemon stopped.")
			return nil
		}
	}

	return fmt.Errorf("daemon did not stop within timeout")
}
