package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a desktop notification through the daemon",
}

var notifySendCmd = &cobra.Command{
	Use:   "send <title> <body>",
	Short: "Show a notification with normal urgency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDaemon(func(ctx context.Context, c *daemonClient) error {
			if err := c.ShowNotification(ctx, args[0], args[1]); err != nil {
				return err
			}
			printSent()
			return nil
		})
	},
}

var notifyUrgency string

var notifyNativeCmd = &cobra.Command{
	Use:   "native <title> <message>",
	Short: "Show a notification with a chosen urgency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDaemon(func(ctx context.Context, c *daemonClient) error {
			if err := c.ShowNativeNotification(ctx, args[0], args[1], notifyUrgency); err != nil {
				return err
			}
			printSent()
			return nil
		})
	},
}

var (
	pomodoroSession  string
	pomodoroDuration int
	pomodoroTask     string
)

var notifyPomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Announce a finished Pomodoro session",
	RunE: func(cmd *cobra.Command, args []string) error {
		var task *string
		if cmd.Flags().Changed("task") {
			task = &pomodoroTask
		}
		return withDaemon(func(ctx context.Context, c *daemonClient) error {
			if err := c.NotifyPomodoroComplete(ctx, pomodoroSession, pomodoroDuration, task); err != nil {
				return err
			}
			printSent()
			return nil
		})
	},
}

var notifyMilestoneCmd = &cobra.Command{
	Use:   "milestone <goal> <percent>",
	Short: "Announce study goal progress",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := parsePercent(args[1])
		if err != nil {
			return err
		}
		return withDaemon(func(ctx context.Context, c *daemonClient) error {
			if err := c.NotifyStudyGoalMilestone(ctx, args[0], percent); err != nil {
				return err
			}
			printSent()
			return nil
		})
	},
}

func init() {
	notifyNativeCmd.Flags().StringVarP(&notifyUrgency, "urgency", "u", "normal", "Urgency: low, normal or critical")

	notifyPomodoroCmd.Flags().StringVar(&pomodoroSession, "type", "work", "Session type: work or break")
	notifyPomodoroCmd.Flags().IntVar(&pomodoroDuration, "duration", 25, "Session length in minutes")
	notifyPomodoroCmd.Flags().StringVar(&pomodoroTask, "task", "", "Task worked on during the session")

	notifyCmd.AddCommand(notifySendCmd)
	notifyCmd.AddCommand(notifyNativeCmd)
	notifyCmd.AddCommand(notifyPomodoroCmd)
	notifyCmd.AddCommand(notifyMilestoneCmd)
}

// parsePercent accepts "50" or "50%".
func parsePercent(s string) (int, error) {
	if n := len(s); n > 0 && s[n-1] == '%' {
		s = s[:n-1]
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid percent %q", s)
	}
	return p, nil
}

func printSent() {
	fmt.Println(styleSuccess.Render("✓") + " Notification sent.")
}
