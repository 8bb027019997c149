package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/overlearn/overlearn/internal/api"
	"github.com/overlearn/overlearn/internal/tui"
)

var (
	pomodoroWork  int
	pomodoroBreak int
	timerTask     string
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run a Pomodoro timer that notifies through the daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pomodoroWork <= 0 || pomodoroBreak <= 0 {
			return fmt.Errorf("--work and --break must be positive")
		}

		var notifier tui.Notifier
		if err := EnsureDaemon(); err != nil {
			fmt.Println(styleWarning.Render("Warning:") + " " + err.Error() + "; notifications disabled")
		} else {
			notifier = daemonNotifier{}
		}

		return tui.Run(tui.Config{
			Work:  time.Duration(pomodoroWork) * time.Minute,
			Break: time.Duration(pomodoroBreak) * time.Minute,
			Task:  timerTask,
		}, notifier)
	},
}

func init() {
	pomodoroCmd.Flags().IntVar(&pomodoroWork, "work", 25, "Work session length in minutes")
	pomodoroCmd.Flags().IntVar(&pomodoroBreak, "break", 5, "Break length in minutes")
	pomodoroCmd.Flags().StringVar(&timerTask, "task", "", "Task to focus on")
}

// daemonNotifier dials the daemon for every notification so a daemon
// restart during a long session is tolerated.
type daemonNotifier struct{}

func (daemonNotifier) NotifyPomodoroComplete(ctx context.Context, sessionType string, duration int, taskTitle *string) error {
	c, err := connectDaemon()
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.Client.NotifyPomodoroComplete(ctx, sessionType, duration, taskTitle); err != nil {
		return errors.New(api.ErrorMessage(err))
	}
	return nil
}
