package cli

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/overlearn/overlearn/internal/buildinfo"
	"github.com/overlearn/overlearn/internal/updater"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("  %s %s %s\n",
			styleBrand.Render("overlearn"),
			styleVersion.Render(buildinfo.Version),
			styleHint.Render("("+buildinfo.Codename+")"),
		)
		fmt.Printf("    %s  %s\n", styleLabel.Render("Commit"), styleValue.Render(buildinfo.CommitHash))
		fmt.Printf("    %s   %s\n", styleLabel.Render("Built"), styleValue.Render(buildinfo.BuildDate))
		fmt.Printf("    %s %s\n", styleLabel.Render("OS/Arch"), styleValue.Render(runtime.GOOS+"/"+runtime.GOARCH))
		fmt.Printf("    %s      %s\n", styleLabel.Render("Go"), styleValue.Render(runtime.Version()))

		_ = withDaemon(func(ctx context.Context, c *daemonClient) error {
			v, err := c.GetAppVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("    %s  %s\n", styleLabel.Render("Daemon"), styleValue.Render(v.Version))
			return nil
		})

		if !versionCheck {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := updater.CheckForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		fmt.Println()
		if !result.Available {
			fmt.Println(styleSuccess.Render("Up to date."))
			return nil
		}
		fmt.Printf("%s v%s → v%s\n", styleUpdate.Render("Update available:"), result.CurrentVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			fmt.Printf("  %s\n", styleHint.Render(result.ReleaseURL))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
}
