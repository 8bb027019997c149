// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

// AppName is the product name shown in notifications, the tray and CLI output.
const AppName = "OverLearn"

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
