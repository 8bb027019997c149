// Package tray implements the system tray icon and menu for the daemon.
package tray

// Actions are the daemon operations reachable from the tray menu.
type Actions interface {
	ShowWindow()
	HideWindow()
	ToggleWindow()
	RequestShutdown()
}
