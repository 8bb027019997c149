package tray

import (
	"fmt"
	"log"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/getlantern/systray"

	"github.com/overlearn/overlearn/internal/buildinfo"
)

const maxLastTitleWidth = 40

// Tray owns the tray icon and its menu. Run must be called from the main
// goroutine.
type Tray struct {
	actions  Actions
	iconPath string

	onStart func()
	onExit  func()

	mu        sync.Mutex
	lastTitle string
	lastItem  *systray.MenuItem

	showItem   *systray.MenuItem
	hideItem   *systray.MenuItem
	toggleItem *systray.MenuItem
	quitItem   *systray.MenuItem
}

// New creates a tray that forwards menu clicks to actions.
func New(actions Actions, iconPath string) *Tray {
	return &Tray{actions: actions, iconPath: iconPath}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStart is called when the tray is ready (launch the server here).
// onExit is called when the tray exits (cleanup here).
func (t *Tray) Run(onStart, onExit func()) {
	t.onStart = onStart
	t.onExit = onExit
	systray.Run(t.onReady, t.onQuit)
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	systray.Quit()
}

// SetLastNotification shows title in the status item.
func (t *Tray) SetLastNotification(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastTitle = title
	if t.lastItem != nil {
		t.lastItem.SetTitle(formatLast(title))
	}
}

func (t *Tray) onReady() {
	icon := loadIcon(t.iconPath)
	systray.SetIcon(icon)
	systray.SetTooltip(buildinfo.AppName)

	t.showItem = systray.AddMenuItem("Show Window", "Open "+buildinfo.AppName)
	t.hideItem = systray.AddMenuItem("Hide Window", "Hide "+buildinfo.AppName)
	t.toggleItem = systray.AddMenuItem("Toggle Window", "Show or hide "+buildinfo.AppName)

	systray.AddSeparator()

	t.mu.Lock()
	t.lastItem = systray.AddMenuItem(formatLast(t.lastTitle), "")
	t.lastItem.Disable()
	t.mu.Unlock()

	systray.AddSeparator()

	t.quitItem = systray.AddMenuItem("Quit "+buildinfo.AppName, "Shut down the "+buildinfo.AppName+" daemon")

	if t.onStart != nil {
		t.onStart()
	}

	go t.handleClicks()
}

func (t *Tray) onQuit() {
	if t.onExit != nil {
		t.onExit()
	}
}

func (t *Tray) handleClicks() {
	for {
		select {
		case <-t.showItem.ClickedCh:
			t.actions.ShowWindow()
		case <-t.hideItem.ClickedCh:
			t.actions.HideWindow()
		case <-t.toggleItem.ClickedCh:
			t.actions.ToggleWindow()
		case <-t.quitItem.ClickedCh:
			log.Println("[tray] Quit requested")
			t.actions.RequestShutdown()
			return
		}
	}
}

func formatLast(title string) string {
	if title == "" {
		return "No notifications yet"
	}
	return fmt.Sprintf("Last: %s", ansi.Truncate(title, maxLastTitleWidth, "…"))
}
