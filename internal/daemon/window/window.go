// Package window controls the OverLearn front end window. The front end is
// a web app, so showing the window means opening it in the user's browser.
package window

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"sync"
)

// Launcher shows and hides the front end served at a URL.
type Launcher struct {
	url  string
	open func(url string) error

	mu      sync.Mutex
	visible bool
}

// New creates a launcher for the front end at url.
func New(url string) *Launcher {
	return &Launcher{url: url, open: openBrowser}
}

// URL returns the front end address.
func (l *Launcher) URL() string {
	return l.url
}

// Show opens the front end and marks the window visible.
func (l *Launcher) Show() error {
	if err := l.open(l.url); err != nil {
		return fmt.Errorf("failed to open %s: %w", l.url, err)
	}

	l.mu.Lock()
	l.visible = true
	l.mu.Unlock()

	log.Printf("[window] Showing %s", l.url)
	return nil
}

// Hide marks the window hidden. The browser tab itself is left alone; the
// front end reads the state through the status command.
func (l *Launcher) Hide() error {
	l.mu.Lock()
	l.visible = false
	l.mu.Unlock()

	log.Println("[window] Hidden")
	return nil
}

// Toggle shows a hidden window and hides a visible one.
func (l *Launcher) Toggle() error {
	if l.Visible() {
		return l.Hide()
	}
	return l.Show()
}

// Visible reports whether the window is currently shown.
func (l *Launcher) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
