package server

import (
	"log"

	"github.com/overlearn/overlearn/internal/daemon/command"
)

// TrayState adapts the daemon window to the tray.Actions interface.
type TrayState struct {
	window command.Window
}

// NewTrayState creates a TrayState for the given window.
func NewTrayState(window command.Window) *TrayState {
	return &TrayState{window: window}
}

// ShowWindow shows the front end window.
func (t *TrayState) ShowWindow() {
	if err := t.window.Show(); err != nil {
		log.Printf("[tray] Failed to show window: %v", err)
	}
}

// HideWindow hides the front end window.
func (t *TrayState) HideWindow() {
	if err := t.window.Hide(); err != nil {
		log.Printf("[tray] Failed to hide window: %v", err)
	}
}

// ToggleWindow shows a hidden window and hides a visible one.
func (t *TrayState) ToggleWindow() {
	if err := t.window.Toggle(); err != nil {
		log.Printf("[tray] Failed to toggle window: %v", err)
	}
}

// RequestShutdown triggers a graceful daemon shutdown.
func (t *TrayState) RequestShutdown() {
	RequestShutdown()
}
