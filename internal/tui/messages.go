package tui

// notifiedMsg reports the result of a completion notification.
type notifiedMsg struct {
	sessionType string
	err         error
}
