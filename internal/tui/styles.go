package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 3)

	workPhaseStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	breakPhaseStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	clockStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	taskStyle       = lipgloss.NewStyle().Foreground(colorCyan)
	dimStyle        = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle      = lipgloss.NewStyle().Foreground(colorRed)
)
