package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // lesson titles
	colorGreen  = lipgloss.Color("35")  // passed steps
	colorRed    = lipgloss.Color("167") // failed steps
	colorYellow = lipgloss.Color("220") // pending steps
	colorDim    = lipgloss.Color("240") // secondary text

	styleLesson  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stylePassed  = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailed  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	stylePending = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)
