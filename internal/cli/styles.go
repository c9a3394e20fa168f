package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

var (
	colorRed    = lipgloss.Color("#ff5555")
	colorGreen  = lipgloss.Color("#50fa7b")
	colorYellow = lipgloss.Color("#f1fa8c")
	colorDim    = lipgloss.Color("#6272a4")
)

var (
	highlightStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(colorDim)
	headingStyle   = lipgloss.NewStyle().Bold(true)
)

func levelStyle(l analysis.RiskLevel) lipgloss.Style {
	switch l {
	case analysis.RiskDanger:
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case analysis.RiskSuspicious:
		return lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	}
}

// markFlagged wraps one flagged span for the terminal.
var markFlagged = func(match string) string {
	return highlightStyle.Render(match)
}

// markPhrases highlights flagged phrases for a terminal.
func markPhrases(text string, highlights []string) string {
	return analysis.RenderFunc(text, highlights, markFlagged)
}
