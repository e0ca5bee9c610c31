package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/ifgraph/tui/styles"
)

// RenderHeader renders the top header bar with app name, host and service,
// and graph count.
func RenderHeader(theme styles.Theme, host, service string, graphs, width int, ver string) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("ifgraph")

	source := host
	if source == "" {
		source = "(unknown host)"
	}
	if service != "" {
		source += " / " + service
	}
	center := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(source)

	countColor := theme.Base0B
	if graphs == 0 {
		countColor = theme.Base08
	}
	count := lipgloss.NewStyle().
		Foreground(countColor).
		Background(theme.Base01).
		Render(fmt.Sprintf("%d graphs", graphs))

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render("v" + ver)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s ", left, center, count, versionSeg)

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
