package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/ifgraph/tui/styles"
)

// StatusInfo is what the status bar reports about the selected graph.
type StatusInfo struct {
	Selected   string
	Position   int
	Total      int
	Directives int
	Raw        bool
}

// RenderStatusBar renders the two-line status/footer bar showing the
// selected graph and key bindings.
func RenderStatusBar(theme styles.Theme, info StatusInfo, bindings []key.Binding, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")

	selected := info.Selected
	if selected == "" {
		selected = "none"
	}
	selSeg := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg).
		Render(fmt.Sprintf("graph: %s", selected))
	posSeg := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg).
		Render(fmt.Sprintf("%d/%d", info.Position, info.Total))
	dirSeg := lipgloss.NewStyle().Foreground(theme.Base0B).Background(bg).
		Render(fmt.Sprintf("%d directives", info.Directives))

	mode := "pretty"
	if info.Raw {
		mode = "raw"
	}
	modeSeg := lipgloss.NewStyle().Foreground(theme.Base0A).Background(bg).Render(mode)

	topContent := bgStyle.Render(" ") + selSeg + sep + posSeg + sep + dirSeg + sep + modeSeg
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ")
	for i, b := range bindings {
		if i > 0 {
			keys += spacer
		}
		h := b.Help()
		keys += keyStyle.Render(h.Key) + descStyle.Render(":"+h.Desc)
	}

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
