package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/ifgraph/internal/graph"
	"github.com/tonhe/ifgraph/tui/keys"
	"github.com/tonhe/ifgraph/tui/styles"
)

// Pane width constants.
const (
	listWidth    = 28
	listMinWidth = 16
	badgeWidth   = 7
)

// BrowserView lists the generated interface graphs on the left and shows the
// options and directives of the selected graph on the right.
type BrowserView struct {
	theme  styles.Theme
	sty    *styles.Styles
	set    *graph.Set
	cursor int
	offset int // list scroll offset
	scroll int // definition pane scroll offset
	raw    bool
	width  int
	height int
}

// NewBrowserView creates a new BrowserView with the given theme.
func NewBrowserView(theme styles.Theme) BrowserView {
	return BrowserView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// SetGraphs replaces the browsed graph set and clamps the cursor.
func (v *BrowserView) SetGraphs(set *graph.Set) {
	v.set = set
	if v.cursor >= v.total() {
		v.cursor = v.total() - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.scroll = 0
	v.ensureVisible()
}

// SetSize updates the available dimensions for the view.
func (v *BrowserView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.ensureVisible()
}

// Update handles key messages for graph selection and definition scrolling.
func (v BrowserView) Update(msg tea.Msg) (BrowserView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	km := keys.DefaultKeyMap
	switch {
	case key.Matches(keyMsg, km.Up):
		v.selectGraph(v.cursor - 1)
	case key.Matches(keyMsg, km.Down):
		v.selectGraph(v.cursor + 1)
	case key.Matches(keyMsg, km.Top):
		v.selectGraph(0)
	case key.Matches(keyMsg, km.Bottom):
		v.selectGraph(v.total() - 1)
	case key.Matches(keyMsg, km.ScrollUp):
		v.scroll -= v.pageSize()
		if v.scroll < 0 {
			v.scroll = 0
		}
	case key.Matches(keyMsg, km.ScrollDown):
		if limit := v.maxScroll(); v.scroll+v.pageSize() <= limit {
			v.scroll += v.pageSize()
		} else {
			v.scroll = limit
		}
	case key.Matches(keyMsg, km.Raw):
		v.raw = !v.raw
		v.scroll = 0
	}
	return v, nil
}

// Selected returns the graph under the cursor.
func (v BrowserView) Selected() (graph.Spec, bool) {
	if v.set == nil || v.cursor < 0 || v.cursor >= len(v.set.Specs) {
		return graph.Spec{}, false
	}
	return v.set.Specs[v.cursor], true
}

// Cursor returns the zero-based index of the selected graph.
func (v BrowserView) Cursor() int {
	return v.cursor
}

// Len returns the number of browsed graphs.
func (v BrowserView) Len() int {
	return v.total()
}

// Raw reports whether the definition pane shows the raw definition string.
func (v BrowserView) Raw() bool {
	return v.raw
}

// View renders the browser view.
func (v BrowserView) View() string {
	if v.total() == 0 {
		return v.renderEmpty()
	}
	lw := v.listWidth()
	list := lipgloss.NewStyle().Width(lw).Render(v.renderList(lw))
	div := v.sty.Divider.Render(strings.TrimSuffix(strings.Repeat("│\n", v.bodyHeight()), "\n"))
	detail := v.renderDetail(v.width - lw - 3)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", div, " ", detail)
}

func (v BrowserView) total() int {
	if v.set == nil {
		return 0
	}
	return len(v.set.Specs)
}

func (v *BrowserView) selectGraph(i int) {
	if i < 0 || i >= v.total() || i == v.cursor {
		return
	}
	v.cursor = i
	v.scroll = 0
	v.ensureVisible()
}

func (v BrowserView) bodyHeight() int {
	if v.height < 1 {
		return 1
	}
	return v.height
}

// pageSize is the number of definition lines shown below the pane header.
func (v BrowserView) pageSize() int {
	n := v.bodyHeight() - 4
	if n < 1 {
		n = 1
	}
	return n
}

func (v BrowserView) listWidth() int {
	lw := listWidth
	if v.width > 0 && v.width/3 < lw {
		lw = v.width / 3
	}
	if lw < listMinWidth {
		lw = listMinWidth
	}
	return lw
}

// ensureVisible adjusts the list scroll offset so the cursor row is visible.
func (v *BrowserView) ensureVisible() {
	// Account for the list header row in available space.
	visible := v.bodyHeight() - 1
	if visible < 1 {
		visible = 1
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
}

func (v BrowserView) renderEmpty() string {
	msg := v.sty.ListCellDim.Render("No interface graphs: no datasource is named in-<interface> or out-<interface>.")
	return lipgloss.Place(v.width, v.bodyHeight(), lipgloss.Center, lipgloss.Center, msg)
}

func (v BrowserView) renderList(width int) string {
	var b strings.Builder
	b.WriteString(v.sty.ListHeader.Render(fmt.Sprintf("%-*s%s", width-badgeWidth, "Interface", "Dir")))

	visible := v.bodyHeight() - 1
	end := v.offset + visible
	if end > v.total() {
		end = v.total()
	}
	for i := v.offset; i < end; i++ {
		spec := v.set.Specs[i]
		name := truncate(spec.Interface, width-badgeWidth-1)
		row := fmt.Sprintf("%-*s", width-badgeWidth, name)
		if i == v.cursor {
			row = v.sty.ListRowSel.Render(row)
		} else {
			row = v.sty.ListRow.Render(row)
		}
		b.WriteString("\n" + row + v.badges(spec.Directions))
	}
	return b.String()
}

func (v BrowserView) badges(dirs []graph.Direction) string {
	var in, out string
	for _, d := range dirs {
		switch d {
		case graph.In:
			in = v.sty.BadgeIn.Render("IN")
		case graph.Out:
			out = v.sty.BadgeOut.Render("OUT")
		}
	}
	if in == "" {
		in = v.sty.ListCellDim.Render("--")
	}
	if out == "" {
		out = v.sty.ListCellDim.Render("---")
	}
	return in + " " + out
}

// detailLines returns the scrollable body of the definition pane.
func (v BrowserView) detailLines(spec graph.Spec, width int) []string {
	if v.raw {
		return wrap(spec.Definition(), width)
	}
	lines := graph.Lines(spec.Directives)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		kind, rest, _ := strings.Cut(line, ":")
		out = append(out, v.sty.Kind(kind).Render(kind)+v.sty.Divider.Render(":")+v.sty.PaneText.Render(rest))
	}
	return out
}

func (v BrowserView) maxScroll() int {
	spec, ok := v.Selected()
	if !ok {
		return 0
	}
	n := len(v.detailLines(spec, v.width-v.listWidth()-3)) - v.pageSize()
	if n < 0 {
		return 0
	}
	return n
}

func (v BrowserView) renderDetail(width int) string {
	spec, ok := v.Selected()
	if !ok {
		return ""
	}
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	b.WriteString(v.sty.PaneTitle.Render(spec.Key))
	b.WriteString("\n" + v.sty.ListCellDim.Render("ds_name ") + v.sty.PaneText.Render(spec.DisplayName))
	b.WriteString("\n" + v.sty.ListCellDim.Render("opt     ") + v.sty.PaneText.Render(truncate(spec.Options, width-8)))
	b.WriteString("\n" + v.sty.Divider.Render(strings.Repeat("─", width)))

	lines := v.detailLines(spec, width)
	start := v.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + v.pageSize()
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[start:end] {
		b.WriteString("\n" + line)
	}
	return b.String()
}

// wrap breaks s into lines of at most width runes.
func wrap(s string, width int) []string {
	if width < 1 {
		return []string{s}
	}
	r := []rune(s)
	var lines []string
	for len(r) > width {
		lines = append(lines, string(r[:width]))
		r = r[width:]
	}
	return append(lines, string(r))
}

// truncate shortens a string to the given max length, adding "..." if needed.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
