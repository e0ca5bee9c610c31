package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/ifgraph/internal/config"
	"github.com/tonhe/ifgraph/internal/graph"
	"github.com/tonhe/ifgraph/tui/components"
	"github.com/tonhe/ifgraph/tui/keys"
	"github.com/tonhe/ifgraph/tui/styles"
	"github.com/tonhe/ifgraph/tui/views"
)

// AppState represents the current screen/view of the application.
type AppState int

const (
	StateBrowser AppState = iota
	StateHelp
)

// AppModel is the root Bubble Tea model that manages all views and state.
type AppModel struct {
	state   AppState
	theme   styles.Theme
	sty     *styles.Styles
	config  *config.Config
	browser views.BrowserView
	host    string
	service string
	version string
	width   int
	height  int
}

// NewAppModel creates a new AppModel browsing the given graph set.
func NewAppModel(cfg *config.Config, set *graph.Set, host, service, version string) AppModel {
	theme := styles.Resolve(cfg.Theme)
	browser := views.NewBrowserView(theme)
	browser.SetGraphs(set)
	return AppModel{
		state:   StateBrowser,
		theme:   theme,
		sty:     styles.NewStyles(theme),
		config:  cfg,
		browser: browser,
		host:    host,
		service: service,
		version: version,
	}
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body height = total - 1 (header) - 2 (status bar lines)
		m.browser.SetSize(msg.Width, msg.Height-3)
		return m, nil

	case tea.KeyMsg:
		// Global key bindings
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.DefaultKeyMap.Help):
			if m.state == StateHelp {
				m.state = StateBrowser
			} else {
				m.state = StateHelp
			}
			return m, nil
		}

		// State-specific key handling
		switch m.state {
		case StateHelp:
			if key.Matches(msg, keys.DefaultKeyMap.Escape) {
				m.state = StateBrowser
			}
			return m, nil
		case StateBrowser:
			var cmd tea.Cmd
			m.browser, cmd = m.browser.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View renders the full application UI by composing header, body, and status.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := components.RenderHeader(m.theme, m.host, m.service, m.browser.Len(), m.width, m.version)

	// Body content based on current state
	var body string
	switch m.state {
	case StateHelp:
		body = m.renderHelp()
	default:
		body = m.browser.View()
	}

	info := components.StatusInfo{
		Total: m.browser.Len(),
		Raw:   m.browser.Raw(),
	}
	if spec, ok := m.browser.Selected(); ok {
		info.Selected = spec.Key
		info.Position = m.browser.Cursor() + 1
		info.Directives = len(spec.Directives)
	}
	km := keys.DefaultKeyMap
	statusBar := components.RenderStatusBar(m.theme, info,
		[]key.Binding{km.Up, km.Down, km.ScrollDown, km.Raw, km.Help, km.Quit}, m.width)

	// Fill body to the available height between header and status bar
	bodyHeight := m.height - 1 - 2 // 1 header line, 2 status bar lines
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}

func (m AppModel) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.sty.ModalTitle.Render("Keys"))
	for _, kb := range keys.DefaultKeyMap.Bindings() {
		h := kb.Help()
		b.WriteString("\n" + m.sty.FooterKey.Render(padRight(h.Key, 10)) + m.sty.FooterDesc.Render(h.Desc))
	}
	modal := m.sty.ModalBorder.Render(b.String())
	return lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center, modal)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
