package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/tonhe/ifgraph/internal/config"
	"github.com/tonhe/ifgraph/internal/graph"
)

func newTestApp() AppModel {
	set := graph.Build([]graph.Record{
		{Name: "in-eth0", RRDFile: "/rrd/web01/Traffic.rrd", DS: "1"},
		{Name: "out-eth0", RRDFile: "/rrd/web01/Traffic.rrd", DS: "2"},
	}, "web01")
	m := NewAppModel(config.DefaultConfig(), set, "web01", "Traffic", "0.1.0")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return next.(AppModel)
}

func TestAppViewComposesHeaderAndStatus(t *testing.T) {
	out := newTestApp().View()
	assert.Contains(t, out, "ifgraph")
	assert.Contains(t, out, "web01 / Traffic")
	assert.Contains(t, out, "1 graphs")
	assert.Contains(t, out, "graph: eth0-bytes")
}

func TestAppLoadingBeforeSize(t *testing.T) {
	m := NewAppModel(config.DefaultConfig(), graph.Build(nil, "h"), "h", "", "0.1.0")
	assert.Equal(t, "Loading...", m.View())
}

func TestAppHelpToggle(t *testing.T) {
	m := newTestApp()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = next.(AppModel)
	assert.Equal(t, StateHelp, m.state)
	assert.Contains(t, m.View(), "toggle raw definition")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateBrowser, next.(AppModel).state)
}

func TestAppQuit(t *testing.T) {
	_, cmd := newTestApp().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if assert.NotNil(t, cmd) {
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
