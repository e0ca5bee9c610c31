package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all themed lipgloss styles for the application.
type Styles struct {
	// Header / Footer
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Footer      lipgloss.Style
	FooterKey   lipgloss.Style
	FooterDesc  lipgloss.Style

	// Graph list
	ListHeader  lipgloss.Style
	ListRow     lipgloss.Style
	ListRowSel  lipgloss.Style
	ListCellDim lipgloss.Style
	BadgeIn     lipgloss.Style
	BadgeOut    lipgloss.Style

	// Definition pane
	PaneTitle lipgloss.Style
	PaneText  lipgloss.Style
	Divider   lipgloss.Style

	// Directive kinds
	KindDef     lipgloss.Style
	KindCDef    lipgloss.Style
	KindComment lipgloss.Style
	KindArea    lipgloss.Style
	KindGPrint  lipgloss.Style

	// Modal / overlay
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base01).
			Bold(true).
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Base04).
			Background(theme.Base01).
			Padding(0, 1),
		FooterKey: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		FooterDesc: lipgloss.NewStyle().
			Foreground(theme.Base04),

		ListHeader: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		ListRow: lipgloss.NewStyle().
			Foreground(theme.Base05),
		ListRowSel: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base02),
		ListCellDim: lipgloss.NewStyle().
			Foreground(theme.Base03),
		BadgeIn: lipgloss.NewStyle().
			Foreground(theme.Base0B).
			Bold(true),
		BadgeOut: lipgloss.NewStyle().
			Foreground(theme.Base0C).
			Bold(true),

		PaneTitle: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),
		PaneText: lipgloss.NewStyle().
			Foreground(theme.Base05),
		Divider: lipgloss.NewStyle().
			Foreground(theme.Base03),

		KindDef: lipgloss.NewStyle().
			Foreground(theme.Base0D),
		KindCDef: lipgloss.NewStyle().
			Foreground(theme.Base0E),
		KindComment: lipgloss.NewStyle().
			Foreground(theme.Base03),
		KindArea: lipgloss.NewStyle().
			Foreground(theme.Base0B).
			Bold(true),
		KindGPrint: lipgloss.NewStyle().
			Foreground(theme.Base0A),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
	}
}

// Kind returns the style used for a directive kind such as "DEF" or "GPRINT".
func (s *Styles) Kind(kind string) lipgloss.Style {
	switch kind {
	case "DEF":
		return s.KindDef
	case "CDEF":
		return s.KindCDef
	case "COMMENT":
		return s.KindComment
	case "AREA":
		return s.KindArea
	case "GPRINT":
		return s.KindGPrint
	}
	return s.PaneText
}
