package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	subtle = lipgloss.Color("240") // Warm grey for rules and borders
	amber  = lipgloss.Color("179")

	HlRowStyle  = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	HeaderStyle = lipgloss.NewStyle().Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	CursorStyle = lipgloss.NewStyle().Reverse(true)
	FunnelStyle = lipgloss.NewStyle().Foreground(amber)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	FooterStyle = lipgloss.NewStyle().Foreground(subtle)
	UnStyle     = lipgloss.NewStyle()

	// BarStyle underlines the search bar.
	BarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(subtle)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(1, 2)

	// DetailStyle rules off the detail panel, amber when it has focus.
	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(subtle)
	DetailFocusStyle = DetailStyle.BorderForeground(amber)
)

// RowStyler returns a StyleFunc for a page of results with the selected row highlighted
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch row {
		case table.HeaderRow:
			return HeaderStyle
		case selectedRow:
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable draws a single rule under the header and nothing else
func StyleTable(tbl *table.Table) {

	rule := lipgloss.Border{Top: "─", Middle: "─", MiddleLeft: "─", MiddleRight: "─"}

	tbl.Border(rule).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(lipgloss.NewStyle().Foreground(subtle))
}
