package detail

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/goccy/go-json"

	nt "searchbar/entity"
	"searchbar/style"
)

const empty = "no record selected"

// DetailPanel shows the selected record as indented json
type DetailPanel struct {
	record nt.Record
	lines  []string // Rendered record split into lines (cached)

	width   int
	height  int
	Focused bool
	offset  int // Line offset for scrolling content
}

func New() DetailPanel {
	return DetailPanel{}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case RecordMsg:
		pnl.record = msg.Record
		pnl.lines = renderLines(msg.Record)
		pnl.offset = 0

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.offset = min(pnl.offset, pnl.maxOffset())

	case tea.KeyPressMsg:
		if !pnl.Focused {
			return pnl, nil
		}

		page := max(1, pnl.visible())

		switch msg.String() {
		case "up":
			pnl.offset = max(0, pnl.offset-1)
		case "down":
			pnl.offset = min(pnl.maxOffset(), pnl.offset+1)
		case "pgup":
			pnl.offset = max(0, pnl.offset-page)
		case "pgdown":
			pnl.offset = min(pnl.maxOffset(), pnl.offset+page)
		}
	}

	return pnl, nil
}

// Render renders the visible portion of the record under a rule
func (pnl DetailPanel) Render() string {

	rule := style.DetailStyle
	if pnl.Focused {
		rule = style.DetailFocusStyle
	}
	if pnl.width > 0 {
		rule = rule.Width(pnl.width)
	}

	if pnl.lines == nil {
		return rule.Render(style.MutedStyle.Render(empty))
	}

	shown := pnl.lines[pnl.offset:]
	if visible := pnl.visible(); visible > 0 && len(shown) > visible {
		shown = shown[:visible]
	}

	return rule.Render(strings.Join(shown, "\n"))
}

func (pnl DetailPanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Record returns the record shown, if any.
func (pnl DetailPanel) Record() nt.Record {
	return pnl.record
}

// Offset returns the first line shown.
func (pnl DetailPanel) Offset() int {
	return pnl.offset
}

// Lines returns the record rendered as json lines.
func (pnl DetailPanel) Lines() []string {
	return pnl.lines
}

// unexported

// visible is the number of content lines below the rule
func (pnl DetailPanel) visible() int {
	return max(0, pnl.height-1)
}

func (pnl DetailPanel) maxOffset() int {
	return max(0, len(pnl.lines)-pnl.visible())
}

// renderLines renders record as indented json split into lines
func renderLines(record nt.Record) []string {

	if record == nil {
		return nil
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return []string{"failed to render record: " + err.Error()}
	}

	return strings.Split(string(data), "\n")
}
