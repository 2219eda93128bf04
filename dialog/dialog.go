// Package dialog provides the single-choice dialog used to pick the active filter.
package dialog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"searchbar/style"
)

const (
	dialogWidth = 48
)

// Config holds the dialog texts.
type Config struct {
	Title    string `yaml:"title" default:"Select filter"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Confirm  string `yaml:"confirm" default:"OK"`
	Cancel   string `yaml:"cancel" default:"Cancel"`
}

// Dialog displays a modal radio list, confirmed with enter and dismissed with esc
type Dialog struct {
	cfg      Config
	options  []string
	selected int
	open     bool

	width  int
	height int
}

func New(cfg Config) Dialog {
	return Dialog{cfg: cfg}
}

// Show opens the dialog over options with selected checked.
func (dlg Dialog) Show(options []string, selected int) Dialog {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	dlg.options = options
	dlg.selected = selected
	dlg.open = len(options) > 0
	return dlg
}

// Close hides the dialog without choosing.
func (dlg Dialog) Close() Dialog {
	dlg.open = false
	return dlg
}

func (dlg Dialog) Open() bool {
	return dlg.open
}

func (dlg Dialog) Selected() int {
	return dlg.selected
}

func (dlg Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		dlg.width = msg.Width
		dlg.height = msg.Height

	case tea.KeyPressMsg:
		if !dlg.open {
			return dlg, nil
		}
		return dlg.handleKey(msg)
	}

	return dlg, nil
}

// Render draws the bordered dialog box
func (dlg Dialog) Render() string {
	var content strings.Builder

	content.WriteString(lipgloss.NewStyle().Bold(true).Render(dlg.cfg.Title))
	content.WriteString("\n")
	if dlg.cfg.Subtitle != "" {
		content.WriteString(style.MutedStyle.Render(dlg.cfg.Subtitle))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	for i, option := range dlg.options {
		radio := "( )"
		rowPrefix := "  "
		if i == dlg.selected {
			radio = "(•)"
			rowPrefix = "> "
		}

		row := fmt.Sprintf("%s%s %s", rowPrefix, radio, option)
		if i == dlg.selected {
			row = style.HlRowStyle.Render(row)
		}
		content.WriteString(row + "\n")
	}

	help := fmt.Sprintf("↑↓: choose  enter: %s  esc: %s", dlg.cfg.Confirm, dlg.cfg.Cancel)
	content.WriteString("\n" + style.MutedStyle.Render(help))

	return style.DialogStyle.Width(dialogWidth).Render(content.String())
}

// Position returns the top left corner that centres the dialog in the given area
func (dlg Dialog) Position(width, height int) (x, y int) {
	rendered := dlg.Render()

	x = max(0, (width-lipgloss.Width(rendered))/2)
	y = max(0, (height-lipgloss.Height(rendered))/2)
	return
}

// unexported

func (dlg Dialog) handleKey(msg tea.KeyPressMsg) (Dialog, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "shift+tab":
		dlg.selected--
		if dlg.selected < 0 {
			dlg.selected = len(dlg.options) - 1
		}

	case "down", "j", "tab":
		dlg.selected++
		if dlg.selected >= len(dlg.options) {
			dlg.selected = 0
		}

	case "enter":
		dlg.open = false
		index := dlg.selected
		return dlg, func() tea.Msg {
			return ChosenMsg{Index: index}
		}

	case "esc":
		dlg.open = false
		return dlg, func() tea.Msg {
			return CanceledMsg{}
		}
	}

	return dlg, nil
}
