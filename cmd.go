package searchbar

import (
	tea "charm.land/bubbletea/v2"
)

// resultCmd delivers res along with the state that produced it
func (m Model) resultCmd(res Result) tea.Cmd {

	dsc, _ := m.bar.Active()
	query := m.bar.Query()

	return func() tea.Msg {
		return FilterResultMsg{
			Result:     res,
			Descriptor: dsc,
			Query:      query,
		}
	}
}

// selectedCmd announces the active descriptor
func (m Model) selectedCmd() tea.Cmd {

	dsc, ok := m.bar.Active()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return DescriptorSelectedMsg{Descriptor: dsc}
	}
}
