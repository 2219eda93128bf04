package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command delivering err as an ErrorMsg
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
