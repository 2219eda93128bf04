package searchbar

import nt "searchbar/entity"

type SearchMsg interface {
	isSearchMsg()
}

func (ConfigureMsg) isSearchMsg()          {}
func (FilterResultMsg) isSearchMsg()       {}
func (DescriptorSelectedMsg) isSearchMsg() {}

// ConfigureMsg (re)initializes the bar with descriptors and records.
// Hosts send it at start and whenever either changes.
type ConfigureMsg struct {
	Descriptors []nt.Descriptor
	Records     []nt.Record
}

// FilterResultMsg delivers the records matching the current query.
type FilterResultMsg struct {
	Result     Result
	Descriptor nt.Descriptor
	Query      string
}

// DescriptorSelectedMsg reports the descriptor the user confirmed in the dialog.
type DescriptorSelectedMsg struct {
	Descriptor nt.Descriptor
}
