package table

import nt "searchbar/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()    {}
func (RecordsMsg) isTableMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// RecordsMsg replaces the records shown
type RecordsMsg struct {
	Records []nt.Record
}
