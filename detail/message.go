package detail

import nt "searchbar/entity"

type DetailMsg interface {
	isDetailMsg()
}

func (SizeMsg) isDetailMsg()   {}
func (RecordMsg) isDetailMsg() {}

type SizeMsg struct {
	Width  int
	Height int
}

// RecordMsg sets the record shown, nil clears it.
type RecordMsg struct {
	Record nt.Record
}
