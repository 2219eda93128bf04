package searchbar

import (
	"iter"
	"slices"

	nt "searchbar/entity"
)

// ResultMode selects how filtered records are handed to the host.
type ResultMode string

const (
	// Plain delivers a materialized slice.
	Plain ResultMode = "plain"
	// Lazy delivers a producer over the already filtered records.
	Lazy ResultMode = "lazy"
)

// Result is the outcome of one filter pass.
// Exactly one of Records and Producer is set, depending on the mode.
type Result struct {
	Records  []nt.Record
	Producer iter.Seq[nt.Record]
}

func newResult(records []nt.Record, mode ResultMode) Result {
	if mode == Lazy {
		return Result{Producer: slices.Values(records)}
	}
	return Result{Records: records}
}

// All yields the records whichever mode produced the result.
func (res Result) All() iter.Seq[nt.Record] {
	if res.Producer != nil {
		return res.Producer
	}
	return slices.Values(res.Records)
}

// Collect materializes the records.
func (res Result) Collect() []nt.Record {
	if res.Producer == nil {
		return res.Records
	}
	return slices.Collect(res.Producer)
}
