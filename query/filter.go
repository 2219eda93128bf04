package query

import (
	"slices"

	"github.com/pkg/errors"

	nt "searchbar/entity"
)

// Filter returns the records whose leaf at the descriptor's path matches query,
// preserving their order.
//
// A blank query returns every record without resolving any path. Otherwise the
// first record that cannot be resolved or parsed aborts the whole pass.
func (ev Evaluator) Filter(records []nt.Record, dsc nt.Descriptor, query string) (filtered []nt.Record, err error) {

	if Blank(query) {
		filtered = slices.Clone(records)
		return
	}

	match, err := ev.matcher(dsc.Kind, query)
	if err != nil {
		return
	}

	filtered = []nt.Record{}
	for i, record := range records {

		var leaf any
		leaf, err = Resolve(record, dsc.Path)
		if err != nil {
			filtered = nil
			err = errors.Wrapf(err, "failed to filter record %d by %q", i, dsc.Label)
			return
		}

		var ok bool
		ok, err = match(leaf)
		if err != nil {
			filtered = nil
			err = errors.Wrapf(err, "failed to filter record %d by %q", i, dsc.Label)
			return
		}

		if ok {
			filtered = append(filtered, record)
		}
	}

	return
}

// Filter filters records with an Evaluator comparing dates in local time.
func Filter(records []nt.Record, dsc nt.Descriptor, query string) ([]nt.Record, error) {
	return Evaluator{}.Filter(records, dsc, query)
}
