package searchbar

import (
	"slices"

	"github.com/pkg/errors"

	nt "searchbar/entity"
	"searchbar/query"
)

// ErrNotConfigured is returned when a bar is used before a successful Configure.
var ErrNotConfigured = errors.New("search bar is not configured")

// Bar tracks the active filter and query over a record collection and runs a
// filter pass on every change.
//
// A Bar starts Uninitialized. Configure with at least one descriptor makes it
// Active on the first descriptor with an empty query.
type Bar struct {
	descriptors []nt.Descriptor
	records     []nt.Record
	active      int // -1 while uninitialized
	query       string
	mode        ResultMode
	evaluator   query.Evaluator
	last        Result
}

// NewBar returns an uninitialized bar delivering results in mode.
func NewBar(mode ResultMode, evaluator query.Evaluator) Bar {
	return Bar{
		active:    -1,
		mode:      mode,
		evaluator: evaluator,
	}
}

// Configure replaces descriptors and records, resets to the first descriptor
// and an empty query, and returns the full collection.
// Invalid or missing descriptors leave the bar uninitialized.
func (bar *Bar) Configure(descriptors []nt.Descriptor, records []nt.Record) (res Result, err error) {

	err = query.Validate(descriptors)
	if err != nil {
		*bar = NewBar(bar.mode, bar.evaluator)
		err = errors.Wrapf(err, "failed to configure search bar")
		return
	}

	bar.descriptors = slices.Clone(descriptors)
	bar.records = records
	bar.active = 0
	bar.query = ""

	return bar.run()
}

// SetQuery replaces the query and filters with the active descriptor.
func (bar *Bar) SetQuery(query string) (res Result, err error) {

	if !bar.Initialized() {
		err = ErrNotConfigured
		return
	}

	bar.query = query
	return bar.run()
}

// Select makes the descriptor at index active and filters with the current query.
// A negative index means nothing was chosen and changes nothing.
func (bar *Bar) Select(index int) (res Result, chosen bool, err error) {

	if !bar.Initialized() {
		err = ErrNotConfigured
		return
	}
	if index < 0 {
		return
	}
	if index >= len(bar.descriptors) {
		err = errors.Errorf("no filter descriptor at index %d of %d", index, len(bar.descriptors))
		return
	}

	bar.active = index
	chosen = true

	res, err = bar.run()
	return
}

// SelectDescriptor selects dsc, which must be one of the configured descriptors.
func (bar *Bar) SelectDescriptor(dsc nt.Descriptor) (res Result, err error) {

	index := slices.Index(bar.descriptors, dsc)
	if index < 0 {
		err = errors.Errorf("descriptor %q is not one of the configured descriptors", dsc.Label)
		return
	}

	res, _, err = bar.Select(index)
	return
}

// Initialized reports whether the bar has an active descriptor.
func (bar Bar) Initialized() bool {
	return bar.active >= 0
}

// Active returns the active descriptor.
func (bar Bar) Active() (dsc nt.Descriptor, ok bool) {
	if !bar.Initialized() {
		return
	}
	return bar.descriptors[bar.active], true
}

// ActiveIndex returns the position of the active descriptor, or -1.
func (bar Bar) ActiveIndex() int {
	return bar.active
}

// Query returns the current query text.
func (bar Bar) Query() string {
	return bar.query
}

// Descriptors returns a copy of the configured descriptors.
func (bar Bar) Descriptors() []nt.Descriptor {
	return slices.Clone(bar.descriptors)
}

// Last returns the result of the last successful pass.
func (bar Bar) Last() Result {
	return bar.last
}

// unexported

func (bar *Bar) run() (res Result, err error) {

	filtered, err := bar.evaluator.Filter(bar.records, bar.descriptors[bar.active], bar.query)
	if err != nil {
		return
	}

	bar.last = newResult(filtered, bar.mode)
	res = bar.last
	return
}
