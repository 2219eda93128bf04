package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	nt "searchbar/entity"
)

// Evaluator decides whether leaf values match a query.
// The zero value compares dates in the local timezone.
type Evaluator struct {
	Location *time.Location
}

// Match reports whether leaf matches query under kind.
// A blank query matches everything.
func (ev Evaluator) Match(leaf any, kind nt.Kind, query string) (ok bool, err error) {

	match, err := ev.matcher(kind, query)
	if err != nil {
		return
	}
	return match(leaf)
}

// Match reports whether leaf matches query under kind, comparing dates in local time.
func Match(leaf any, kind nt.Kind, query string) (bool, error) {
	return Evaluator{}.Match(leaf, kind, query)
}

// Blank reports whether a query applies no filtering.
func Blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// DateKey reduces a time to year, zero-based month and day in loc.
func DateKey(tm time.Time, loc *time.Location) string {

	tm = tm.In(loc)
	return fmt.Sprintf("%04d-%02d-%02d", tm.Year(), int(tm.Month())-1, tm.Day())
}

// unexported

type matchFunc func(leaf any) (bool, error)

func (ev Evaluator) location() *time.Location {
	if ev.Location == nil {
		return time.Local
	}
	return ev.Location
}

// matcher prepares the query once so a pass over many records parses it only once.
func (ev Evaluator) matcher(kind nt.Kind, query string) (match matchFunc, err error) {

	if Blank(query) {
		match = func(any) (bool, error) { return true, nil }
		return
	}

	switch kind {
	case nt.Date:
		var want time.Time
		want, err = ev.parseDate(query)
		if err != nil {
			return
		}
		wantKey := DateKey(want, ev.location())

		match = func(leaf any) (bool, error) {
			got, err := ev.leafDate(leaf)
			if err != nil {
				return false, err
			}
			return strings.Contains(DateKey(got, ev.location()), wantKey), nil
		}

	default:
		// Text, Email and Number compare textually
		lowered := strings.ToLower(query)
		match = func(leaf any) (bool, error) {
			text := strings.ToLower(nt.Value{Raw: leaf}.String())
			return strings.Contains(text, lowered), nil
		}
	}

	return
}

func (ev Evaluator) parseDate(input string) (tm time.Time, err error) {

	tm, err = dateparse.ParseIn(strings.TrimSpace(input), ev.location())
	if err != nil {
		err = &DateParseError{Input: input, Err: err}
	}
	return
}

// leafDate reads dates from times, date strings and unix milliseconds.
func (ev Evaluator) leafDate(leaf any) (tm time.Time, err error) {

	val := nt.Value{Raw: leaf}
	if tm, err = val.Time(); err == nil {
		return
	}

	switch raw := leaf.(type) {
	case string:
		return ev.parseDate(raw)
	case int, int32, int64, float32, float64:
		var ms float64
		ms, err = val.Float()
		if err == nil {
			tm = time.UnixMilli(int64(ms))
		}
		return
	}

	err = &DateParseError{Input: val.String(), Err: errors.Errorf("unsupported type %T", leaf)}
	return
}
