package query

import (
	"fmt"

	"github.com/pkg/errors"

	nt "searchbar/entity"
)

var (
	// ErrNoDescriptors indicates a search bar was configured without any filter descriptor.
	ErrNoDescriptors = errors.New("search bar needs at least one filter descriptor")

	// ErrInvalidDescriptor indicates a descriptor with an unusable path or kind.
	ErrInvalidDescriptor = errors.New("invalid filter descriptor")
)

// MissingFieldError is returned when a record lacks a field named in a dotted path.
type MissingFieldError struct {
	Path    string
	Segment string
}

func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("property %q of path %q does not exist", err.Segment, err.Path)
}

// DateParseError is returned when a query or a leaf value cannot be read as a date.
type DateParseError struct {
	Input string
	Err   error
}

func (err *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a date: %v", err.Input, err.Err)
}

func (err *DateParseError) Unwrap() error {
	return err.Err
}

// Validate checks that descriptors can drive a search bar.
func Validate(descriptors []nt.Descriptor) (err error) {

	if len(descriptors) == 0 {
		err = ErrNoDescriptors
		return
	}

	for i, dsc := range descriptors {
		for _, segment := range dsc.Segments() {
			if segment == "" {
				err = errors.Wrapf(ErrInvalidDescriptor, "descriptor %d (%q) has an empty segment in path %q", i, dsc.Label, dsc.Path)
				return
			}
		}
		if !dsc.Kind.Known() {
			err = errors.Wrapf(ErrInvalidDescriptor, "descriptor %d (%q) has unknown kind %q", i, dsc.Label, dsc.Kind)
			return
		}
	}
	return
}
