package algo

import "github.com/pkg/errors"

var (
	// ErrEmptyCollection is returned when an element is requested from an
	// empty collection, e.g. Peek or Poll on an empty heap.
	ErrEmptyCollection = errors.New("no items in the collection")

	// ErrInvalidArgument is returned for invalid configuration such as
	// non-positive repeat counts or durations.
	ErrInvalidArgument = errors.New("invalid argument")
)
