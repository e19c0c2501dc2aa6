package dnd

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration error the list reports.
	ErrInvalidConfig = errors.New("invalid list configuration")

	// ErrInvalidItemHeight indicates a non-positive row height
	ErrInvalidItemHeight = errors.New("item height must be positive")

	// ErrDuplicateID indicates two items share an id
	ErrDuplicateID = errors.New("duplicate item id")

	// ErrEmptyID indicates an item without an id
	ErrEmptyID = errors.New("empty item id")

	// ErrEmptyList is returned when a hover is resolved against no items.
	ErrEmptyList = errors.New("cannot resolve hover on an empty list")
)
