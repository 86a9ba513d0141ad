package store

import "errors"

var (
	// ErrNotFound is returned when an item in store is not found.
	ErrNotFound = errors.New("not found")
)
