package repository

import "errors"

var (
	// ErrNotFound reports that the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict reports that the row changed since it was loaded.
	ErrConflict = errors.New("record modified concurrently")
)
