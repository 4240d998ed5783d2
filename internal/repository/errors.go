package repository

import "errors"

var (
	// ErrNotFound: the referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: a guarded update matched no row because the expected
	// prior state changed underneath us (lost CAS race).
	ErrConflict = errors.New("conflict")
)
