package repository

import (
	"errors"
)

// ErrNotFound is returned by Get-style lookups when no row matches.
// Implementations translate their driver's not-found error into this one
// so callers never depend on a specific storage library.
var ErrNotFound = errors.New("record not found")
