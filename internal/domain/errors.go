package domain

import "errors"

var (
	// ErrInvalidPage is returned by a ProjectSource when page or pageSize
	// is not a positive integer.
	ErrInvalidPage = errors.New("page and pageSize must be positive")

	// ErrSourceUnavailable signals a transient catalog failure. Callers
	// recover by retrying; the loader surfaces it through LastError.
	ErrSourceUnavailable = errors.New("project source unavailable")
)
