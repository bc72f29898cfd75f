package tui

import (
	"github.com/dmelani/vitrine/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// InitialPageMsg carries the first catalog page, fetched directly from the
// source for fast first paint before the loader takes over.
type InitialPageMsg struct {
	Page domain.Page
	Err  error
}

// PageLoadedMsg carries the result of a loader fetch. Generation ties the
// result to the loader incarnation that requested it.
type PageLoadedMsg struct {
	Generation int
	PageNum    int
	Items      []domain.Project
	Err        error
}

// LocaleChangedMsg signals that the catalog must be re-read in a new locale
type LocaleChangedMsg struct {
	Locale string
	Page   domain.Page
	Err    error
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
