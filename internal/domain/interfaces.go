package domain

import "context"

// ProjectSource provides page-based access to the project catalog.
// Pages are 1-based; a page past the end returns an empty slice with the
// true total count, not an error. Implementations must be deterministic for
// the lifetime of the process and safe for concurrent reads.
type ProjectSource interface {
	GetPage(ctx context.Context, page, pageSize int, locale string) (Page, error)
}

// PreferenceStore persists user preferences as opaque string key-value
// pairs. The terminal analog of browser local storage.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}

// Preference keys.
const (
	PrefThemeMode    = "theme_mode"
	PrefLocale       = "locale"
	PrefReduceMotion = "reduce_motion"
)
