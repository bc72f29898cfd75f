// Package loader accumulates catalog pages into a single growing list.
//
// The Loader is a single-flight state machine: at most one fetch is
// outstanding at a time, pages append in strictly increasing order, and a
// failed fetch leaves the accumulated list and page cursor untouched so a
// retry re-requests the same page. It is confined to one goroutine (the UI
// event loop); only the fetch itself runs elsewhere, reporting back through
// CompleteLoad.
package loader

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmelani/vitrine/internal/domain"
)

// Loader owns the progressively loaded project list.
type Loader struct {
	source domain.ProjectSource
	logger *slog.Logger

	// Artificial delay before each fetch. Zero is valid; the delay has no
	// semantic meaning and exists so a networked source is a drop-in
	// replacement.
	delay  time.Duration
	locale string

	items    []domain.Project
	pageSize int
	cursor   int // Highest page applied so far
	total    int
	loading  bool
	lastErr  error

	// gen increments on every Initialize. Completions carrying a stale
	// generation are dropped, so a fetch that outlives its loader
	// incarnation can never corrupt the new one.
	gen int
}

// New creates a loader over the given source.
func New(source domain.ProjectSource, delay time.Duration, locale string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{source: source, delay: delay, locale: locale, logger: logger}
}

// Initialize seeds the loader with the already-fetched first page and the
// locale later fetches use. The seed batch is trusted to be page 1
// regardless of its actual length. Any fetch still in flight from a
// previous incarnation is invalidated by the generation bump, which is why
// a locale switch re-initializes this loader instead of constructing a
// fresh one: a fresh loader would restart at the same generation numbers
// and accept the old incarnation's late completions.
func (l *Loader) Initialize(locale string, initial []domain.Project, pageSize, totalCount int) {
	l.locale = locale
	l.items = append([]domain.Project(nil), initial...)
	l.pageSize = pageSize
	l.total = totalCount
	l.cursor = 1
	l.loading = false
	l.lastErr = nil
	l.gen++
}

// StartLoad begins a load if one is permitted. It returns the page to
// fetch and the loader generation to hand back to CompleteLoad. ok is false
// while a fetch is outstanding or once everything is loaded; in that case
// no state changes.
func (l *Loader) StartLoad() (page, gen int, ok bool) {
	if l.loading || l.AllLoaded() {
		return 0, 0, false
	}
	l.loading = true
	l.lastErr = nil
	return l.cursor + 1, l.gen, true
}

// CompleteLoad applies the result of a fetch started by StartLoad. Results
// from a stale generation are dropped. On error the accumulated items and
// cursor are unchanged and the error is recorded; a later StartLoad will
// re-request the same page.
func (l *Loader) CompleteLoad(gen, page int, items []domain.Project, err error) {
	if gen != l.gen {
		l.logger.Debug("dropping stale load result", "page", page, "gen", gen, "current", l.gen)
		return
	}
	if !l.loading {
		return
	}
	l.loading = false
	if err != nil {
		l.lastErr = err
		l.logger.Warn("page load failed", "page", page, "error", err)
		return
	}
	l.items = append(l.items, items...)
	l.cursor = page
	l.logger.Debug("page loaded", "page", page, "added", len(items), "have", len(l.items), "total", l.total)
}

// LoadMore performs a full load cycle against the source, including the
// configured artificial delay. It never fails synchronously; fetch failures
// surface through LastError. A call while loading or after completion is a
// no-op.
func (l *Loader) LoadMore(ctx context.Context) {
	page, gen, ok := l.StartLoad()
	if !ok {
		return
	}
	if l.delay > 0 {
		select {
		case <-time.After(l.delay):
		case <-ctx.Done():
			l.CompleteLoad(gen, page, nil, ctx.Err())
			return
		}
	}
	result, err := l.source.GetPage(ctx, page, l.pageSize, l.locale)
	l.CompleteLoad(gen, page, result.Items, err)
}

// Fetch runs the source request for a page started via StartLoad. It is
// safe to call from another goroutine; the caller applies the result with
// CompleteLoad on the owning goroutine.
func (l *Loader) Fetch(ctx context.Context, page int) (domain.Page, error) {
	if l.delay > 0 {
		select {
		case <-time.After(l.delay):
		case <-ctx.Done():
			return domain.Page{}, ctx.Err()
		}
	}
	return l.source.GetPage(ctx, page, l.pageSize, l.locale)
}

// Items returns the accumulated list. Append-only; callers must not mutate.
func (l *Loader) Items() []domain.Project {
	return l.items
}

// Len returns the number of loaded items.
func (l *Loader) Len() int {
	return len(l.items)
}

// Total returns the catalog total for this session.
func (l *Loader) Total() int {
	return l.total
}

// HasMore reports whether unloaded items remain.
func (l *Loader) HasMore() bool {
	return len(l.items) < l.total
}

// Remaining returns the number of items not yet loaded, never negative.
func (l *Loader) Remaining() int {
	if r := l.total - len(l.items); r > 0 {
		return r
	}
	return 0
}

// AllLoaded reports whether the whole catalog has been accumulated.
func (l *Loader) AllLoaded() bool {
	return len(l.items) >= l.total
}

// IsLoading reports whether a fetch is outstanding.
func (l *Loader) IsLoading() bool {
	return l.loading
}

// LastError returns the error from the most recent attempt, or nil. It is
// cleared when a new load starts.
func (l *Loader) LastError() error {
	return l.lastErr
}

// PageSize returns the configured page size.
func (l *Loader) PageSize() int {
	return l.pageSize
}
