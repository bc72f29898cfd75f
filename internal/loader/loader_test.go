package loader_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmelani/vitrine/internal/catalog"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/dmelani/vitrine/internal/loader"
	"github.com/stretchr/testify/require"
)

func projects(n int) []domain.Project {
	out := make([]domain.Project, n)
	for i := range out {
		out[i] = domain.Project{ID: fmt.Sprintf("p%02d", i+1), Title: fmt.Sprintf("Project %d", i+1)}
	}
	return out
}

// failingSource fails every GetPage call after the first n successes.
type failingSource struct {
	inner     domain.ProjectSource
	failAfter int
	calls     int
}

func (f *failingSource) GetPage(ctx context.Context, page, pageSize int, locale string) (domain.Page, error) {
	f.calls++
	if f.calls > f.failAfter {
		return domain.Page{}, domain.ErrSourceUnavailable
	}
	return f.inner.GetPage(ctx, page, pageSize, locale)
}

func seeded(t *testing.T, total, pageSize int) (*loader.Loader, domain.ProjectSource) {
	t.Helper()
	src := catalog.New(projects(total), nil)
	first, err := src.GetPage(context.Background(), 1, pageSize, "")
	require.NoError(t, err)

	l := loader.New(src, 0, "", nil)
	l.Initialize("", first.Items, pageSize, first.TotalCount)
	return l, src
}

func TestLoader_ScenarioFullDrain(t *testing.T) {
	ctx := context.Background()
	l, _ := seeded(t, 18, 5)

	require.Len(t, l.Items(), 5)
	require.Equal(t, 13, l.Remaining())
	require.True(t, l.HasMore())

	l.LoadMore(ctx)
	require.NoError(t, l.LastError())
	require.Len(t, l.Items(), 10)
	require.Equal(t, 8, l.Remaining())

	l.LoadMore(ctx)
	require.Len(t, l.Items(), 15)
	require.Equal(t, 3, l.Remaining())

	l.LoadMore(ctx)
	require.Len(t, l.Items(), 18)
	require.True(t, l.AllLoaded())
	require.False(t, l.HasMore())
	require.Equal(t, 0, l.Remaining())

	// Further loads are no-ops.
	l.LoadMore(ctx)
	require.Len(t, l.Items(), 18)
	require.False(t, l.IsLoading())
}

func TestLoader_AppendOnlyPrefixOrder(t *testing.T) {
	ctx := context.Background()
	l, _ := seeded(t, 18, 5)

	var snapshots [][]string
	snapshot := func() {
		ids := make([]string, 0, l.Len())
		for _, p := range l.Items() {
			ids = append(ids, p.ID)
		}
		snapshots = append(snapshots, ids)
	}

	snapshot()
	for l.HasMore() {
		l.LoadMore(ctx)
		require.NoError(t, l.LastError())
		snapshot()
	}

	// Each snapshot is a prefix of the next: nothing disappears or moves.
	for i := 1; i < len(snapshots); i++ {
		prev, cur := snapshots[i-1], snapshots[i]
		require.GreaterOrEqual(t, len(cur), len(prev))
		require.Equal(t, prev, cur[:len(prev)])
	}

	// Final list is pages 1..4 in order with unique ids.
	final := snapshots[len(snapshots)-1]
	require.Len(t, final, 18)
	seen := make(map[string]bool)
	for _, id := range final {
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestLoader_SingleFlight(t *testing.T) {
	l, _ := seeded(t, 18, 5)

	page, gen, ok := l.StartLoad()
	require.True(t, ok)
	require.Equal(t, 2, page)
	require.True(t, l.IsLoading())

	// A second start while loading changes nothing.
	_, _, ok = l.StartLoad()
	require.False(t, ok)
	require.Len(t, l.Items(), 5)

	l.CompleteLoad(gen, page, projects(18)[5:10], nil)
	require.False(t, l.IsLoading())
	require.Len(t, l.Items(), 10)
}

func TestLoader_ErrorPreservesState(t *testing.T) {
	ctx := context.Background()
	src := &failingSource{inner: catalog.New(projects(18), nil), failAfter: 1}
	first, err := src.GetPage(ctx, 1, 5, "")
	require.NoError(t, err)

	l := loader.New(src, 0, "", nil)
	l.Initialize("", first.Items, 5, first.TotalCount)

	before := append([]domain.Project(nil), l.Items()...)
	l.LoadMore(ctx)

	require.Error(t, l.LastError())
	require.ErrorIs(t, l.LastError(), domain.ErrSourceUnavailable)
	require.False(t, l.IsLoading())
	require.Equal(t, before, l.Items())

	// Retry re-requests the same page and clears the previous error.
	src.failAfter = src.calls + 1
	l.LoadMore(ctx)
	require.NoError(t, l.LastError())
	require.Len(t, l.Items(), 10)
	require.Equal(t, "p06", l.Items()[5].ID)
}

func TestLoader_StaleGenerationDropped(t *testing.T) {
	l, _ := seeded(t, 18, 5)

	page, gen, ok := l.StartLoad()
	require.True(t, ok)

	// Re-initialize while the fetch is in flight; the old completion must
	// not touch the new incarnation.
	l.Initialize("", projects(18)[:5], 5, 18)
	l.CompleteLoad(gen, page, projects(18)[5:10], nil)

	require.Len(t, l.Items(), 5)
	require.False(t, l.IsLoading())
	require.NoError(t, l.LastError())
}

func TestLoader_StaleFetchDroppedAcrossLocaleReinit(t *testing.T) {
	l, _ := seeded(t, 18, 5)

	// A load starts, then the session restarts in another locale before
	// the fetch lands, and a new load starts for the very same page.
	oldPage, oldGen, ok := l.StartLoad()
	require.True(t, ok)

	l.Initialize("pt-BR", projects(18)[:5], 5, 18)
	newPage, newGen, ok := l.StartLoad()
	require.True(t, ok)
	require.Equal(t, oldPage, newPage)
	require.NotEqual(t, oldGen, newGen)

	// The old session's completion arrives late and must be dropped even
	// though a load is outstanding for the same page number.
	stale := projects(18)[5:10]
	stale[0].Title = "Wrong-session title"
	l.CompleteLoad(oldGen, oldPage, stale, nil)
	require.Len(t, l.Items(), 5)
	require.True(t, l.IsLoading())

	// The new session's completion still applies normally.
	l.CompleteLoad(newGen, newPage, projects(18)[5:10], nil)
	require.False(t, l.IsLoading())
	require.Len(t, l.Items(), 10)
	require.Equal(t, "Project 6", l.Items()[5].Title)
}

func TestLoader_CompleteWithoutStartIgnored(t *testing.T) {
	l, _ := seeded(t, 18, 5)

	page, gen, ok := l.StartLoad()
	require.True(t, ok)
	l.CompleteLoad(gen, page, projects(18)[5:10], nil)
	require.Len(t, l.Items(), 10)

	// A duplicate completion with no load outstanding changes nothing.
	l.CompleteLoad(gen, page, projects(18)[5:10], errors.New("late"))
	require.Len(t, l.Items(), 10)
	require.NoError(t, l.LastError())
}

func TestLoader_LoadRefusedWhenComplete(t *testing.T) {
	l, _ := seeded(t, 5, 5)

	require.True(t, l.AllLoaded())
	_, _, ok := l.StartLoad()
	require.False(t, ok)
}
