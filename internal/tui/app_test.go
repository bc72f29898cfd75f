package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmelani/vitrine/internal/catalog"
	"github.com/dmelani/vitrine/internal/config"
	"github.com/dmelani/vitrine/internal/tui"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) tui.Model {
	t.Helper()

	projects, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Catalog.PageSize = 5

	source := catalog.New(projects, config.NullLogger())
	m := tui.NewModel(cfg, source, nil, config.NullLogger())

	mdl, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = mdl.(tui.Model)

	// Run the initial fetch synchronously; the catalog answers immediately.
	msg := m.Init()()
	mdl, _ = m.Update(msg)
	return mdl.(tui.Model)
}

func press(t *testing.T, m tui.Model, keys ...string) (tui.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var mdl tea.Model
		mdl, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		m = mdl.(tui.Model)
	}
	return m, cmd
}

func TestModel_InitialPageShowsFirstBatch(t *testing.T) {
	m := newTestModel(t)

	require.Contains(t, m.View(), "Projects")
	require.Contains(t, m.View(), "13 more")
}

func TestModel_LoadMoreAppendsNextBatch(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "m")
	require.NotNil(t, cmd, "m should start a load")

	mdl, _ := m.Update(cmd())
	m = mdl.(tui.Model)

	require.Contains(t, m.View(), "8 more")
}

func TestModel_LoadMoreWhileLoadingIsNoop(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "m")
	require.NotNil(t, cmd)

	m, second := press(t, m, "m")
	require.Nil(t, second, "second m while loading must not start another load")

	mdl, _ := m.Update(cmd())
	m = mdl.(tui.Model)
	require.Contains(t, m.View(), "8 more")
}

func TestModel_DrainShowsAllLoaded(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 4; i++ {
		var cmd tea.Cmd
		m, cmd = press(t, m, "m")
		if cmd == nil {
			break
		}
		mdl, _ := m.Update(cmd())
		m = mdl.(tui.Model)
	}

	require.Contains(t, m.View(), "All projects loaded")

	_, cmd := press(t, m, "m")
	require.Nil(t, cmd, "load must be refused once everything is shown")
}

func TestModel_ThemeCycles(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "t")
	require.Contains(t, m.View(), "Theme: light")

	m, _ = press(t, m, "t")
	require.Contains(t, m.View(), "Theme: high contrast")

	m, _ = press(t, m, "t")
	require.Contains(t, m.View(), "Theme: dark")
}

func TestModel_LocaleSwitchTranslatesUI(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "L")
	require.NotNil(t, cmd, "L should fetch the catalog in the next locale")

	mdl, _ := m.Update(cmd())
	m = mdl.(tui.Model)

	view := m.View()
	require.Contains(t, view, "Projetos")
	require.Contains(t, view, "mais 13")
}

func TestModel_StaleLoadAcrossLocaleSwitchDropped(t *testing.T) {
	m := newTestModel(t)

	// Start a load in en-US but do not let its result land yet.
	m, staleCmd := press(t, m, "m")
	require.NotNil(t, staleCmd)

	// Switch to pt-BR while that fetch is in flight.
	m, localeCmd := press(t, m, "L")
	require.NotNil(t, localeCmd)
	mdl, _ := m.Update(localeCmd())
	m = mdl.(tui.Model)
	require.Contains(t, m.View(), "Projetos")

	// Start a fresh load in the new locale for the same page number.
	m, freshCmd := press(t, m, "m")
	require.NotNil(t, freshCmd)

	// The pre-switch result arrives late. It must be dropped: the list
	// stays at the seed page and the fresh load stays outstanding.
	mdl, _ = m.Update(staleCmd())
	m = mdl.(tui.Model)
	view := m.View()
	require.Contains(t, view, "Carregando…")
	require.NotContains(t, view, "mais 8")

	// The legitimate completion then applies normally.
	mdl, _ = m.Update(freshCmd())
	m = mdl.(tui.Model)
	view = m.View()
	require.Contains(t, view, "Projetos")
	require.Contains(t, view, "mais 8")
}

func TestModel_GalleryOpensAndCloses(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "o")
	view := m.View()
	require.Contains(t, view, "1/")

	mdl, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mdl.(tui.Model)
	require.Contains(t, m.View(), "Projects")
}

func TestModel_GalleryArrowsWrap(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "o")
	require.Contains(t, m.View(), "1/")

	// left from the first image wraps to the last
	mdl, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = mdl.(tui.Model)
	view := m.View()
	require.NotContains(t, view, " 1/")

	mdl, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = mdl.(tui.Model)
	require.Contains(t, m.View(), "1/")
}

func TestModel_FilterNarrowsList(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "/")
	m, _ = press(t, m, "z", "z", "z", "z")

	require.Contains(t, m.View(), "No matches")

	mdl, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = mdl.(tui.Model)
	require.Contains(t, m.View(), "Projects")
}

func TestModel_HelpOverlayToggles(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "?")
	require.Contains(t, m.View(), "load more")

	m, _ = press(t, m, "j")
	require.Contains(t, m.View(), "Projects")
}
