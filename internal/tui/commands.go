package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/dmelani/vitrine/internal/loader"
)

// Command factories for async operations

// fetchTimeout bounds a single page fetch. The static catalog answers
// immediately; the bound matters only once a networked source replaces it.
const fetchTimeout = 30 * time.Second

// LoadInitialCmd fetches page 1 straight from the source, bypassing the
// loader, so the first batch paints as fast as possible.
func LoadInitialCmd(source domain.ProjectSource, pageSize int, locale string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		page, err := source.GetPage(ctx, 1, pageSize, locale)
		return InitialPageMsg{Page: page, Err: err}
	}
}

// LoadPageCmd fetches one page for a load started with StartLoad. The
// result carries the loader generation so a stale completion is dropped
// rather than applied to a re-initialized loader.
func LoadPageCmd(l *loader.Loader, gen, pageNum int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		page, err := l.Fetch(ctx, pageNum)
		return PageLoadedMsg{Generation: gen, PageNum: pageNum, Items: page.Items, Err: err}
	}
}

// SwitchLocaleCmd re-reads page 1 in the new locale. The loader restarts
// from scratch afterwards; its generation bump abandons any in-flight load.
func SwitchLocaleCmd(source domain.ProjectSource, pageSize int, locale string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		page, err := source.GetPage(ctx, 1, pageSize, locale)
		return LocaleChangedMsg{Locale: locale, Page: page, Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
