package tui

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmelani/vitrine/internal/config"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/dmelani/vitrine/internal/i18n"
	"github.com/dmelani/vitrine/internal/loader"
	"github.com/dmelani/vitrine/internal/prefs"
	"github.com/dmelani/vitrine/internal/search"
	"github.com/dmelani/vitrine/internal/tui/components"
	"github.com/dmelani/vitrine/internal/tui/styles"
	"github.com/dmelani/vitrine/internal/visibility"
)

const statusClearDelay = 3 * time.Second

type focusArea int

const (
	focusList focusArea = iota
	focusDetail
)

// Model is the root application model.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	source domain.ProjectSource
	ldr    *loader.Loader
	index  *search.Index
	store  *prefs.Store

	tr     *i18n.Translator
	locale string

	themeMode config.ThemeMode
	theme     styles.Theme

	// motion is the shared reduced-motion signal the scroll trackers
	// observe. The M key flips it at runtime.
	motion       *visibility.Signal
	reduceMotion bool

	list     components.ProjectList
	detail   components.Detail
	lightbox components.LightboxView

	width  int
	height int
	ready  bool

	focus    focusArea
	showHelp bool

	status    string
	statusErr bool
}

// NewModel builds the root model. Stored preferences override the config
// file's UI defaults; the config file stays untouched.
func NewModel(cfg *config.Config, source domain.ProjectSource, store *prefs.Store, logger *slog.Logger) Model {
	themeMode := cfg.UI.Theme
	locale := cfg.UI.Locale
	reduceMotion := cfg.UI.ReduceMotion

	if store != nil {
		if v, ok := store.Get(domain.PrefThemeMode); ok && config.ValidTheme(config.ThemeMode(v)) {
			themeMode = config.ThemeMode(v)
		}
		if v, ok := store.Get(domain.PrefLocale); ok && v != "" {
			locale = v
		}
		if v, ok := store.Get(domain.PrefReduceMotion); ok {
			reduceMotion = v == "true"
		}
	}

	tr := i18n.New(locale)
	locale = tr.Locale()
	theme := styles.ThemeFor(themeMode)
	motion := visibility.NewSignal(reduceMotion)

	delay := time.Duration(cfg.Catalog.LoadDelayMS) * time.Millisecond

	m := Model{
		cfg:          cfg,
		logger:       logger,
		source:       source,
		ldr:          loader.New(source, delay, locale, logger),
		index:        search.NewIndex(logger),
		store:        store,
		tr:           tr,
		locale:       locale,
		themeMode:    themeMode,
		theme:        theme,
		motion:       motion,
		reduceMotion: reduceMotion,
		list:         components.NewProjectList(theme, tr),
		detail:       components.NewDetail(theme, tr, motion),
		lightbox:     components.NewLightboxView(theme, tr),
	}
	m.list.SetFocused(true)
	m.detail.SetTranslator(tr, locale)
	return m
}

// Init starts the initial catalog fetch.
func (m Model) Init() tea.Cmd {
	return LoadInitialCmd(m.source, m.cfg.Catalog.PageSize, m.locale)
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case InitialPageMsg:
		return m.handleInitialPage(msg)

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case LocaleChangedMsg:
		return m.handleLocaleChanged(msg)

	case StatusMsg:
		m.status = msg.Message
		m.statusErr = msg.IsError
		return m, ClearStatusCmd(statusClearDelay)

	case ClearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.MouseMsg:
		if m.lightbox.IsOpen() {
			var cmd tea.Cmd
			m.lightbox, cmd = m.lightbox.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-filter
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The lightbox overlay swallows everything while open
	if m.lightbox.IsOpen() {
		var cmd tea.Cmd
		m.lightbox, cmd = m.lightbox.Update(msg)
		return m, cmd
	}

	// Help overlay: any key closes it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Filter typing routes to the list before global bindings
	if m.list.IsFilterTyping() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.detail.SetProject(m.list.SelectedProject())
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.list.IsFiltering() {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			m.detail.SetProject(m.list.SelectedProject())
			return m, cmd
		}
		if m.focus == focusDetail {
			m.setFocus(focusList)
		}
		return m, nil

	case msg.String() == "tab":
		if m.focus == focusList {
			m.setFocus(focusDetail)
		} else {
			m.setFocus(focusList)
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if m.focus == focusList && m.list.SelectedProject() != nil {
			m.setFocus(focusDetail)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter) && m.focus == focusList:
		m.list.ToggleFilter()
		m.resize()
		return m, nil

	case key.Matches(msg, Keys.LoadMore):
		return m, m.startLoad()

	case key.Matches(msg, Keys.OpenGallery):
		m.lightbox.Open(m.list.SelectedProject(), 0)
		return m, nil

	case key.Matches(msg, Keys.CycleTheme):
		return m.cycleTheme()

	case key.Matches(msg, Keys.CycleLocale):
		return m.cycleLocale()

	case key.Matches(msg, Keys.ToggleMotion):
		return m.toggleMotion()
	}

	// Remaining keys go to the focused pane
	var cmd tea.Cmd
	switch m.focus {
	case focusList:
		m.list, cmd = m.list.Update(msg)
		m.detail.SetProject(m.list.SelectedProject())
	case focusDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m Model) handleInitialPage(msg InitialPageMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("initial page load failed", "error", msg.Err)
		m.status = m.tr.T("list.load_failed")
		m.statusErr = true
		return m, nil
	}

	m.ldr.Initialize(m.locale, msg.Page.Items, m.cfg.Catalog.PageSize, msg.Page.TotalCount)
	m.index.Reset()
	m.index.Add(msg.Page.Items)

	m.list.SetProjects(m.ldr.Items())
	m.syncLoadState()
	m.detail.SetProject(m.list.SelectedProject())

	m.logger.Info("catalog ready",
		"shown", m.ldr.Len(),
		"total", m.ldr.Total())
	return m, nil
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	before := m.ldr.Len()
	m.ldr.CompleteLoad(msg.Generation, msg.PageNum, msg.Items, msg.Err)

	if msg.Err != nil {
		m.logger.Warn("page load failed", "page", msg.PageNum, "error", msg.Err)
	} else if m.ldr.Len() > before {
		m.index.Add(m.ldr.Items()[before:])
	}

	m.list.SetProjects(m.ldr.Items())
	m.syncLoadState()
	m.detail.SetProject(m.list.SelectedProject())
	return m, nil
}

func (m Model) handleLocaleChanged(msg LocaleChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("locale switch failed", "locale", msg.Locale, "error", msg.Err)
		m.status = m.tr.T("list.load_failed")
		m.statusErr = true
		return m, ClearStatusCmd(statusClearDelay)
	}

	m.locale = msg.Locale
	m.tr = i18n.New(msg.Locale)

	// Re-initialize the existing loader rather than replacing it: the
	// generation bump is what drops completions still in flight from the
	// old locale.
	m.ldr.Initialize(m.locale, msg.Page.Items, m.cfg.Catalog.PageSize, msg.Page.TotalCount)
	m.index.Reset()
	m.index.Add(msg.Page.Items)

	m.list.SetTranslator(m.tr)
	m.list.SetProjects(m.ldr.Items())
	m.detail.SetTranslator(m.tr, m.locale)
	m.detail.SetProject(m.list.SelectedProject())
	m.lightbox.SetTranslator(m.tr)
	m.syncLoadState()

	m.savePref(domain.PrefLocale, m.locale)

	m.status = m.tr.Tf("status.locale", m.locale)
	m.statusErr = false
	return m, ClearStatusCmd(statusClearDelay)
}

// startLoad begins one load cycle. The loader refuses while loading or
// after completion, so mashing m is harmless.
func (m *Model) startLoad() tea.Cmd {
	page, gen, ok := m.ldr.StartLoad()
	if !ok {
		return nil
	}
	m.syncLoadState()
	return LoadPageCmd(m.ldr, gen, page)
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	switch m.themeMode {
	case config.ThemeDark:
		m.themeMode = config.ThemeLight
	case config.ThemeLight:
		m.themeMode = config.ThemeHighContrast
	default:
		m.themeMode = config.ThemeDark
	}

	m.theme = styles.ThemeFor(m.themeMode)
	m.list.SetTheme(m.theme)
	m.detail.SetTheme(m.theme)
	m.lightbox.SetTheme(m.theme)

	m.savePref(domain.PrefThemeMode, string(m.themeMode))

	m.status = m.tr.Tf("status.theme", m.themeName())
	m.statusErr = false
	return m, ClearStatusCmd(statusClearDelay)
}

func (m Model) themeName() string {
	switch m.themeMode {
	case config.ThemeLight:
		return m.tr.T("theme.light")
	case config.ThemeHighContrast:
		return m.tr.T("theme.highcontrast")
	default:
		return m.tr.T("theme.dark")
	}
}

func (m Model) cycleLocale() (tea.Model, tea.Cmd) {
	supported := i18n.SupportedLocales()
	next := supported[0]
	for i, loc := range supported {
		if loc == m.locale {
			next = supported[(i+1)%len(supported)]
			break
		}
	}
	if next == m.locale {
		return m, nil
	}
	return m, SwitchLocaleCmd(m.source, m.cfg.Catalog.PageSize, next)
}

func (m Model) toggleMotion() (tea.Model, tea.Cmd) {
	m.reduceMotion = !m.reduceMotion
	m.motion.Set(m.reduceMotion)

	m.savePref(domain.PrefReduceMotion, strconv.FormatBool(m.reduceMotion))

	if m.reduceMotion {
		m.status = m.tr.T("status.motion_on")
	} else {
		m.status = m.tr.T("status.motion_off")
	}
	m.statusErr = false
	return m, ClearStatusCmd(statusClearDelay)
}

func (m *Model) savePref(key, value string) {
	if m.store == nil {
		return
	}
	if err := m.store.Set(key, value); err != nil {
		m.logger.Warn("preference save failed", "key", key, "error", err)
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.list.SetFocused(f == focusList)
	m.detail.SetFocused(f == focusDetail)
}

func (m *Model) syncLoadState() {
	m.list.SetLoadState(components.LoadState{
		Loading:   m.ldr.IsLoading(),
		Remaining: m.ldr.Remaining(),
		AllLoaded: m.ldr.AllLoaded(),
		Err:       m.ldr.LastError(),
	})
}

func (m *Model) resize() {
	if !m.ready {
		return
	}

	statusHeight := 1
	bodyHeight := m.height - statusHeight

	listWidth := m.width * 2 / 5
	if listWidth < 30 {
		listWidth = 30
	}
	if listWidth > m.width-20 {
		listWidth = m.width / 2
	}
	detailWidth := m.width - listWidth

	m.list.SetSize(listWidth, bodyHeight)
	m.detail.SetSize(detailWidth, bodyHeight)
	m.lightbox.SetSize(m.width, m.height)
}

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	if m.lightbox.IsOpen() {
		return m.lightbox.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.detail.View())
	out := body + "\n" + m.renderStatusBar()

	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return out
}

func (m Model) renderStatusBar() string {
	if m.status != "" {
		if m.statusErr {
			return m.theme.Error.Render(" " + m.status)
		}
		return m.theme.StatusBar.Render(" " + m.status)
	}

	left := m.theme.Title.Render(" " + m.tr.T("app.title"))
	right := m.theme.StatusBar.Render(strings.Join([]string{
		m.hint(Keys.Help),
		m.hint(Keys.LoadMore),
		m.hint(Keys.OpenGallery),
		m.hint(Keys.Quit),
	}, " · "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) hint(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

func (m Model) renderHelpOverlay() string {
	rows := []struct {
		binding key.Binding
		msgKey  string
	}{
		{Keys.Up, ""},
		{Keys.Down, ""},
		{Keys.Enter, "help.open"},
		{Keys.Filter, "help.filter"},
		{Keys.LoadMore, "help.load_more"},
		{Keys.OpenGallery, "help.open"},
		{Keys.CycleTheme, "help.theme"},
		{Keys.CycleLocale, "help.language"},
		{Keys.ToggleMotion, "help.motion"},
		{Keys.Quit, "help.quit"},
	}

	var lines []string
	lines = append(lines, m.theme.ModalTitle.Render(m.tr.T("app.title")))
	for _, r := range rows {
		h := r.binding.Help()
		desc := h.Desc
		if r.msgKey != "" {
			desc = m.tr.T(r.msgKey)
		}
		lines = append(lines, m.theme.HelpKey.Render(styles.Pad(h.Key, 8))+m.theme.HelpDesc.Render(desc))
	}

	modal := m.theme.Modal.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
