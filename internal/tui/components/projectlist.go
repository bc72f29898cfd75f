package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/dmelani/vitrine/internal/i18n"
	"github.com/dmelani/vitrine/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the project list
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Padding inside the border (Padding(0,1) = 1 left + 1 right)
	HorizontalPadding = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Heading line at top of content area
	HeadingLines = 1

	// Load-state footer line at the bottom
	FooterLines = 1

	// Extra safety margin for item width calculations
	ItemWidthMargin = 2
)

// LoadState mirrors the loader-derived values the footer renders.
type LoadState struct {
	Loading   bool
	Remaining int
	AllLoaded bool
	Err       error
}

// ProjectList is the scrollable, filterable project browser.
type ProjectList struct {
	theme styles.Theme
	tr    *i18n.Translator

	projects []domain.Project

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into projects

	load LoadState
}

// NewProjectList creates a new project list component
func NewProjectList(theme styles.Theme, tr *i18n.Translator) ProjectList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = theme.Accent
	ti.TextStyle = theme.Accent

	return ProjectList{
		theme:       theme,
		tr:          tr,
		filterInput: ti,
	}
}

// SetProjects replaces the backing list, keeping the cursor on the same
// row where possible. Load-more appends, so the cursor is usually valid.
func (pl *ProjectList) SetProjects(projects []domain.Project) {
	pl.projects = projects
	if pl.cursor >= len(projects) {
		pl.cursor = len(projects) - 1
	}
	if pl.cursor < 0 {
		pl.cursor = 0
	}
	if pl.filterActive {
		pl.applyFilter()
	}
	pl.ensureVisible()
}

// SetTheme swaps the style table when the theme mode changes.
func (pl *ProjectList) SetTheme(theme styles.Theme) {
	pl.theme = theme
	pl.filterInput.PromptStyle = theme.Accent
	pl.filterInput.TextStyle = theme.Accent
}

// SetTranslator swaps the message table when the locale changes.
func (pl *ProjectList) SetTranslator(tr *i18n.Translator) {
	pl.tr = tr
}

// SetLoadState updates the loader-derived footer values.
func (pl *ProjectList) SetLoadState(state LoadState) {
	pl.load = state
}

// SetSize updates the component dimensions
func (pl *ProjectList) SetSize(width, height int) {
	pl.width = width
	pl.height = height
	pl.recalcMaxVisible()
}

// recalcMaxVisible accounts for heading, scroll indicators, footer, and
// the filter bar when active.
func (pl *ProjectList) recalcMaxVisible() {
	interiorHeight := pl.height - BorderHeight
	pl.maxVisible = interiorHeight - ScrollIndicatorLines - HeadingLines - FooterLines
	if pl.filterActive {
		pl.maxVisible--
	}
	if pl.maxVisible < 1 {
		pl.maxVisible = 1
	}
}

// SetFocused sets the focus state
func (pl *ProjectList) SetFocused(focused bool) {
	pl.focused = focused
}

// IsFocused returns the focus state
func (pl ProjectList) IsFocused() bool {
	return pl.focused
}

// Cursor returns the current cursor position
func (pl ProjectList) Cursor() int {
	return pl.cursor
}

// Count returns the number of rows currently shown (after filtering).
func (pl ProjectList) Count() int {
	if pl.filteredIdx != nil {
		return len(pl.filteredIdx)
	}
	return len(pl.projects)
}

// AtEnd reports whether the cursor sits on the last visible row.
func (pl ProjectList) AtEnd() bool {
	return pl.Count() > 0 && pl.cursor == pl.Count()-1
}

// SelectedProject returns the project under the cursor.
func (pl ProjectList) SelectedProject() *domain.Project {
	count := pl.Count()
	if count == 0 || pl.cursor >= count {
		return nil
	}
	return &pl.projects[pl.mapIndex(pl.cursor)]
}

// IsEmpty returns true if there are no rows
func (pl ProjectList) IsEmpty() bool {
	return pl.Count() == 0
}

// ensureVisible keeps the cursor inside the window
func (pl *ProjectList) ensureVisible() {
	if pl.cursor < pl.offset {
		pl.offset = pl.cursor
	}
	if pl.cursor >= pl.offset+pl.maxVisible {
		pl.offset = pl.cursor - pl.maxVisible + 1
	}
	if pl.offset < 0 {
		pl.offset = 0
	}
}

// ToggleFilter activates the filter input
func (pl *ProjectList) ToggleFilter() {
	pl.filterActive = true
	pl.filterInput.Focus()
	pl.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (pl ProjectList) IsFiltering() bool {
	return pl.filterActive
}

// IsFilterTyping returns true if the filter input is focused (typing mode)
func (pl ProjectList) IsFilterTyping() bool {
	return pl.filterActive && pl.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all rows
func (pl *ProjectList) ClearFilter() {
	pl.clearFilter()
}

func (pl *ProjectList) clearFilter() {
	pl.filterActive = false
	pl.filterQuery = ""
	pl.filteredIdx = nil
	pl.filterInput.SetValue("")
	pl.filterInput.Blur()
	pl.recalcMaxVisible()
}

// applyFilter filters rows based on the current query
func (pl *ProjectList) applyFilter() {
	query := pl.filterInput.Value()
	pl.filterQuery = query

	if query == "" {
		pl.filteredIdx = nil
		return
	}

	haystack := make([]string, len(pl.projects))
	for i, p := range pl.projects {
		haystack[i] = strings.ToLower(p.Title + " " + strings.Join(p.Tags, " "))
	}

	matches := fuzzy.Find(strings.ToLower(query), haystack)

	pl.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		pl.filteredIdx[i] = match.Index
	}

	pl.cursor = 0
	pl.offset = 0
}

// mapIndex maps a cursor position to the index in the backing slice
func (pl ProjectList) mapIndex(i int) int {
	if pl.filteredIdx != nil && i < len(pl.filteredIdx) {
		return pl.filteredIdx[i]
	}
	return i
}

// Update handles messages
func (pl ProjectList) Update(msg tea.Msg) (ProjectList, tea.Cmd) {
	if !pl.focused {
		return pl, nil
	}

	// Typing mode: route everything to the text input
	if pl.IsFilterTyping() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				pl.clearFilter()
				return pl, nil
			case "enter":
				pl.filterInput.Blur()
				return pl, nil
			case "backspace":
				if pl.filterInput.Value() == "" {
					pl.clearFilter()
					return pl, nil
				}
			}
		}

		var cmd tea.Cmd
		pl.filterInput, cmd = pl.filterInput.Update(msg)
		pl.applyFilter()
		return pl, cmd
	}

	// Filter active but blurred: navigation over filtered rows
	if pl.filterActive {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				pl.clearFilter()
				return pl, nil
			case "/":
				pl.filterInput.Focus()
				return pl, nil
			}
		}
	}

	count := pl.Count()
	if count == 0 {
		return pl, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if pl.cursor < count-1 {
				pl.cursor++
				pl.ensureVisible()
			}
		case "k", "up":
			if pl.cursor > 0 {
				pl.cursor--
				pl.ensureVisible()
			}
		case "g", "home":
			pl.cursor = 0
			pl.offset = 0
		case "G", "end":
			pl.cursor = count - 1
			pl.ensureVisible()
		case "ctrl+d":
			pl.cursor += pl.maxVisible / 2
			if pl.cursor >= count {
				pl.cursor = count - 1
			}
			pl.ensureVisible()
		case "ctrl+u":
			pl.cursor -= pl.maxVisible / 2
			if pl.cursor < 0 {
				pl.cursor = 0
			}
			pl.ensureVisible()
		}
	}

	return pl, nil
}

// View renders the component
func (pl ProjectList) View() string {
	style := pl.theme.InactiveBorder
	if pl.focused {
		style = pl.theme.ActiveBorder
	}

	content := pl.renderList()

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(pl.width - frameW).
		Height(pl.height - frameH).
		Render(content)
}

func (pl ProjectList) renderList() string {
	itemWidth := pl.width - BorderWidth - HorizontalPadding - ItemWidthMargin

	heading := pl.theme.Accent.Render(pl.tr.T("list.heading"))

	count := pl.Count()
	if count == 0 {
		emptyMsg := pl.theme.Dim.Render(pl.tr.T("list.empty"))
		if pl.filterActive && pl.filterQuery != "" {
			emptyMsg = pl.theme.Dim.Render(pl.tr.T("list.no_matches"))
		}
		out := heading + "\n" + " " + "\n" + emptyMsg + "\n" + " " + "\n" + pl.renderFooter()
		if pl.filterActive {
			out += "\n" + pl.renderFilterBar()
		}
		return out
	}

	var lines []string

	end := pl.offset + pl.maxVisible
	if end > count {
		end = count
	}

	for i := pl.offset; i < end; i++ {
		lines = append(lines, pl.renderRow(pl.projects[pl.mapIndex(i)], i == pl.cursor, itemWidth))
	}

	// ALWAYS reserve space for the scroll indicators to prevent layout shifts
	header := " "
	if pl.offset > 0 {
		header = pl.theme.Dim.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = pl.theme.Dim.Render("↓ more")
	}

	content := heading + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer + "\n" + pl.renderFooter()

	if pl.filterActive {
		content += "\n" + pl.renderFilterBar()
	}

	return content
}

// renderRow renders one project row
func (pl ProjectList) renderRow(p domain.Project, selected bool, width int) string {
	marker := "▪"
	markerFg := pl.theme.Palette.Accent

	title := p.Title
	if period := p.FormattedPeriod(); period != "" {
		title = title + "  " + period
	}
	title = styles.Truncate(title, width-14)

	badge := ""
	if n := p.ImageCount(); n > 0 {
		badge = " " + pl.tr.Tf("detail.images", n)
	}
	dim := pl.theme.Palette.TextDim

	parts := []styles.RowPart{
		{Text: marker, Foreground: &markerFg},
		{Text: " " + title, Foreground: nil},
		{Text: badge, Foreground: &dim},
	}

	return pl.theme.RenderListRow(parts, selected, width)
}

// renderFooter renders the load-state line under the list
func (pl ProjectList) renderFooter() string {
	switch {
	case pl.load.Loading:
		return pl.theme.Dim.Render(pl.tr.T("list.loading"))
	case pl.load.Err != nil:
		return pl.theme.Error.Render(pl.tr.T("list.load_failed"))
	case pl.load.AllLoaded:
		return pl.theme.Faint.Render(pl.tr.T("list.all_loaded"))
	default:
		more := pl.tr.T("list.load_more") + " (m) · " + pl.tr.Tf("list.remaining", pl.load.Remaining)
		return pl.theme.Accent.Render(more)
	}
}

// renderFilterBar renders the filter input bar
func (pl ProjectList) renderFilterBar() string {
	input := pl.filterInput.View()

	countStr := ""
	if pl.filterQuery != "" {
		countStr = pl.theme.Dim.Render(fmt.Sprintf(" [%d/%d]", pl.Count(), len(pl.projects)))
	}

	return input + countStr
}
