package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/dmelani/vitrine/internal/i18n"
	"github.com/dmelani/vitrine/internal/tui/styles"
	"github.com/dmelani/vitrine/internal/visibility"
)

// section is a block of the detail pane with its own reveal tracker. The
// tracker's signal is driven by the scroll window: a section counts as in
// view when any of its lines is inside the viewport.
type section struct {
	heading string
	lines   []string

	signal  *visibility.Signal
	tracker *visibility.ScrollTracker

	// line range within the assembled document, set during layout
	top    int
	bottom int
}

func (s *section) close() {
	if s.tracker != nil {
		s.tracker.Close()
	}
}

// Detail renders the project under the cursor: summary, period, tags,
// gallery listing, videos, and links. Sections below the fold render
// concealed until they scroll into view.
type Detail struct {
	theme styles.Theme
	tr    *i18n.Translator

	project *domain.Project
	locale  string

	width   int
	height  int
	focused bool

	scrollOffset int

	motion   *visibility.Signal
	sections []*section
	doc      []string
}

// NewDetail creates the detail pane. motion is the shared reduced-motion
// signal; when it reports true every section renders revealed immediately.
func NewDetail(theme styles.Theme, tr *i18n.Translator, motion *visibility.Signal) Detail {
	return Detail{
		theme:  theme,
		tr:     tr,
		motion: motion,
	}
}

// SetTheme swaps the style table when the theme mode changes.
func (d *Detail) SetTheme(theme styles.Theme) {
	d.theme = theme
}

// SetTranslator swaps the message table and re-renders the current project.
func (d *Detail) SetTranslator(tr *i18n.Translator, locale string) {
	d.tr = tr
	d.locale = locale
	if d.project != nil {
		p := d.project
		d.project = nil
		d.SetProject(p)
	}
}

// SetSize updates the component dimensions and re-wraps the section text
// to the new width.
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.reflow()
}

// reflow rebuilds section text at the current width while keeping each
// section's reveal tracker, so a resize never conceals what the user has
// already seen.
func (d *Detail) reflow() {
	if d.project == nil {
		return
	}

	secs := d.buildSections(d.project)
	if len(secs) != len(d.sections) {
		// Section structure only depends on the project, not the width,
		// so this is unreachable; rebuild from scratch if it ever isn't.
		d.closeSections()
		for _, s := range secs {
			s.signal = visibility.NewSignal(false)
			s.tracker = visibility.NewScrollTracker(d.motion, true)
			s.tracker.Attach(s.signal)
		}
	} else {
		for i, s := range secs {
			s.signal = d.sections[i].signal
			s.tracker = d.sections[i].tracker
		}
	}
	d.sections = secs

	d.layout()
	d.clampScroll()
	d.syncVisibility()
}

// SetFocused sets the focus state
func (d *Detail) SetFocused(focused bool) {
	d.focused = focused
}

// SetProject replaces the shown project and rebuilds the section trackers.
// Passing the project already shown is a no-op so cursor repaints are cheap.
func (d *Detail) SetProject(p *domain.Project) {
	if d.project != nil && p != nil && d.project.ID == p.ID {
		return
	}
	d.closeSections()

	d.project = p
	d.scrollOffset = 0
	d.sections = nil
	d.doc = nil
	if p == nil {
		return
	}

	d.sections = d.buildSections(p)
	for _, s := range d.sections {
		s.signal = visibility.NewSignal(false)
		s.tracker = visibility.NewScrollTracker(d.motion, true)
		s.tracker.Attach(s.signal)
	}

	d.layout()
	d.syncVisibility()
}

// Close releases every section tracker. Safe to call more than once.
func (d *Detail) Close() {
	d.closeSections()
	d.sections = nil
}

func (d *Detail) closeSections() {
	for _, s := range d.sections {
		s.close()
	}
}

func (d *Detail) buildSections(p *domain.Project) []*section {
	interior := d.interiorWidth()

	var secs []*section

	title := p.TitleIn(d.locale)
	summary := p.SummaryIn(d.locale)
	head := &section{
		heading: title,
		lines:   wrap(summary, interior),
	}
	secs = append(secs, head)

	meta := &section{heading: d.tr.T("detail.period")}
	period := p.FormattedPeriod()
	if p.Period.End == "" && p.Period.Start != "" {
		period = p.Period.Start + " – " + d.tr.T("detail.ongoing")
	}
	meta.lines = append(meta.lines, period)
	if tags := p.TagLine(); tags != "" {
		meta.lines = append(meta.lines, d.tr.T("detail.tags")+": "+tags)
	}
	secs = append(secs, meta)

	if n := p.ImageCount(); n > 0 {
		g := &section{heading: d.tr.T("detail.gallery")}
		g.lines = append(g.lines, d.tr.Tf("detail.images", n))
		for i, img := range p.Images {
			label := img.Caption
			if label == "" {
				label = img.Path
			}
			g.lines = append(g.lines, "  "+p.ImageLabel(i)+"  "+styles.Truncate(label, interior-8))
		}
		secs = append(secs, g)
	}

	if len(p.Videos) > 0 {
		v := &section{heading: d.tr.T("detail.videos")}
		for _, vid := range p.Videos {
			label := vid.Caption
			if label == "" {
				label = vid.Path
			}
			v.lines = append(v.lines, "  "+styles.Truncate(label, interior-2))
		}
		secs = append(secs, v)
	}

	if len(p.Links) > 0 {
		l := &section{heading: d.tr.T("detail.links")}
		for _, link := range p.Links {
			l.lines = append(l.lines, "  "+link.Label+"  "+styles.Truncate(link.URL, interior-len(link.Label)-4))
		}
		secs = append(secs, l)
	}

	return secs
}

// layout assigns each section its line range in the assembled document.
func (d *Detail) layout() {
	d.doc = d.doc[:0]
	for i, s := range d.sections {
		if i > 0 {
			d.doc = append(d.doc, "")
		}
		s.top = len(d.doc)
		d.doc = append(d.doc, s.heading)
		d.doc = append(d.doc, s.lines...)
		s.bottom = len(d.doc) - 1
	}
}

// syncVisibility feeds the scroll window into each section's signal.
func (d *Detail) syncVisibility() {
	top := d.scrollOffset
	bottom := d.scrollOffset + d.visibleLines() - 1
	for _, s := range d.sections {
		inView := s.top <= bottom && s.bottom >= top
		s.signal.Set(inView)
	}
}

func (d *Detail) visibleLines() int {
	v := d.height - BorderHeight
	if v < 1 {
		v = 1
	}
	return v
}

func (d *Detail) interiorWidth() int {
	w := d.width - BorderWidth - HorizontalPadding
	if w < 10 {
		w = 10
	}
	return w
}

func (d *Detail) maxScroll() int {
	m := len(d.doc) - d.visibleLines()
	if m < 0 {
		m = 0
	}
	return m
}

func (d *Detail) clampScroll() {
	if d.scrollOffset > d.maxScroll() {
		d.scrollOffset = d.maxScroll()
	}
	if d.scrollOffset < 0 {
		d.scrollOffset = 0
	}
}

// Update handles messages
func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd) {
	if !d.focused || d.project == nil {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		before := d.scrollOffset
		switch keyMsg.String() {
		case "j", "down":
			d.scrollOffset++
		case "k", "up":
			d.scrollOffset--
		case "ctrl+d":
			d.scrollOffset += d.visibleLines() / 2
		case "ctrl+u":
			d.scrollOffset -= d.visibleLines() / 2
		case "g", "home":
			d.scrollOffset = 0
		case "G", "end":
			d.scrollOffset = d.maxScroll()
		}
		d.clampScroll()
		if d.scrollOffset != before {
			d.syncVisibility()
		}
	}

	return d, nil
}

// View renders the component
func (d Detail) View() string {
	style := d.theme.InactiveBorder
	if d.focused {
		style = d.theme.ActiveBorder
	}

	var content string
	if d.project == nil {
		content = d.theme.Dim.Render(d.tr.T("list.empty"))
	} else {
		content = d.renderDoc()
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(d.width - frameW).
		Height(d.height - frameH).
		Render(content)
}

func (d Detail) renderDoc() string {
	end := d.scrollOffset + d.visibleLines()
	if end > len(d.doc) {
		end = len(d.doc)
	}

	var out []string
	for i := d.scrollOffset; i < end; i++ {
		out = append(out, d.renderLine(i))
	}
	return strings.Join(out, "\n")
}

// renderLine styles one document line according to its section's reveal
// state. Headings use the title style once revealed.
func (d Detail) renderLine(i int) string {
	s := d.sectionAt(i)
	if s == nil {
		return d.doc[i]
	}

	revealed := s.tracker.HasBeenInView()

	if i == s.top {
		if revealed {
			return d.theme.Title.Render(d.doc[i])
		}
		return d.theme.Concealed.Render(d.doc[i])
	}
	if revealed {
		return d.theme.Revealed.Render(d.doc[i])
	}
	return d.theme.Concealed.Render(d.doc[i])
}

func (d Detail) sectionAt(line int) *section {
	for _, s := range d.sections {
		if line >= s.top && line <= s.bottom {
			return s
		}
	}
	return nil
}

// RevealedCount reports how many sections have been seen. Exposed for tests.
func (d Detail) RevealedCount() int {
	n := 0
	for _, s := range d.sections {
		if s.tracker.HasBeenInView() {
			n++
		}
	}
	return n
}

// wrap is a simple word wrapper for summary text.
func wrap(s string, width int) []string {
	if width < 1 {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return lines
}
