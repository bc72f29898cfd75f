package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmelani/vitrine/internal/domain"
	"github.com/dmelani/vitrine/internal/gallery"
	"github.com/dmelani/vitrine/internal/i18n"
	"github.com/dmelani/vitrine/internal/tui/styles"
)

// LightboxView is the full-screen gallery overlay. Arrow keys and mouse
// drags both drive the same gallery state: keys go straight to the
// lightbox, drags run through the swipe classifier first.
type LightboxView struct {
	theme styles.Theme
	tr    *i18n.Translator

	project *domain.Project
	state   *gallery.Lightbox
	swipe   gallery.SwipeClassifier

	width  int
	height int
}

// NewLightboxView creates the overlay in its closed state.
func NewLightboxView(theme styles.Theme, tr *i18n.Translator) LightboxView {
	return LightboxView{
		theme: theme,
		tr:    tr,
		state: gallery.NewLightbox(0),
		swipe: gallery.SwipeClassifier{Threshold: gallery.DefaultSwipeThreshold},
	}
}

// SetTheme swaps the style table when the theme mode changes.
func (lv *LightboxView) SetTheme(theme styles.Theme) {
	lv.theme = theme
}

// SetTranslator swaps the message table when the locale changes.
func (lv *LightboxView) SetTranslator(tr *i18n.Translator) {
	lv.tr = tr
}

// Minimum drag budgets in cells, so tiny terminals still need deliberate
// motion rather than a one-cell twitch.
const (
	minSwipeCols = 8
	minSwipeRows = 3
)

// SetSize updates the overlay dimensions and scales the swipe budgets to
// the screen: a quarter of the width sideways, a third of the height down.
// Terminal cells are roughly twice as tall as wide, so the vertical budget
// must be its own, smaller number; reusing the horizontal one would put a
// close swipe beyond the bottom of most terminals.
func (lv *LightboxView) SetSize(width, height int) {
	lv.width = width
	lv.height = height

	h := width / 4
	if h < minSwipeCols {
		h = minSwipeCols
	}
	v := height / 3
	if v < minSwipeRows {
		v = minSwipeRows
	}
	lv.swipe.Threshold = h
	lv.swipe.VerticalThreshold = v
}

// Open shows the overlay on the project's gallery, starting at image i.
// Projects without images leave the overlay closed.
func (lv *LightboxView) Open(p *domain.Project, i int) {
	if p == nil || p.ImageCount() == 0 {
		return
	}
	lv.project = p
	lv.state = gallery.NewLightbox(p.ImageCount())
	lv.swipe.MaxImages = p.ImageCount()
	lv.state.Open(i)
}

// Close hides the overlay.
func (lv *LightboxView) Close() {
	lv.state.Close()
	lv.project = nil
}

// IsOpen reports whether the overlay is showing.
func (lv LightboxView) IsOpen() bool {
	return lv.state.IsOpen()
}

// Selected returns the current image index when open.
func (lv LightboxView) Selected() (int, bool) {
	return lv.state.Selected()
}

// Update handles messages while the overlay is open.
func (lv LightboxView) Update(msg tea.Msg) (LightboxView, tea.Cmd) {
	if !lv.state.IsOpen() {
		return lv, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			lv.Close()
		case "right", "l", "j", " ":
			lv.state.Next()
		case "left", "h", "k":
			lv.state.Prev()
		case "g", "home":
			lv.state.Open(0)
		case "G", "end":
			lv.state.Open(lv.state.Count() - 1)
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				lv.swipe.Start(msg.X, msg.Y)
			}
		case tea.MouseActionRelease:
			lv.applySwipe(lv.swipe.End(msg.X, msg.Y))
		}
	}

	return lv, nil
}

func (lv *LightboxView) applySwipe(a gallery.Action) {
	switch a {
	case gallery.ActionNext:
		lv.state.Next()
	case gallery.ActionPrev:
		lv.state.Prev()
	case gallery.ActionClose:
		lv.Close()
	}
}

// View renders the overlay centered in the available area.
func (lv LightboxView) View() string {
	selected, open := lv.state.Selected()
	if !open || lv.project == nil {
		return ""
	}

	img := lv.project.Images[selected]

	title := lv.theme.ModalTitle.Render(lv.project.Title)

	frameW := lv.width * 2 / 3
	if frameW < 24 {
		frameW = 24
	}
	frameH := lv.height / 2
	if frameH < 6 {
		frameH = 6
	}

	// Placeholder canvas for the image itself; a terminal renders the
	// path, dimensions, and caption rather than pixels.
	canvas := lv.theme.Faint.
		Width(frameW - 4).
		Height(frameH - 6).
		Align(lipgloss.Center, lipgloss.Center).
		Render(fmt.Sprintf("%s\n%dx%d", img.Path, img.Width, img.Height))

	caption := img.Caption
	if caption == "" {
		caption = lv.tr.Tf("lightbox.caption", lv.project.ImageLabel(selected))
	}

	position := lv.theme.Accent.Render(lv.project.ImageLabel(selected))
	hint := lv.theme.Dim.Render(lv.tr.T("lightbox.hint"))

	body := strings.Join([]string{
		title,
		canvas,
		lv.theme.Revealed.Render(styles.Truncate(caption, frameW-4)) + "  " + position,
		hint,
	}, "\n")

	modal := lv.theme.Modal.Width(frameW).Render(body)

	return lipgloss.Place(lv.width, lv.height, lipgloss.Center, lipgloss.Center, modal)
}
