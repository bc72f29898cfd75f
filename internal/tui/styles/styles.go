// Package styles defines the color palettes and lipgloss style tables for
// the three theme modes.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dmelani/vitrine/internal/config"
)

// Palette is the color set for one theme mode.
type Palette struct {
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextFaint  lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

var (
	darkPalette = Palette{
		Accent:     lipgloss.Color("#7C9EF5"),
		Background: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#374151"),
		Text:       lipgloss.Color("#F9FAFB"),
		TextDim:    lipgloss.Color("#9CA3AF"),
		TextFaint:  lipgloss.Color("#4B5563"),
		Border:     lipgloss.Color("#6B7280"),
		Error:      lipgloss.Color("#EF4444"),
		Success:    lipgloss.Color("#10B981"),
	}

	lightPalette = Palette{
		Accent:     lipgloss.Color("#2563EB"),
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#E5E7EB"),
		Text:       lipgloss.Color("#111827"),
		TextDim:    lipgloss.Color("#6B7280"),
		TextFaint:  lipgloss.Color("#D1D5DB"),
		Border:     lipgloss.Color("#9CA3AF"),
		Error:      lipgloss.Color("#B91C1C"),
		Success:    lipgloss.Color("#047857"),
	}

	highContrastPalette = Palette{
		Accent:     lipgloss.Color("#FFFF00"),
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#FFFFFF"),
		Text:       lipgloss.Color("#FFFFFF"),
		TextDim:    lipgloss.Color("#FFFFFF"),
		TextFaint:  lipgloss.Color("#AAAAAA"),
		Border:     lipgloss.Color("#FFFFFF"),
		Error:      lipgloss.Color("#FF5555"),
		Success:    lipgloss.Color("#55FF55"),
	}
)

// PaletteFor returns the palette for a theme mode. Total: unknown modes
// get the dark palette.
func PaletteFor(mode config.ThemeMode) Palette {
	switch mode {
	case config.ThemeLight:
		return lightPalette
	case config.ThemeHighContrast:
		return highContrastPalette
	default:
		return darkPalette
	}
}

// Theme is the style table derived from one palette.
type Theme struct {
	Palette Palette

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Faint    lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	Badge    lipgloss.Style
	DimBadge lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Concealed renders sections that have not yet scrolled into view;
	// Revealed renders them once their tracker has seen them.
	Concealed lipgloss.Style
	Revealed  lipgloss.Style

	StatusBar lipgloss.Style
}

// NewTheme builds the style table for a palette.
func NewTheme(p Palette) Theme {
	return Theme{
		Palette: p,

		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),

		Title:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.TextDim),
		Dim:      lipgloss.NewStyle().Foreground(p.TextDim),
		Faint:    lipgloss.NewStyle().Foreground(p.TextFaint),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Success:  lipgloss.NewStyle().Foreground(p.Success),

		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		NormalItem: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Accent).
			Padding(0, 1),
		DimBadge: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Background(p.Surface).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		HelpKey:  lipgloss.NewStyle().Foreground(p.Accent),
		HelpDesc: lipgloss.NewStyle().Foreground(p.TextDim),

		Concealed: lipgloss.NewStyle().Foreground(p.TextFaint),
		Revealed:  lipgloss.NewStyle().Foreground(p.Text),

		StatusBar: lipgloss.NewStyle().Foreground(p.TextDim),
	}
}

// ThemeFor is shorthand for NewTheme(PaletteFor(mode)).
func ThemeFor(mode config.ThemeMode) Theme {
	return NewTheme(PaletteFor(mode))
}

// Truncate truncates a string to the given width with ellipsis. It cuts
// on rune boundaries; byte slicing would split the multibyte characters
// in the pt-BR strings.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads a string to the given width, truncating on rune boundaries.
func Pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + spaces(width-len(r))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// RowPart represents a part of a list row with optional foreground color.
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// RenderListRow renders a complete list row with uniform background when
// selected. Each part is styled explicitly to avoid ANSI reset issues.
func (t Theme) RenderListRow(parts []RowPart, selected bool, width int) string {
	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(t.Palette.Text)
		} else {
			style = style.Foreground(t.Palette.TextDim)
		}
		if selected {
			style = style.Background(t.Palette.Surface)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// Pad to fill width (subtract 2 for left/right margin)
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(t.Palette.Surface)
		}
		result += padStyle.Render(spaces(paddingNeeded))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(t.Palette.Surface)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}
