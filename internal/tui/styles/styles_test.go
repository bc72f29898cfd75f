package styles_test

import (
	"testing"
	"unicode/utf8"

	"github.com/dmelani/vitrine/internal/config"
	"github.com/dmelani/vitrine/internal/tui/styles"
	"github.com/stretchr/testify/require"
)

func TestPaletteFor_TotalFunction(t *testing.T) {
	light := styles.PaletteFor(config.ThemeLight)
	dark := styles.PaletteFor(config.ThemeDark)
	hc := styles.PaletteFor(config.ThemeHighContrast)

	require.NotEqual(t, light.Background, dark.Background)
	require.NotEqual(t, dark.Background, hc.Accent)

	// Unknown modes fall back to dark rather than failing.
	require.Equal(t, dark, styles.PaletteFor(config.ThemeMode("sepia")))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "", styles.Truncate("hello", 0))
	require.Equal(t, "he", styles.Truncate("hello", 2))
	require.Equal(t, "hello", styles.Truncate("hello", 5))
	require.Equal(t, "hel...", styles.Truncate("hello world", 6))
}

func TestTruncate_CutsOnRuneBoundaries(t *testing.T) {
	// Cutting inside "í" or "é" must not emit invalid UTF-8.
	s := "Período de construção"

	for width := 0; width < len(s); width++ {
		out := styles.Truncate(s, width)
		require.True(t, utf8.ValidString(out), "width %d produced invalid UTF-8: %q", width, out)
	}

	require.Equal(t, "Perí...", styles.Truncate(s, 7))
	require.Equal(t, "Pe", styles.Truncate(s, 2))
}

func TestPad(t *testing.T) {
	require.Equal(t, "ab   ", styles.Pad("ab", 5))
	require.Equal(t, "abc", styles.Pad("abcdef", 3))
	require.Equal(t, "Perí", styles.Pad("Período", 4))
	require.Equal(t, "Vídeos ", styles.Pad("Vídeos", 7))
}
