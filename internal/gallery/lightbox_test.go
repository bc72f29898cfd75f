package gallery_test

import (
	"testing"

	"github.com/dmelani/vitrine/internal/gallery"
	"github.com/stretchr/testify/require"
)

func openIndex(t *testing.T, lb *gallery.Lightbox) int {
	t.Helper()
	idx, ok := lb.Selected()
	require.True(t, ok, "expected lightbox to be open")
	return idx
}

func TestLightbox_OpenClampsBothBounds(t *testing.T) {
	lb := gallery.NewLightbox(5)

	lb.Open(10)
	require.Equal(t, 4, openIndex(t, lb))

	lb.Open(-3)
	require.Equal(t, 0, openIndex(t, lb))

	lb.Open(2)
	require.Equal(t, 2, openIndex(t, lb))
	lb.Open(2) // Idempotent
	require.Equal(t, 2, openIndex(t, lb))
}

func TestLightbox_EmptyGalleryStaysClosed(t *testing.T) {
	lb := gallery.NewLightbox(0)

	lb.Open(5)
	require.False(t, lb.IsOpen())
	lb.Next()
	require.False(t, lb.IsOpen())
	lb.Prev()
	require.False(t, lb.IsOpen())
}

func TestLightbox_Wraparound(t *testing.T) {
	const n = 5
	lb := gallery.NewLightbox(n)

	lb.Open(0)
	for i := 0; i < n; i++ {
		lb.Next()
	}
	require.Equal(t, 0, openIndex(t, lb)) // n steps return to start

	lb.Prev()
	require.Equal(t, n-1, openIndex(t, lb))
}

func TestLightbox_OpenAfterPastEndThenNextWraps(t *testing.T) {
	lb := gallery.NewLightbox(5)

	lb.Open(10)
	require.Equal(t, 4, openIndex(t, lb))
	lb.Next()
	require.Equal(t, 0, openIndex(t, lb))
}

func TestLightbox_NextPrevOpenFromClosed(t *testing.T) {
	lb := gallery.NewLightbox(4)

	lb.Next()
	require.Equal(t, 0, openIndex(t, lb))

	lb.Close()
	lb.Prev()
	require.Equal(t, 3, openIndex(t, lb))
}

func TestLightbox_SingleImageSelfLoops(t *testing.T) {
	lb := gallery.NewLightbox(1)

	lb.Open(0)
	lb.Next()
	require.Equal(t, 0, openIndex(t, lb))
	lb.Prev()
	require.Equal(t, 0, openIndex(t, lb))
}

func TestLightbox_CloseIdempotent(t *testing.T) {
	lb := gallery.NewLightbox(3)

	lb.Close()
	require.False(t, lb.IsOpen())
	lb.Open(1)
	lb.Close()
	lb.Close()
	require.False(t, lb.IsOpen())
}

func TestLightbox_SetCountReclampsOpenIndex(t *testing.T) {
	lb := gallery.NewLightbox(5)
	lb.Open(4)

	lb.SetCount(3)
	require.Equal(t, 2, openIndex(t, lb))

	// Navigation after shrinking stays in range.
	lb.Next()
	require.Equal(t, 0, openIndex(t, lb))

	lb.SetCount(0)
	require.False(t, lb.IsOpen())
}

func TestLightbox_SetCountWhileClosed(t *testing.T) {
	lb := gallery.NewLightbox(0)

	lb.SetCount(3)
	require.False(t, lb.IsOpen())
	lb.Next()
	require.Equal(t, 0, openIndex(t, lb))
}
