// Package gallery holds the image viewer state machinery: the lightbox
// navigation state machine and the swipe gesture classifier.
package gallery

// Lightbox tracks the selected index into a fixed-size image collection.
// Closed is represented by selected = -1. Indices passed to Open are
// clamped, never rejected; Next and Prev wrap circularly.
//
// Not safe for concurrent use; confine to the UI event loop.
type Lightbox struct {
	count    int
	selected int
}

// NewLightbox creates a closed lightbox over count images.
func NewLightbox(count int) *Lightbox {
	return &Lightbox{count: count, selected: -1}
}

// SetCount updates the image count. An open index is re-clamped into the
// new range; the lightbox closes when the count drops to zero or below.
func (lb *Lightbox) SetCount(count int) {
	lb.count = count
	if lb.selected < 0 {
		return
	}
	if count <= 0 {
		lb.selected = -1
		return
	}
	if lb.selected > count-1 {
		lb.selected = count - 1
	}
}

// Count returns the current image count.
func (lb *Lightbox) Count() int {
	return lb.count
}

// IsOpen reports whether an image is selected.
func (lb *Lightbox) IsOpen() bool {
	return lb.selected >= 0
}

// Selected returns the open index. ok is false when closed.
func (lb *Lightbox) Selected() (index int, ok bool) {
	if lb.selected < 0 {
		return 0, false
	}
	return lb.selected, true
}

// Open selects the requested index, saturating at both bounds. With no
// images it is a no-op and the lightbox stays closed. Re-opening at the
// current index is idempotent.
func (lb *Lightbox) Open(index int) {
	if lb.count <= 0 {
		lb.selected = -1
		return
	}
	if index < 0 {
		index = 0
	}
	if index > lb.count-1 {
		index = lb.count - 1
	}
	lb.selected = index
}

// Close deselects unconditionally. Idempotent.
func (lb *Lightbox) Close() {
	lb.selected = -1
}

// Next advances with wraparound. From closed it opens at the first image.
func (lb *Lightbox) Next() {
	if lb.count <= 0 {
		return
	}
	if lb.selected < 0 {
		lb.selected = 0
		return
	}
	lb.selected = (lb.selected + 1) % lb.count
}

// Prev steps back with wraparound. From closed it opens at the last image.
func (lb *Lightbox) Prev() {
	if lb.count <= 0 {
		return
	}
	if lb.selected < 0 {
		lb.selected = lb.count - 1
		return
	}
	lb.selected = (lb.selected - 1 + lb.count) % lb.count
}
