package gallery

// Action is the outcome of a classified gesture.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionClose
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionClose:
		return "close"
	default:
		return "none"
	}
}

// DefaultSwipeThreshold is the minimum displacement, in cells or
// device-independent pixels, for a gesture to register.
const DefaultSwipeThreshold = 50

// SwipeClassifier turns a start/end coordinate pair into an Action using
// dominant-axis detection. Diagonal or sub-threshold motion classifies as
// ActionNone so accidental drags never navigate.
//
// Not safe for concurrent use; confine to the UI event loop.
type SwipeClassifier struct {
	// Threshold is the minimum horizontal displacement. Zero or negative
	// falls back to DefaultSwipeThreshold.
	Threshold int

	// VerticalThreshold is the minimum downward displacement for a close
	// gesture. Zero or negative falls back to Threshold. Coordinate spaces
	// where a unit of height covers more ground than a unit of width (a
	// terminal cell grid) need this smaller than the horizontal budget,
	// otherwise a downward drag can never travel far enough.
	VerticalThreshold int

	// MaxImages suppresses horizontal navigation when the gallery has one
	// image or fewer. Zero means unbounded. Down-swipe close is always
	// active regardless.
	MaxImages int

	startX, startY int
	pending        bool
}

// Start records the gesture origin, overwriting any unfinished one.
func (s *SwipeClassifier) Start(x, y int) {
	s.startX, s.startY = x, y
	s.pending = true
}

// End consumes the pending origin and classifies the gesture. Without a
// prior Start it returns ActionNone; a second End is likewise a no-op.
func (s *SwipeClassifier) End(x, y int) Action {
	if !s.pending {
		return ActionNone
	}
	s.pending = false

	hThreshold := s.Threshold
	if hThreshold <= 0 {
		hThreshold = DefaultSwipeThreshold
	}
	vThreshold := s.VerticalThreshold
	if vThreshold <= 0 {
		vThreshold = hThreshold
	}

	dx := s.startX - x // Positive = leftward
	dy := y - s.startY // Positive = downward

	if dy >= vThreshold && abs(dx) < hThreshold {
		return ActionClose
	}
	if s.navigable() && abs(dx) >= hThreshold && abs(dy) < vThreshold {
		if dx > 0 {
			return ActionNext
		}
		return ActionPrev
	}
	return ActionNone
}

func (s *SwipeClassifier) navigable() bool {
	return s.MaxImages == 0 || s.MaxImages > 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
