// Package visibility tracks whether observed UI elements are inside the
// viewport, with optional one-shot latching and a reduced-motion bypass for
// scroll-revealed content.
package visibility

// Observable is a visibility feed for one element. Subscribe registers a
// callback and returns a disposer; implementations must emit the current
// state to a new subscriber and must stop delivering once the disposer runs.
type Observable interface {
	Subscribe(fn func(visible bool)) (unsubscribe func())
}

// Tracker follows one element's visibility. IsInView mirrors the latest
// observation; HasBeenInView latches on the first positive transition and
// stays set for the current observation lifetime.
//
// Not safe for concurrent use; confine to the UI event loop.
type Tracker struct {
	// TriggerOnce permanently tears down the observation after the first
	// positive transition. IsInView keeps its last observed value.
	TriggerOnce bool

	inView     bool
	everInView bool
	att        *attachment
}

// attachment scopes one subscription so late callbacks from a replaced
// observation can never reach the tracker.
type attachment struct {
	tracker  *Tracker
	cancel   func()
	disposed bool
}

func (a *attachment) dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *attachment) onVisible(visible bool) {
	t := a.tracker
	if t.att != a || a.disposed {
		return // Stale or disposed observation
	}
	t.inView = visible
	if visible {
		t.everInView = true
		if t.TriggerOnce {
			t.att = nil
			a.dispose()
		}
	}
}

// Attach tears down any current observation and begins observing obs. The
// visibility state resets for the new element. Attach(nil) tears down only.
func (t *Tracker) Attach(obs Observable) {
	t.Detach()
	t.inView = false
	t.everInView = false
	if obs == nil {
		return
	}

	att := &attachment{tracker: t}
	t.att = att
	cancel := obs.Subscribe(att.onVisible)
	if att.disposed {
		// TriggerOnce fired synchronously during Subscribe; the disposer
		// was not available yet, so run it now.
		cancel()
		return
	}
	att.cancel = cancel
}

// Detach ends the current observation, if any. The disposer runs exactly
// once and no callback lands afterwards.
func (t *Tracker) Detach() {
	if t.att == nil {
		return
	}
	att := t.att
	t.att = nil
	att.dispose()
}

// IsInView reports the most recently observed visibility.
func (t *Tracker) IsInView() bool {
	return t.inView
}

// HasBeenInView reports whether the element has ever been visible during
// the current observation lifetime.
func (t *Tracker) HasBeenInView() bool {
	return t.everInView
}

// Observing reports whether an observation is currently live.
func (t *Tracker) Observing() bool {
	return t.att != nil
}
