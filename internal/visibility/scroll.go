package visibility

// ScrollTracker is a Tracker for scroll-revealed content that honors the
// system reduced-motion preference. While the preference is active the
// tracker reports in-view immediately and never consults the observation,
// so reduced-motion users see final-state content rather than a
// mid-animation state.
//
// The motion feed is an Observable where true means "reduce motion".
type ScrollTracker struct {
	Tracker

	reduced      bool
	motionCancel func()
	motionDone   bool
}

// NewScrollTracker creates a scroll tracker subscribed to the motion feed.
// A nil motion feed behaves as motion-allowed.
func NewScrollTracker(motion Observable, triggerOnce bool) *ScrollTracker {
	st := &ScrollTracker{}
	st.TriggerOnce = triggerOnce
	if motion != nil {
		st.motionCancel = motion.Subscribe(st.onMotionChange)
	}
	return st
}

func (st *ScrollTracker) onMotionChange(reduced bool) {
	st.reduced = reduced
	if reduced {
		st.Tracker.Detach()
		st.inView = true
		st.everInView = true
	}
}

// Attach begins observing obs unless reduced motion is active, in which
// case the element is reported visible without any observation.
func (st *ScrollTracker) Attach(obs Observable) {
	if st.reduced {
		st.Tracker.Detach()
		st.inView = true
		st.everInView = true
		return
	}
	st.Tracker.Attach(obs)
}

// Close ends both the element observation and the motion subscription.
func (st *ScrollTracker) Close() {
	st.Tracker.Detach()
	if st.motionCancel != nil && !st.motionDone {
		st.motionDone = true
		st.motionCancel()
	}
}
