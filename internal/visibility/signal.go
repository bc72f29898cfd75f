package visibility

// Signal is a concrete Observable fed by the UI layer. Set publishes state
// changes to all live subscribers; a new subscriber immediately receives
// the current value.
//
// Not safe for concurrent use; confine to the UI event loop.
type Signal struct {
	current bool
	nextID  int
	subs    map[int]func(bool)
}

// NewSignal creates a signal with the given initial state.
func NewSignal(initial bool) *Signal {
	return &Signal{current: initial, subs: make(map[int]func(bool))}
}

// Subscribe registers fn, emits the current state to it, and returns a
// disposer. The disposer is idempotent.
func (s *Signal) Subscribe(fn func(visible bool)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	fn(s.current)

	return func() {
		delete(s.subs, id)
	}
}

// Set publishes a new state. Subscribers are only notified on change.
func (s *Signal) Set(visible bool) {
	if visible == s.current {
		return
	}
	s.current = visible
	for _, fn := range s.subs {
		fn(visible)
	}
}

// Value returns the current state.
func (s *Signal) Value() bool {
	return s.current
}

// SubscriberCount returns the number of live subscriptions.
func (s *Signal) SubscriberCount() int {
	return len(s.subs)
}
