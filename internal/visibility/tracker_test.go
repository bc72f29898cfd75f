package visibility_test

import (
	"testing"

	"github.com/dmelani/vitrine/internal/visibility"
	"github.com/stretchr/testify/require"
)

func TestTracker_FollowsSignal(t *testing.T) {
	sig := visibility.NewSignal(false)
	var tr visibility.Tracker
	tr.Attach(sig)

	require.False(t, tr.IsInView())
	require.False(t, tr.HasBeenInView())

	sig.Set(true)
	require.True(t, tr.IsInView())
	require.True(t, tr.HasBeenInView())

	sig.Set(false)
	require.False(t, tr.IsInView())
	require.True(t, tr.HasBeenInView(), "hasBeenInView is monotonic")
}

func TestTracker_SubscribeEmitsCurrentState(t *testing.T) {
	sig := visibility.NewSignal(true)
	var tr visibility.Tracker
	tr.Attach(sig)

	require.True(t, tr.IsInView())
	require.True(t, tr.HasBeenInView())
}

func TestTracker_TriggerOnceDisconnects(t *testing.T) {
	sig := visibility.NewSignal(false)
	tr := visibility.Tracker{TriggerOnce: true}
	tr.Attach(sig)

	sig.Set(true)
	require.True(t, tr.IsInView())
	require.True(t, tr.HasBeenInView())
	require.False(t, tr.Observing(), "observation torn down after first positive transition")
	require.Equal(t, 0, sig.SubscriberCount())

	// Later changes no longer reach the tracker.
	sig.Set(false)
	require.True(t, tr.IsInView())
}

func TestTracker_TriggerOnceSynchronousInitialState(t *testing.T) {
	sig := visibility.NewSignal(true)
	tr := visibility.Tracker{TriggerOnce: true}
	tr.Attach(sig)

	require.True(t, tr.HasBeenInView())
	require.False(t, tr.Observing())
	require.Equal(t, 0, sig.SubscriberCount())
}

func TestTracker_ReattachResetsLifetime(t *testing.T) {
	first := visibility.NewSignal(true)
	second := visibility.NewSignal(false)

	var tr visibility.Tracker
	tr.Attach(first)
	require.True(t, tr.HasBeenInView())

	tr.Attach(second)
	require.False(t, tr.IsInView())
	require.False(t, tr.HasBeenInView(), "new element starts a fresh lifetime")
	require.Equal(t, 0, first.SubscriberCount(), "previous observation torn down")

	// The old signal can no longer influence the tracker.
	first.Set(false)
	first.Set(true)
	require.False(t, tr.IsInView())
}

func TestTracker_AttachNilTearsDown(t *testing.T) {
	sig := visibility.NewSignal(true)
	var tr visibility.Tracker
	tr.Attach(sig)

	tr.Attach(nil)
	require.False(t, tr.Observing())
	require.Equal(t, 0, sig.SubscriberCount())
}

func TestTracker_DetachIdempotent(t *testing.T) {
	sig := visibility.NewSignal(false)
	var tr visibility.Tracker
	tr.Attach(sig)

	tr.Detach()
	tr.Detach()
	require.Equal(t, 0, sig.SubscriberCount())
}

func TestScrollTracker_ReducedMotionBypassesObservation(t *testing.T) {
	motion := visibility.NewSignal(true)
	element := visibility.NewSignal(false)

	st := visibility.NewScrollTracker(motion, false)
	st.Attach(element)

	require.True(t, st.IsInView(), "forced visible under reduced motion")
	require.True(t, st.HasBeenInView())
	require.Equal(t, 0, element.SubscriberCount(), "observation never consulted")
}

func TestScrollTracker_MotionPreferenceChangeMidObservation(t *testing.T) {
	motion := visibility.NewSignal(false)
	element := visibility.NewSignal(false)

	st := visibility.NewScrollTracker(motion, false)
	st.Attach(element)
	require.False(t, st.IsInView())

	motion.Set(true)
	require.True(t, st.IsInView())
	require.Equal(t, 0, element.SubscriberCount())
}

func TestScrollTracker_NormalMotionObservesNormally(t *testing.T) {
	motion := visibility.NewSignal(false)
	element := visibility.NewSignal(false)

	st := visibility.NewScrollTracker(motion, true)
	st.Attach(element)

	element.Set(true)
	require.True(t, st.HasBeenInView())
	require.Equal(t, 0, element.SubscriberCount()) // triggerOnce disconnected

	st.Close()
	require.Equal(t, 0, motion.SubscriberCount())
	st.Close() // Idempotent
}
