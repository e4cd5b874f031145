package common

import "github.com/milk9111/cavern/units"

// Timer counts elapsed time since its last reset against a fixed duration.
// Timers are pure data; they never fire callbacks or touch the scheduler.
// A new timer starts expired and becomes active when Reset.
type Timer struct {
	duration units.MS
	elapsed  units.MS
}

// Active reports whether the timer's window is still open.
func (t *Timer) Active() bool { return t.elapsed < t.duration }

func (t *Timer) Expired() bool { return !t.Active() }

// Reset restarts the window from zero.
func (t *Timer) Reset() { t.elapsed = 0 }

// CurrentTime is the time accumulated since the last reset.
func (t *Timer) CurrentTime() units.MS { return t.elapsed }

// Registry owns every live timer and advances each exactly once per frame,
// so timers held by different actors stay on the same frame clock without
// each owner driving them. Game owns the registry; actors receive it at
// construction.
type Registry struct {
	timers []*Timer
}

func NewRegistry() *Registry { return &Registry{} }

// NewTimer creates a timer advanced by this registry. The timer starts
// expired.
func (r *Registry) NewTimer(duration units.MS) *Timer {
	t := &Timer{duration: duration, elapsed: duration}
	r.timers = append(r.timers, t)
	return t
}

// Tick advances every registered timer by the frame's elapsed time. Call
// once per frame, before actor updates.
func (r *Registry) Tick(elapsed units.MS) {
	for _, t := range r.timers {
		if t.elapsed < t.duration {
			t.elapsed += elapsed
		}
	}
}
