package preview

import (
	"time"

	"golang.org/x/time/rate"
)

// Step is one iteration of a preview, run once per host tick
type Step func()

// Loop is a cancellable per-tick task.
//
// Nothing here spawns goroutines: the host calls Tick from its update loop
// and the loop runs the current Step (if any). Stop takes effect immediately,
// so once it returns the step that was running will never be called again.
type Loop struct {
	step    Step
	gen     uint64
	limiter *rate.Limiter
}

// New returns a stopped Loop. A hz of 0 (or less) runs the step on every
// tick, otherwise steps are throttled to at most hz per second.
func New(hz float64) *Loop {
	limit := rate.Inf
	if hz > 0 {
		limit = rate.Limit(hz)
	}
	return &Loop{limiter: rate.NewLimiter(limit, 1)}
}

// Start begins running s on every tick, stopping whatever ran before.
// Returns a generation number that identifies this run.
func (l *Loop) Start(s Step) uint64 {
	l.Stop()
	l.step = s
	return l.gen
}

// Stop halts the loop. Safe to call when nothing is running.
func (l *Loop) Stop() {
	if l.step == nil {
		return
	}
	l.step = nil
	l.gen++
}

// Running returns if a step is currently set
func (l *Loop) Running() bool {
	return l.step != nil
}

// Generation increments each time a running loop is stopped
func (l *Loop) Generation() uint64 {
	return l.gen
}

// Tick runs the current step if there is one & the limiter allows it.
// Returns true if the step ran.
func (l *Loop) Tick(now time.Time) bool {
	if l.step == nil {
		return false
	}
	if !l.limiter.AllowN(now, 1) {
		return false
	}
	// nb. the step is allowed to Stop (or restart) the loop
	l.step()
	return true
}
