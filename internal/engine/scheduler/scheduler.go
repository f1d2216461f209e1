// Package scheduler gates full redraws by the configured latency tier.
package scheduler

import "github.com/Faultbox/partradar/internal/engine/settings"

// Due reports whether a redraw is due at frame, given the last redrawn
// frame and the minimum gap. A frame counter that went backwards always
// redraws.
func Due(frame, last uint64, gap int) bool {
	if gap <= 0 || frame < last {
		return true
	}
	return frame-last >= uint64(gap)
}

// Scheduler remembers the last redrawn frame. The zero value redraws on its
// first call.
type Scheduler struct {
	last  uint64
	drawn bool
	force bool
}

// Next reports whether frame should be redrawn under l and, if so, records
// it as the last redraw. Skipped frames reuse the previous image.
func (s *Scheduler) Next(frame uint64, l settings.Latency) bool {
	if s.drawn && !s.force && !Due(frame, s.last, l.Gap()) {
		return false
	}
	s.last = frame
	s.drawn = true
	s.force = false
	return true
}

// Force makes the next call redraw regardless of latency.
func (s *Scheduler) Force() {
	s.force = true
}

// Last returns the last redrawn frame and whether there was one.
func (s *Scheduler) Last() (uint64, bool) {
	return s.last, s.drawn
}
