// Package counter animates a displayed statistic counting up from zero to its
// target value. The package holds no timers of its own: a driver calls
// Advance once per rendering tick with the host's monotonic timestamp and
// stops requesting ticks once Advance reports that the task is finished.
package counter

import (
	"math"
	"strconv"
	"time"
)

// DefaultDuration is used when a counter does not declare a usable duration.
const DefaultDuration = 1400 * time.Millisecond

// Frame is what a counter displays for a single tick.
type Frame struct {
	Value int
	Text  string
}

// Task is one activated counter. It runs to completion once and is never
// restarted.
type Task struct {
	Target   int
	Suffix   string
	Duration time.Duration
	Start    time.Duration

	last Frame
	done bool
}

// EaseOutCubic maps linear progress t to a decelerating curve. t is clamped
// to [0, 1].
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

// NewTask activates a counter at now. A negative target counts as zero and a
// non-positive duration falls back to DefaultDuration.
func NewTask(target int, suffix string, duration time.Duration, now time.Duration) *Task {
	if target < 0 {
		target = 0
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Task{
		Target:   target,
		Suffix:   suffix,
		Duration: duration,
		Start:    now,
	}
}

// Progress returns the clamped linear progress at now.
func (t *Task) Progress(now time.Duration) float64 {
	elapsed := now - t.Start
	if elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(t.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Advance computes the frame for now and reports whether another tick should
// be requested. Once progress reaches 1 the frame shows exactly Target and
// every later call returns that same frame with false.
func (t *Task) Advance(now time.Duration) (Frame, bool) {
	if t.done {
		return t.last, false
	}

	progress := t.Progress(now)
	var value int
	if progress >= 1 {
		// Integer path so the last frame never depends on float rounding.
		value = t.Target
		t.done = true
	} else {
		value = int(math.Floor(float64(t.Target) * EaseOutCubic(progress)))
		if value > t.Target {
			value = t.Target
		}
	}

	t.last = Frame{Value: value, Text: strconv.Itoa(value) + t.Suffix}
	return t.last, !t.done
}

// Done reports whether the task has displayed its target.
func (t *Task) Done() bool {
	return t.done
}
