package counter

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Attribute names read from a counter element.
const (
	AttrValue    = "data-stat-value"
	AttrSuffix   = "data-stat-suffix"
	AttrDuration = "data-stat-duration"
)

// ParseAttrs reads a counter's declarative parameters. It never fails: a
// target that is not a number becomes 0 and a missing or malformed duration
// (in milliseconds) becomes DefaultDuration.
func ParseAttrs(value, suffix, duration string) (int, string, time.Duration) {
	return parseTarget(value), suffix, parseDuration(duration)
}

func parseTarget(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return max(n, 0)
	}
	// Values such as "12.0" are still numbers.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > float64(1<<53) {
		return 0
	}
	return int(f)
}

// maxDurationMs keeps the conversion inside time.Duration.
const maxDurationMs = float64(math.MaxInt64 / int64(time.Millisecond))

func parseDuration(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDuration
	}
	ms, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(ms) || ms <= 0 || ms > maxDurationMs {
		return DefaultDuration
	}
	return time.Duration(ms * float64(time.Millisecond))
}
