package harvest

import (
	"time"
)

// WithinWindow reports whether ts falls inside the trailing acceptance window
// ending at now. Future-dated timestamps are rejected: the site occasionally
// mislabels entries and a clock-skewed future item must not slip through.
func WithinWindow(ts, now time.Time, window time.Duration) bool {
	if ts.IsZero() {
		return false
	}
	delta := now.Sub(ts)
	return delta >= 0 && delta <= window
}
