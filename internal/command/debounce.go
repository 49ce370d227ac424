package command

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// Debouncer drops a command whose name was accepted less than window ago.
// It is safe for concurrent use.
type Debouncer struct {
	window time.Duration
	now    func() time.Time
	last   *xsync.MapOf[Name, time.Time]
}

// NewDebouncer creates a debouncer; a zero window disables it
func NewDebouncer(window time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{
		window: window,
		now:    now,
		last:   xsync.NewMapOf[Name, time.Time](),
	}
}

// Allow records name and reports whether it falls outside the window
func (d *Debouncer) Allow(name Name) bool {
	if d.window <= 0 {
		return true
	}

	now := d.now()
	allowed := false
	d.last.Compute(name, func(prev time.Time, loaded bool) (time.Time, bool) {
		if loaded && now.Sub(prev) < d.window {
			return prev, false
		}
		allowed = true
		return now, false
	})
	return allowed
}
