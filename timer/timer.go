// Package timer measures elapsed time for benchmarking.
package timer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotStarted is returned by Duration before Start was called.
	ErrNotStarted = errors.New("timer: not started")
	// ErrNotStopped is returned by Duration before Stop was called.
	ErrNotStopped = errors.New("timer: not stopped")
)

// now is the clock used by timers. Replaced in tests.
var now = time.Now

// Timer records a start and a stop time. The zero value is a timer that has
// not been started.
type Timer struct {
	start time.Time
	stop  time.Time
}

// New returns a timer, started if autoStart is true.
func New(autoStart bool) *Timer {
	t := &Timer{}
	if autoStart {
		t.Start()
	}
	return t
}

// Start records the current time as start time and returns it. It clears a
// previous stop time.
func (t *Timer) Start() time.Time {
	t.start = now()
	t.stop = time.Time{}
	return t.start
}

// Stop records the current time as stop time and returns it.
func (t *Timer) Stop() time.Time {
	t.stop = now()
	return t.stop
}

// StartTime returns the start time, zero if not started.
func (t *Timer) StartTime() time.Time { return t.start }

// StopTime returns the stop time, zero if not stopped.
func (t *Timer) StopTime() time.Time { return t.stop }

// Duration returns the time elapsed between Start and Stop.
func (t *Timer) Duration() (time.Duration, error) {
	if t.start.IsZero() {
		return 0, ErrNotStarted
	}
	if t.stop.IsZero() {
		return 0, ErrNotStopped
	}
	return t.stop.Sub(t.start), nil
}

func (t *Timer) String() string {
	d, err := t.Duration()
	elapsed := d.String()
	if err != nil {
		elapsed = err.Error()
	}
	return fmt.Sprintf("timer started at ``%s'' and ended at ``%s'' (elapsed time ``%s'')",
		formatTime(t.start), formatTime(t.stop), elapsed)
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return "not-a-date-time"
	}
	return ts.UTC().Format("2006-Jan-02 15:04:05.000000")
}
