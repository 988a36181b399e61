package expiringmap

import (
	"math"
	"time"
)

// Instant is a point in time of some time domain.
type Instant[T any] interface {
	// Returns the instant d after this one.
	Add(d time.Duration) T

	// Reports whether this instant is strictly after u.
	After(u T) bool
}

// Clock supplies the current instant of a time domain.
type Clock[T Instant[T]] interface {
	Now() T
}

// ClockFunc adapts an ordinary function into a Clock.
type ClockFunc[T Instant[T]] func() T

func (f ClockFunc[T]) Now() T {
	return f()
}

// WallTime is calendar time as reported by the system clock.
//
// It follows adjustments of the system clock, so it can move backwards.
type WallTime struct {
	t time.Time
}

// WallTimeOf converts t into a WallTime, dropping any monotonic clock reading.
func WallTimeOf(t time.Time) WallTime {
	return WallTime{t: t.Round(0)}
}

func (w WallTime) Add(d time.Duration) WallTime {
	return WallTime{t: w.t.Add(d)}
}

func (w WallTime) After(u WallTime) bool {
	return w.t.After(u.t)
}

func (w WallTime) Time() time.Time {
	return w.t
}

// WallClock is the Clock of the WallTime domain.
type WallClock struct{}

func (WallClock) Now() WallTime {
	return WallTimeOf(time.Now())
}

// processEpoch anchors MonoTime; time.Since on it reads the monotonic clock.
var processEpoch = time.Now()

// MonoTime is time elapsed on the monotonic clock since an arbitrary,
// process-local epoch. It never goes backwards but is meaningless across
// process restarts.
type MonoTime struct {
	d time.Duration
}

// Add saturates instead of wrapping around on overflow.
func (m MonoTime) Add(d time.Duration) MonoTime {
	switch {
	case d > 0 && m.d > math.MaxInt64-d:
		return MonoTime{d: math.MaxInt64}
	case d < 0 && m.d < math.MinInt64-d:
		return MonoTime{d: math.MinInt64}
	}
	return MonoTime{d: m.d + d}
}

func (m MonoTime) After(u MonoTime) bool {
	return m.d > u.d
}

// Since returns the offset of m from the process epoch.
func (m MonoTime) Since() time.Duration {
	return m.d
}

// MonotonicClock is the Clock of the MonoTime domain.
type MonotonicClock struct{}

func (MonotonicClock) Now() MonoTime {
	return MonoTime{d: time.Since(processEpoch)}
}
