package expiringmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryExpired(t *testing.T) {
	now := WallTimeOf(time.Now())
	entry := newEntry(0, now.Add(time.Millisecond*5))

	assert.True(t, entry.isExpired(now.Add(time.Millisecond*10)))
}

func TestEntryExpiredAtExactInstant(t *testing.T) {
	now := MonotonicClock{}.Now()
	entry := newEntry(0, now)

	assert.True(t, entry.isExpired(now))
}

func TestEntryNotExpired(t *testing.T) {
	now := WallTimeOf(time.Now())
	entry := newEntry(0, now.Add(time.Millisecond*10))

	assert.False(t, entry.isExpired(now.Add(time.Millisecond*5)))
}

func TestEntryNotExpiredRealClock(t *testing.T) {
	entry := newEntry(0, WallClock{}.Now().Add(time.Second))

	<-time.After(time.Millisecond * 5)

	assert.False(t, entry.isExpired(WallClock{}.Now()))
}
