// Package expiringmap provides a map whose entries expire over time.
//
// Expiry is pull based: nothing is removed until the owner calls
// [Map.Expire]. Until then [Map.Get] happily returns entries that are past
// their expiry, and a map that is never swept grows without bound.
//
// A Map is not safe for concurrent use; guard it with a mutex when sharing.
package expiringmap

import (
	"log/slog"
	"time"

	"golang.org/x/exp/maps"
)

// Map associates keys with values that expire after a time-to-live.
type Map[K comparable, V any, T Instant[T]] struct {
	data       map[K]*entry[V, T]
	defaultTTL time.Duration
	clock      Clock[T]
	onExpired  func(K, V)
	logger     *slog.Logger
}

// New creates a map measuring expiry against the system (wall) clock.
func New[K comparable, V any](
	defaultTTL time.Duration,
	options ...Option[K, V, WallTime],
) *Map[K, V, WallTime] {
	return NewWithClock[K, V, WallTime](defaultTTL, WallClock{}, options...)
}

// NewMonotonic creates a map measuring expiry against the monotonic clock,
// which is unaffected by changes to the system time.
func NewMonotonic[K comparable, V any](
	defaultTTL time.Duration,
	options ...Option[K, V, MonoTime],
) *Map[K, V, MonoTime] {
	return NewWithClock[K, V, MonoTime](defaultTTL, MonotonicClock{}, options...)
}

// NewWithClock creates a map that takes the current time from clock.
func NewWithClock[K comparable, V any, T Instant[T]](
	defaultTTL time.Duration,
	clock Clock[T],
	options ...Option[K, V, T],
) *Map[K, V, T] {
	if clock == nil {
		panic("expiringmap: clock must not be nil")
	}
	m := &Map[K, V, T]{
		data:       make(map[K]*entry[V, T]),
		defaultTTL: defaultTTL,
		clock:      clock,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Get returns the value stored for key, whether or not it has expired.
//
// Call Expire first unless stale values are acceptable.
func (m *Map[K, V, T]) Get(key K) (V, bool) {
	e, found := m.data[key]
	if !found {
		var empty V
		return empty, false
	}
	return e.value, true
}

func (m *Map[K, V, T]) Has(key K) bool {
	_, found := m.data[key]
	return found
}

// ExpiresAt returns the instant at which key expires.
func (m *Map[K, V, T]) ExpiresAt(key K) (T, bool) {
	e, found := m.data[key]
	if !found {
		var zero T
		return zero, false
	}
	return e.expireAt, true
}

// Insert stores value under key using the default TTL and returns the value
// it replaced, if any.
func (m *Map[K, V, T]) Insert(key K, value V) (V, bool) {
	return m.InsertWithTTL(key, value, m.defaultTTL)
}

// InsertWithTTL is like Insert but the entry lives for ttl instead of the
// default TTL.
func (m *Map[K, V, T]) InsertWithTTL(key K, value V, ttl time.Duration) (V, bool) {
	prev, found := m.data[key]
	m.data[key] = newEntry(value, m.clock.Now().Add(ttl))
	if !found {
		var empty V
		return empty, false
	}
	return prev.value, true
}

// Remove deletes key and returns the value it held.
func (m *Map[K, V, T]) Remove(key K) (V, bool) {
	e, found := m.data[key]
	if !found {
		var empty V
		return empty, false
	}
	delete(m.data, key)
	return e.value, true
}

// Expire removes every entry whose expiry is not after the current time.
func (m *Map[K, V, T]) Expire() {
	now := m.clock.Now()

	var (
		removed int
		expired map[K]V
	)
	for key, e := range m.data {
		if !e.isExpired(now) {
			continue
		}
		removed++
		if m.onExpired != nil {
			if expired == nil {
				expired = make(map[K]V)
			}
			expired[key] = e.value
		}
		delete(m.data, key)
	}

	if m.logger != nil && removed > 0 {
		m.logger.Debug("expired entries", "removed", removed, "remaining", len(m.data))
	}

	for key, value := range expired {
		m.onExpired(key, value)
	}
}

func (m *Map[K, V, T]) Len() int {
	return len(m.data)
}

// Keys returns the keys in unspecified order, expired ones included.
func (m *Map[K, V, T]) Keys() []K {
	return maps.Keys(m.data)
}

func (m *Map[K, V, T]) Clear() {
	maps.Clear(m.data)
}

func (m *Map[K, V, T]) DefaultTTL() time.Duration {
	return m.defaultTTL
}
