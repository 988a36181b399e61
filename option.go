package expiringmap

import "log/slog"

// Option configures a Map at construction.
type Option[K comparable, V any, T Instant[T]] func(m *Map[K, V, T])

// WithOnExpired registers a callback for every entry removed by Expire.
// Callbacks run once the sweep is done.
func WithOnExpired[K comparable, V any, T Instant[T]](
	onExpired func(K, V),
) Option[K, V, T] {
	return func(m *Map[K, V, T]) {
		m.onExpired = onExpired
	}
}

// WithLogger logs a debug record on every Expire call that removed something.
func WithLogger[K comparable, V any, T Instant[T]](
	logger *slog.Logger,
) Option[K, V, T] {
	return func(m *Map[K, V, T]) {
		m.logger = logger
	}
}

// WithCapacity preallocates room for the given number of entries.
func WithCapacity[K comparable, V any, T Instant[T]](
	capacity int,
) Option[K, V, T] {
	return func(m *Map[K, V, T]) {
		if capacity > 0 {
			m.data = make(map[K]*entry[V, T], capacity)
		}
	}
}
