package expiringmap

type entry[V any, T Instant[T]] struct {
	value    V
	expireAt T
}

func newEntry[V any, T Instant[T]](value V, expireAt T) *entry[V, T] {
	return &entry[V, T]{
		value:    value,
		expireAt: expireAt,
	}
}

// An entry whose expiry equals now counts as expired.
func (e *entry[V, T]) isExpired(now T) bool {
	return !e.expireAt.After(now)
}
