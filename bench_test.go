package expiringmap

import (
	"testing"
	"time"
)

func Benchmark_Insert(b *testing.B) {

	b.Run("Wall clock", func(b *testing.B) {
		m := New[int, int](time.Second)
		for i := 0; i < b.N; i++ {
			for y := 0; y < 50; y++ {
				m.Insert(y, y)
			}
		}
	})

	b.Run("Monotonic clock", func(b *testing.B) {
		m := NewMonotonic[int, int](time.Second)
		for i := 0; i < b.N; i++ {
			for y := 0; y < 50; y++ {
				m.Insert(y, y)
			}
		}
	})

}

func Benchmark_Get(b *testing.B) {
	m := New[int, int](time.Second)
	for i := 0; i < 1000; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Get(n % 1000)
	}
	b.ReportAllocs()
}

func Benchmark_Expire(b *testing.B) {
	m := NewMonotonic[int, int](time.Hour)
	for i := 0; i < 10000; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Expire()
	}
	b.ReportAllocs()
}
