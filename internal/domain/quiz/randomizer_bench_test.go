package quiz

import "testing"

func BenchmarkSelect_SmallPool(b *testing.B) {
	pool := createTestPool(12)
	r := NewSeededRandomizer(1)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = r.Select(pool, DefaultSessionSize)
	}
}

func BenchmarkSelect_LargePool(b *testing.B) {
	pool := createTestPool(10_000)
	r := NewSeededRandomizer(1)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = r.Select(pool, DefaultSessionSize)
	}
}

func BenchmarkShuffleOptions(b *testing.B) {
	q := Normalize(createTestPool(1)[0])
	r := NewSeededRandomizer(1)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		q = r.ShuffleOptions(q)
	}
}
