package radix

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]interface{})
	)

	b.ResetTimer()

	for i, key := range keys {
		m[key] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]interface{})
	)

	for i, key := range keys {
		m[key] = i
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[key]
	}
}

func BenchmarkTree_Put(b *testing.B) {
	for _, tcase := range allFactories() {
		tcase := tcase

		b.Run(tcase.Name, func(b *testing.B) {
			var (
				keys = getKeys(b.N)
				tree = New(tcase.Factory, RestrictConcurrency(tcase.Restrict))
			)

			b.ResetTimer()

			for i, key := range keys {
				_, _ = tree.Put(key, Present(i))
			}
		})
	}
}

func BenchmarkTree_Get(b *testing.B) {
	for _, tcase := range allFactories() {
		tcase := tcase

		b.Run(tcase.Name, func(b *testing.B) {
			var (
				keys = getKeys(b.N)
				tree = New(tcase.Factory, RestrictConcurrency(tcase.Restrict))
			)

			for i, key := range keys {
				_, _ = tree.Put(key, Present(i))
			}

			b.ResetTimer()

			for _, key := range keys {
				_ = tree.Get(key)
			}
		})
	}
}

func BenchmarkTree_GetParallel(b *testing.B) {
	var (
		keys = getKeys(10000)
		tree = New[int](nil)
	)

	for i, key := range keys {
		_, _ = tree.Put(key, Present(i))
	}

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		var i int
		for pb.Next() {
			_ = tree.Get(keys[i%len(keys)])
			i++
		}
	})
}

func BenchmarkTree_KeysStartingWith(b *testing.B) {
	var (
		keys = getKeys(10000)
		tree = New[int](nil)
	)

	for i, key := range keys {
		_, _ = tree.Put(key, Present(i))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range tree.KeysStartingWith("A") {
		}
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}
