package radix

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTree_Concurrent runs readers against writers. It is meant to be run with
// the race detector enabled.
func TestTree_Concurrent(t *testing.T) {
	t.Parallel()

	var (
		keys     = fakeKeys(987654321, 400)
		stable   = keys[:200]
		volatile = keys[200:]
		known    = make(map[string]bool, len(keys))
	)

	for _, key := range keys {
		known[key] = true
	}

	for _, tcase := range allFactories() {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			t.Parallel()

			tree := New(tcase.Factory, RestrictConcurrency(tcase.Restrict))

			for i, key := range stable {
				_, err := tree.Put(key, Present(i))
				require.NoError(t, err)
			}

			var (
				wg      sync.WaitGroup
				writers sync.WaitGroup
				done    atomic.Bool
			)

			for w := 0; w < 2; w++ {
				w := w

				writers.Add(1)
				go func() {
					defer writers.Done()
					for round := 0; round < 20; round++ {
						for i, key := range volatile {
							if (i+w)%2 == 0 {
								_, err := tree.Put(key, Present(-i))
								assert.NoError(t, err)
							} else {
								_, err := tree.Remove(key)
								assert.NoError(t, err)
							}
						}
					}
				}()
			}

			for r := 0; r < 4; r++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for !done.Load() {
						for i, key := range stable {
							if val := tree.Get(key); !assert.Equal(t, Present(i), val, key) {
								return
							}
						}

						seen := 0
						for key := range tree.KeysStartingWith("") {
							if !assert.True(t, known[key], key) {
								return
							}
							seen++
						}
						assert.GreaterOrEqual(t, seen, len(stable))

						for pair := range tree.KeyValuePairsForClosestKeys(stable[0]) {
							assert.True(t, known[pair.Key], pair.Key)
						}
					}
				}()
			}

			writers.Wait()
			done.Store(true)
			wg.Wait()

			requireInvariants(t, tree)

			for i, key := range stable {
				assert.Equal(t, Present(i), tree.Get(key))
			}
		})
	}
}

func TestTree_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	var (
		keys = fakeKeys(13, 300)
		tree = New[int](SmartArrayFactory[int]{})
		wg   sync.WaitGroup
	)

	const workers = 4

	for w := 0; w < workers; w++ {
		w := w

		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := w; i < len(keys); i += workers {
				_, err := tree.Put(keys[i], Present(i))
				assert.NoError(t, err)
			}
		}()
	}

	wg.Wait()

	requireInvariants(t, tree)
	require.Equal(t, len(keys), tree.Size())

	for i, key := range keys {
		assert.Equal(t, Present(i), tree.Get(key), key)
	}
}
