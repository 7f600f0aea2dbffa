package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/registry"
)

func TestResolve_CaseInsensitiveAndMonotonic(t *testing.T) {
	r := registry.New()

	id, created, err := r.Resolve("Gata4")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0, id)

	id, created, err = r.Resolve("  GATA4 ")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, id)

	id, _, err = r.Resolve("tbx5")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	g, err := r.Gene(0)
	require.NoError(t, err)
	assert.Equal(t, "Gata4", g.Symbol, "first-seen spelling is kept")

	_, _, err = r.Resolve("   ")
	assert.ErrorIs(t, err, registry.ErrEmptySymbol)
	assert.Equal(t, 2, r.Len())
}

func TestValidateAndUnknown(t *testing.T) {
	r := registry.New()
	_, _, _ = r.Resolve("A")

	require.NoError(t, r.Validate(0))

	err := r.Validate(5)
	assert.ErrorIs(t, err, registry.ErrUnknownGene)
	var ue *registry.UnknownGeneError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 5, ue.ID)

	_, err = r.MustLookup("B")
	assert.ErrorIs(t, err, registry.ErrUnknownGene)
	assert.Contains(t, err.Error(), `"B"`)
	assert.Equal(t, 1, r.Len(), "lookups never create genes")
}

func TestFreeze(t *testing.T) {
	r := registry.New()
	_, _, _ = r.Resolve("A")
	r.Freeze()

	id, created, err := r.Resolve("a")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, id)

	_, _, err = r.Resolve("NEW")
	assert.ErrorIs(t, err, registry.ErrFrozen)
}

func TestPreload(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Preload(map[string]int{"MYH6": 0, "MYH7": 1}))

	id, created, err := r.Resolve("myh7")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, id)

	id, created, err = r.Resolve("ACTC1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, id)

	// Remapping an existing symbol, reusing an id, or leaving a gap all fail.
	assert.ErrorIs(t, r.Preload(map[string]int{"MYH6": 4}), registry.ErrConflict)
	assert.ErrorIs(t, r.Preload(map[string]int{"OTHER": 1}), registry.ErrConflict)
	assert.ErrorIs(t, r.Preload(map[string]int{"FAR": 9}), registry.ErrConflict)
	assert.Equal(t, 3, r.Len(), "failed preload leaves registry untouched")

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "ACTC1", snap[2].Symbol)
}

// TestConcurrentResolve checks that racing inserts of the same symbols
// converge on one ID per symbol and a dense ID space.
func TestConcurrentResolve(t *testing.T) {
	r := registry.New()
	const workers, symbols = 16, 100

	results := make([][]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			ids := make([]int, symbols)
			for s := 0; s < symbols; s++ {
				id, _, err := r.Resolve(fmt.Sprintf("GENE%d", s))
				require.NoError(t, err)
				ids[s] = id
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	assert.Equal(t, symbols, r.Len())
	for w := 1; w < workers; w++ {
		assert.Equal(t, results[0], results[w])
	}
}
