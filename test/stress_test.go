//go:build stress

package test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostonefire/algolab/hashtable"
	"github.com/gostonefire/algolab/quicksort"
)

// randomWorkload - Returns n keys with values, keys drawn with heavy duplication to force updates
func randomWorkload(rnd *rand.Rand, n int) (keys []int, values []string) {
	keys = make([]int, n)
	values = make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = rnd.Intn(n / 2)
		values[i] = fmt.Sprintf("value_%d", rnd.Int())
	}
	return
}

func TestHashTableStress(t *testing.T) {
	t.Run("mirrors a reference map over a long mixed workload", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(1))
		table, err := hashtable.NewChainedHashTable[int, string](hashtable.DefaultInitialSize, nil, rnd)
		assert.NoError(t, err, "creates table")
		reference := make(map[int]string)
		keys, values := randomWorkload(rnd, 200000)

		// Execute
		for i, key := range keys {
			switch rnd.Intn(10) {
			case 0:
				removed := table.Delete(key)
				_, existed := reference[key]
				assert.Equal(t, existed, removed, "delete agrees with reference")
				delete(reference, key)
			case 1:
				value, ok := table.Search(key)
				refValue, refOk := reference[key]
				assert.Equal(t, refOk, ok, "presence agrees with reference")
				assert.Equal(t, refValue, value, "value agrees with reference")
			default:
				table.Insert(key, values[i])
				reference[key] = values[i]
			}
			assert.LessOrEqual(t, table.LoadFactor(), 0.75, "load factor within threshold")
		}

		// Check
		assert.Equal(t, len(reference), table.Count(), "counts agree after workload")
		for key, refValue := range reference {
			value, ok := table.Search(key)
			assert.True(t, ok, "key %d present", key)
			assert.Equal(t, refValue, value, "value for key %d", key)
		}

		stat := table.Stat(true)
		records := 0
		for _, n := range stat.ChainDistribution {
			records += n
		}
		assert.Equal(t, stat.Records, records, "distribution consistent with record count")
	})
}

func TestQuicksortStress(t *testing.T) {
	t.Run("sorts half a million elements in every mode", func(t *testing.T) {
		// Prepare
		rnd := rand.New(rand.NewSource(2))
		input := make([]int, 500000)
		for i := range input {
			input[i] = rnd.Intn(1000000)
		}

		sorts := []struct {
			name string
			run  func(engine *quicksort.Engine[int], data []int) error
		}{
			{name: "randomized", run: func(engine *quicksort.Engine[int], data []int) error {
				return engine.SortAll(data, quicksort.Randomized)
			}},
			{name: "deterministic", run: func(engine *quicksort.Engine[int], data []int) error {
				return engine.SortAll(data, quicksort.Deterministic)
			}},
			{name: "parallel randomized", run: func(engine *quicksort.Engine[int], data []int) error {
				return engine.SortParallel(data, 0, len(data)-1, quicksort.Randomized)
			}},
		}

		for _, s := range sorts {
			// Prepare
			data := make([]int, len(input))
			copy(data, input)
			sum := 0
			for _, v := range data {
				sum += v
			}
			engine := quicksort.NewEngine[int](rand.New(rand.NewSource(3)))

			// Execute
			err := s.run(engine, data)

			// Check
			assert.NoError(t, err, "%s sorts without error", s.name)
			checkSum := 0
			for i, v := range data {
				checkSum += v
				if i > 0 {
					assert.LessOrEqual(t, data[i-1], v, "%s keeps order at index %d", s.name, i)
				}
			}
			assert.Equal(t, sum, checkSum, "%s preserves element sum", s.name)
			assert.Greater(t, engine.Comparisons(), uint64(0), "%s counted comparisons", s.name)
		}
	})
}
