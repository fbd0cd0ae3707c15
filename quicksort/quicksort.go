package quicksort

import (
	"cmp"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gostonefire/algolab/crt"
)

// Mode - Selects the pivot policy the engine uses
type Mode int

const (
	// Randomized - The pivot index is drawn uniformly at random from the current sub-range,
	// which makes the expected comparison count Θ(n log n) regardless of input order
	Randomized Mode = iota

	// Deterministic - The pivot is always the element at the low end of the sub-range.
	// Used for comparative measurement only, adversarial inputs degrade it to Θ(n²) comparisons
	Deterministic
)

// parallelGrain - Sub-ranges below this length are sorted sequentially by SortParallel
const parallelGrain int = 4096

// Engine - An instrumented in-place quicksort over a caller owned slice. It partitions with the
// Lomuto scheme and counts every element comparison and every element relocation, so that observed
// cost can be correlated against the closed-form bounds. The counters are atomic and therefore
// race-free under SortParallel, they reset at the start of every top-level sort call.
type Engine[T cmp.Ordered] struct {
	rnd         *rand.Rand
	comparisons atomic.Uint64
	swaps       atomic.Uint64
}

// NewEngine - Returns a pointer to a new Engine instance
//   - rnd is the random source used for pivot selection in Randomized mode, nil falls back to a time seeded source
func NewEngine[T cmp.Ordered](rnd *rand.Rand) *Engine[T] {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine[T]{rnd: rnd}
}

// Comparisons - Returns the number of element comparisons made by the latest sort call
func (E *Engine[T]) Comparisons() uint64 {
	return E.comparisons.Load()
}

// Swaps - Returns the number of element relocations made by the latest sort call
func (E *Engine[T]) Swaps() uint64 {
	return E.swaps.Load()
}

// Sort - Sorts data[low..high] (inclusive) in place ascending. The sub-range ends up a sorted
// permutation of its original contents, elements outside it are untouched.
//   - data is the caller owned slice to operate on, it is never copied
//   - low and high are inclusive indices, low > high denotes an empty range and is a no-op
//   - mode selects the pivot policy
//
// It returns:
//   - err wrapping crt.InvalidRange if low or high is out of bounds for a non-empty range
func (E *Engine[T]) Sort(data []T, low, high int, mode Mode) (err error) {
	err = E.begin(data, low, high)
	if err != nil || low >= high {
		return
	}

	if mode == Deterministic {
		E.iterativeSort(data, low, high)
	} else {
		E.recursiveSort(data, low, high, E.rnd)
	}

	return
}

// SortAll - Sorts the whole of data in place ascending, see Sort
func (E *Engine[T]) SortAll(data []T, mode Mode) error {
	return E.Sort(data, 0, len(data)-1, mode)
}

// SortParallel - Sorts data[low..high] (inclusive) in place ascending like Sort, but hands the
// left sub-range of every sufficiently large partition to its own goroutine. A sub-range is only
// handed off after the partition step that produced it has committed all its swaps, and the two
// sub-ranges are disjoint, so the workers never alias. Counter increments stay race-free through
// the atomic counters.
func (E *Engine[T]) SortParallel(data []T, low, high int, mode Mode) (err error) {
	err = E.begin(data, low, high)
	if err != nil || low >= high {
		return
	}

	var wg sync.WaitGroup
	E.parallelSort(data, low, high, mode, E.rnd, &wg)
	wg.Wait()

	return
}

// begin - Validates the requested range and resets the counters for a new top-level call
func (E *Engine[T]) begin(data []T, low, high int) (err error) {
	E.comparisons.Store(0)
	E.swaps.Store(0)

	if low > high {
		return
	}
	if low < 0 || high >= len(data) {
		err = fmt.Errorf("range [%d, %d] is out of bounds for length %d: %w", low, high, len(data), crt.InvalidRange{})
		return
	}

	return
}

// partition - Partitions data[low..high] around the element at pivotIndex using the Lomuto scheme.
// The pivot is first swapped to the high end, then the range is scanned left to right maintaining
// a boundary of elements less than or equal to the pivot, and finally the pivot is swapped into
// its sorted position, which is returned. Every scan step counts one comparison, the initial
// pivot relocation, every boundary relocation and the final pivot placement count one swap each.
func (E *Engine[T]) partition(data []T, low, high, pivotIndex int) int {
	data[pivotIndex], data[high] = data[high], data[pivotIndex]
	E.swaps.Add(1)

	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		E.comparisons.Add(1)
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
			E.swaps.Add(1)
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	E.swaps.Add(1)

	return i + 1
}

// recursiveSort - Randomized quicksort by true recursion. The expected recursion depth is
// Θ(log n) since the pivot is drawn uniformly from the sub-range.
func (E *Engine[T]) recursiveSort(data []T, low, high int, rnd *rand.Rand) {
	if low >= high {
		return
	}

	pivotIndex := low + rnd.Intn(high-low+1)
	p := E.partition(data, low, high, pivotIndex)

	E.recursiveSort(data, low, p-1, rnd)
	E.recursiveSort(data, p+1, high, rnd)
}

// iterativeSort - Deterministic quicksort over an explicit work stack of ranges, so that the
// Θ(n) partition chains adversarial inputs produce cannot exhaust the call stack. The larger
// sub-range is pushed first which keeps the smaller one on top.
func (E *Engine[T]) iterativeSort(data []T, low, high int) {
	stack := [][2]int{{low, high}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		low, high = r[0], r[1]

		if low >= high {
			continue
		}

		p := E.partition(data, low, high, low)

		if (p-1)-low > high-(p+1) {
			stack = append(stack, [2]int{low, p - 1}, [2]int{p + 1, high})
		} else {
			stack = append(stack, [2]int{p + 1, high}, [2]int{low, p - 1})
		}
	}
}

// parallelSort - Partitions iteratively along the right spine and hands every large enough left
// sub-range to a worker goroutine. Each worker gets a random source derived from its parent so
// pivot draws never race. Small sub-ranges fall back to the sequential strategies.
func (E *Engine[T]) parallelSort(data []T, low, high int, mode Mode, rnd *rand.Rand, wg *sync.WaitGroup) {
	for low < high {
		if high-low+1 < parallelGrain {
			if mode == Deterministic {
				E.iterativeSort(data, low, high)
			} else {
				E.recursiveSort(data, low, high, rnd)
			}
			return
		}

		pivotIndex := low
		if mode == Randomized {
			pivotIndex = low + rnd.Intn(high-low+1)
		}
		p := E.partition(data, low, high, pivotIndex)

		wg.Add(1)
		childRnd := rand.New(rand.NewSource(rnd.Int63()))
		go func(lo, hi int, r *rand.Rand) {
			defer wg.Done()
			E.parallelSort(data, lo, hi, mode, r, wg)
		}(low, p-1, childRnd)

		low = p + 1
	}
}
