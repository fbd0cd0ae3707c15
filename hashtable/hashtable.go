package hashtable

import (
	"fmt"
	"math/rand"

	"github.com/gostonefire/algolab/crt"
	"github.com/gostonefire/algolab/hashfunc"
	"github.com/gostonefire/algolab/internal/hash"
	"github.com/gostonefire/algolab/internal/prime"
)

// DefaultInitialSize - The number of slots a new table starts out with unless told otherwise
const DefaultInitialSize int = 11

// maxLoadFactor - Growth threshold, the table keeps count/size at or below this after every insert
const maxLoadFactor float64 = 0.75

// Key - The key types the table can deterministically encode for hashing.
// Integer keys encode as themselves, string keys as a polynomial accumulation over their bytes.
type Key interface {
	int | int64 | string
}

// entry - One key-value pair stored in a slot chain
type entry[K Key, V any] struct {
	key   K
	value V
}

// ChainedHashTable - A dynamically resizing hash table using separate chaining for collision
// resolution and a universal hash family for slot selection. The backing store always holds a
// prime number of slots and grows to the next prime at least twice the current size whenever
// the load factor exceeds 0.75 after an insert. The table never shrinks.
//
// The table is not safe for concurrent use, callers that share one across goroutines must
// serialize all operations.
type ChainedHashTable[K Key, V any] struct {
	slots             [][]entry[K, V]
	count             int
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool

	// Instrumentation counters
	accesses   uint64
	collisions uint64
}

// NewChainedHashTable - Returns a new table prepared with a prime number of slots.
//   - initialSize is the requested number of slots, it is rounded up to the nearest prime and must be a positive value
//   - hashAlgorithm is an optional custom slot selection algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal universal hash family
//   - rnd is the random source used to draw the universal hash coefficients, nil falls back to a time seeded source, it is ignored when a custom hashAlgorithm is given
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which wraps crt.InvalidConfiguration if initialSize is not positive
func NewChainedHashTable[K Key, V any](
	initialSize int,
	hashAlgorithm hashfunc.HashAlgorithm,
	rnd *rand.Rand,
) (
	table *ChainedHashTable[K, V],
	err error,
) {

	// Check if initialSize is valid
	if initialSize <= 0 {
		err = fmt.Errorf("initialSize must be a positive value higher than 0 (zero): %w", crt.InvalidConfiguration{})
		return
	}

	size := prime.NextPrime(initialSize)

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewUniversalHashAlgorithm(size, rnd)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(size)
	}

	table = &ChainedHashTable[K, V]{
		slots:             make([][]entry[K, V], size),
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// encodeKey - Returns the deterministic integer encoding of a key
func encodeKey[K Key](key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return hash.EncodeIntKey(int64(k))
	case int64:
		return hash.EncodeIntKey(k)
	case string:
		return hash.EncodeStringKey(k)
	}

	return 0
}

// slotFor - Returns the slot number the given key currently addresses
func (C *ChainedHashTable[K, V]) slotFor(key K) int {
	return C.hashAlgorithm.HashKey(encodeKey(key))
}

// resize - Rehashes every stored pair into a new backing store of newSize slots.
// The hash algorithm is told the new table size first so every pair lands in its new slot.
// The new store is fully built before it replaces the old one, so a caller never observes
// a partial rehash.
func (C *ChainedHashTable[K, V]) resize(newSize int) {
	C.hashAlgorithm.SetTableSize(newSize)

	newSlots := make([][]entry[K, V], newSize)
	for _, chain := range C.slots {
		for _, e := range chain {
			slot := C.hashAlgorithm.HashKey(encodeKey(e.key))
			newSlots[slot] = append(newSlots[slot], e)
		}
	}

	C.slots = newSlots
}
