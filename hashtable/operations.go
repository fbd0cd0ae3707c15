package hashtable

import "github.com/gostonefire/algolab/internal/prime"

// Insert - Inserts a key-value pair, or updates the value if the key is already present.
// A new pair is appended to the end of its slot chain. Every chain entry inspected that does
// not match the key is counted as a collision, an update of an existing key is not.
// If the load factor exceeds 0.75 after the mutation the table grows to the next prime at
// least twice the current size, rehashing every stored pair. The resize is all-or-nothing,
// the table is never observable in a partially rehashed state.
//   - key is the identifier of the pair
//   - value is the data to store along with its key
func (C *ChainedHashTable[K, V]) Insert(key K, value V) {
	C.accesses++

	slot := C.slotFor(key)
	chain := C.slots[slot]
	for i := range chain {
		if chain[i].key == key {
			chain[i].value = value
			return
		}
		C.collisions++
	}

	C.slots[slot] = append(chain, entry[K, V]{key: key, value: value})
	C.count++

	if C.LoadFactor() > maxLoadFactor {
		C.resize(prime.NextPrime(2 * len(C.slots)))
	}
}

// Search - Looks up the value stored for key. Apart from instrumentation counters the
// operation leaves the table untouched.
//   - key is the identifier of a pair
//
// It returns:
//   - value is the stored value if found, otherwise the zero value
//   - ok is true if the key was present
func (C *ChainedHashTable[K, V]) Search(key K) (value V, ok bool) {
	C.accesses++

	chain := C.slots[C.slotFor(key)]
	for i := range chain {
		if chain[i].key == key {
			value = chain[i].value
			ok = true
			return
		}
		C.collisions++
	}

	return
}

// Delete - Removes the pair stored for key, preserving the order of the remaining entries
// in its chain. The table never shrinks on delete, which avoids resize oscillation around
// the growth threshold.
//   - key is the identifier of a pair
//
// It returns:
//   - ok is true if a pair was removed, false if the key was absent
func (C *ChainedHashTable[K, V]) Delete(key K) (ok bool) {
	C.accesses++

	slot := C.slotFor(key)
	chain := C.slots[slot]
	for i := range chain {
		if chain[i].key == key {
			C.slots[slot] = append(chain[:i], chain[i+1:]...)
			C.count--
			ok = true
			return
		}
		C.collisions++
	}

	return
}

// Size - Returns the current number of slots in the backing store, which is always prime
func (C *ChainedHashTable[K, V]) Size() int {
	return len(C.slots)
}

// Count - Returns the number of stored key-value pairs
func (C *ChainedHashTable[K, V]) Count() int {
	return C.count
}

// LoadFactor - Returns the ratio of stored pairs to available slots
func (C *ChainedHashTable[K, V]) LoadFactor() float64 {
	return float64(C.count) / float64(len(C.slots))
}

// Accesses - Returns the number of Insert, Search and Delete calls made so far
func (C *ChainedHashTable[K, V]) Accesses() uint64 {
	return C.accesses
}

// Collisions - Returns the number of chain entries inspected without matching the target key
func (C *ChainedHashTable[K, V]) Collisions() uint64 {
	return C.collisions
}

// CollisionRate - Returns collisions per operation over the lifetime of the table
func (C *ChainedHashTable[K, V]) CollisionRate() float64 {
	accesses := C.accesses
	if accesses == 0 {
		accesses = 1
	}
	return float64(C.collisions) / float64(accesses)
}
