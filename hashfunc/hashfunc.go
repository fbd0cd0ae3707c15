package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ChainedHashTable to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called once when the table is created and again at every resize boundary, always with a prime
	// number of slots. An implementation that keeps derived state (such as a prime modulus) must refresh it here.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int)

	// TableSize - Returns the table size the implemented hash function is currently supporting
	TableSize() int

	// HashKey - Given the deterministic integer encoding of a key it returns a slot number between
	// 0 and table size - 1. Any number returned outside that range will result in an error down stream.
	HashKey(encodedKey uint64) int
}
