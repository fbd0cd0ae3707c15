package hash

import (
	"math/rand"
	"time"

	"github.com/gostonefire/algolab/internal/prime"
)

// UniversalHashAlgorithm - The internally used slot selection algorithm is implemented over the universal
// hash family h(k) = ((a*k + b) mod p) mod m, where p is a prime larger than the table size m,
// a is drawn from [1, p-1] and b from [0, p-1]. The coefficients are drawn once at instantiating time
// and kept across table size changes, which keeps the family's pairwise collision bound of 1/m intact.
type UniversalHashAlgorithm struct {
	tableSize int
	p         uint64
	a         uint64
	b         uint64
}

// NewUniversalHashAlgorithm - Returns a pointer to a new UniversalHashAlgorithm instance
//   - tableSize is the number of slots the table will address
//   - rnd is the random source the coefficients are drawn from, nil falls back to a time seeded source
func NewUniversalHashAlgorithm(tableSize int, rnd *rand.Rand) *UniversalHashAlgorithm {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ha := &UniversalHashAlgorithm{}
	ha.SetTableSize(tableSize)
	ha.a = uint64(rnd.Int63n(int64(ha.p)-1)) + 1
	ha.b = uint64(rnd.Int63n(int64(ha.p)))

	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The prime modulus p is re-derived to the next prime greater than or equal to twice the table size
// whenever it no longer exceeds the table size, otherwise it is left untouched so that hash values
// for a given key stay within the same residue class across resizes.
//   - tableSize is the number of slots the table will address
func (U *UniversalHashAlgorithm) SetTableSize(tableSize int) {
	U.tableSize = tableSize
	if U.p <= uint64(tableSize) {
		U.p = uint64(prime.NextPrime(2 * tableSize))
	}
}

// TableSize - Returns the table size the implemented hash function is currently supporting
func (U *UniversalHashAlgorithm) TableSize() int {
	return U.tableSize
}

// HashKey - Given the integer encoding of a key it returns a slot number between 0 and table size - 1
func (U *UniversalHashAlgorithm) HashKey(encodedKey uint64) int {
	return int(((U.a*(encodedKey%U.p) + U.b) % U.p) % uint64(U.tableSize))
}

// EncodeIntKey - Returns the deterministic integer encoding of an integer key, which is its absolute value
func EncodeIntKey(key int64) uint64 {
	if key < 0 {
		key = -key
	}
	return uint64(key)
}

// EncodeStringKey - Returns the deterministic integer encoding of a string key as a base 31 polynomial
// accumulation over its bytes. The encoding is stable across calls and processes.
func EncodeStringKey(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*31 + uint64(key[i])
	}
	return h
}
