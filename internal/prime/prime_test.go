//go:build unit

package prime

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Run("identifies primes", func(t *testing.T) {
		// Prepare
		primes := []int{2, 3, 5, 7, 11, 13, 23, 47, 97, 197, 7919}

		// Execute and Check
		for _, p := range primes {
			assert.True(t, IsPrime(p), "identifies prime")
		}
	})

	t.Run("identifies composites", func(t *testing.T) {
		// Prepare
		composites := []int{4, 6, 9, 15, 21, 25, 49, 100, 7917}

		// Execute and Check
		for _, c := range composites {
			assert.False(t, IsPrime(c), "identifies composite")
		}
	})

	t.Run("numbers below two are not prime", func(t *testing.T) {
		// Execute and Check
		assert.False(t, IsPrime(1), "one is not prime")
		assert.False(t, IsPrime(0), "zero is not prime")
		assert.False(t, IsPrime(-7), "negative number is not prime")
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("returns n when n is already prime", func(t *testing.T) {
		// Execute
		p := NextPrime(11)

		// Check
		assert.Equal(t, 11, p, "prime input returned unchanged")
	})

	t.Run("returns two for small inputs", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, 2, NextPrime(2), "two for two")
		assert.Equal(t, 2, NextPrime(1), "two for one")
		assert.Equal(t, 2, NextPrime(-5), "two for negative input")
	})

	t.Run("steps up to the next prime", func(t *testing.T) {
		// Execute and Check
		assert.Equal(t, 11, NextPrime(8), "next prime after 8")
		assert.Equal(t, 23, NextPrime(22), "next prime after 22")
		assert.Equal(t, 47, NextPrime(46), "next prime after 46")
		assert.Equal(t, 97, NextPrime(94), "next prime after 94")
		assert.Equal(t, 197, NextPrime(194), "next prime after 194")
	})

	t.Run("follows the doubling resize ladder", func(t *testing.T) {
		// Prepare
		size := 11
		want := []int{23, 47, 97, 197, 397}

		// Execute and Check
		for _, w := range want {
			size = NextPrime(2 * size)
			assert.Equal(t, w, size, "correct prime in resize ladder")
		}
	})
}
