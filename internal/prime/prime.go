package prime

// IsPrime - Returns true if n is a prime number.
// Uses trial division by 2 and the odd numbers up to the square root of n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime number greater than or equal to n.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}

	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}

	return n
}
