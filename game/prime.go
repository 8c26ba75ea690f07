package game

// IsPrime reports whether n has no divisors in [2, n-1]. Values <= 1 are not prime.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for k := 2; k*k <= n; k++ {
		if n%k == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n int) int {
	k := n + 1
	for !IsPrime(k) {
		k++
	}
	return k
}

// Hogtimus bumps a prime outcome up to the next prime.
func Hogtimus(outcome int) int {
	if IsPrime(outcome) {
		return NextPrime(outcome)
	}
	return outcome
}
