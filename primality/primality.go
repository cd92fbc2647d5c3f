// Package primality implements the sieve core's primality tests: a
// deterministic Miller-Rabin over the fixed 12-witness set for 64-bit
// inputs, and a stronger probable-prime test for big integers.
package primality

import (
	"qsieve/bigint"
	"qsieve/montgomery"
)

// witnesses64 are sufficient to make Miller-Rabin deterministic for
// every n < 2^64 (a well-known fixed witness set).
var witnesses64 = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrimeU64 deterministically tests n for primality.
func IsPrimeU64(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n == 2 || n == 3:
		return true
	case n%2 == 0:
		return false
	}

	d := n - 1
	r := uint(0)
	for d%2 == 0 {
		d /= 2
		r++
	}

	red := montgomery.NewReducer64(n)
	for _, a := range witnesses64 {
		a %= n
		if a == 0 {
			continue
		}
		if !millerRabinRound(red, a, d, r, n) {
			return false
		}
	}
	return true
}

func millerRabinRound(red *montgomery.Reducer64, a, d uint64, r uint, n uint64) bool {
	x := red.PowMod(a, d)
	if x == 1 || x == n-1 {
		return true
	}
	for i := uint(1); i < r; i++ {
		x = red.FromResidue(red.Square(red.ToResidue(x)))
		if x == n-1 {
			return true
		}
	}
	return false
}

// minBigRounds is the spec's "≥16 fixed-and-random bases" floor for
// big-integer inputs.
const minBigRounds = 16

// IsPrimeBig tests a big integer for probable primality with at least
// 16 Miller-Rabin rounds using randomly chosen bases, per the spec's
// requirement that callers may treat a false positive as astronomically
// improbable for inputs beyond 64 bits.
func IsPrimeBig(n *bigint.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.FitsUint64() {
		return IsPrimeU64(n.Uint64())
	}
	return n.IsPrime(minBigRounds)
}
