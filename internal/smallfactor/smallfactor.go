package smallfactor

import "qsieve/primality"

// trialDivisionLimit bounds the cheap trial-division pass run before
// Pollard-rho and ECM are tried.
const trialDivisionLimit = 10000

// TryFactor looks for a nontrivial factor of the odd composite n using,
// in order: trial division by small primes, Pollard's rho, then ECM.
// It reports (0, false) if none of these cheap methods split n, in
// which case the caller should fall back to the full sieve.
func TryFactor(n uint64) (uint64, bool) {
	if n < 4 {
		return 0, false
	}
	if n%2 == 0 {
		return 2, true
	}
	if primality.IsPrimeU64(n) {
		return 0, false
	}

	for p := uint64(3); p <= trialDivisionLimit && p*p <= n; p += 2 {
		if n%p == 0 {
			return p, true
		}
	}

	if d, ok := PollardRho(n); ok {
		return d, true
	}

	return ECM(n, 25)
}
