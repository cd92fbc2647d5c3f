// Package smallfactor implements cheap pre-passes run before the
// quadratic sieve is ever invoked: Pollard's rho and Lenstra's ECM,
// both over a plain uint64 modulus, mirroring the "try cheap factoring
// methods first" layering the teacher's utils.GetFactorPollardRho /
// utils.GetFactorECM test fixtures establish.
package smallfactor

import (
	"qsieve/internal/utils"
	"qsieve/montgomery"
)

// PollardRho attempts to find a nontrivial factor of the odd composite
// n using Pollard's rho with Floyd's cycle detection and Brent's batched
// gcd (differences are multiplied together and one gcd is taken per
// batch). It returns
// (0, false) if no factor turns up within the attempt budget; callers
// should retry with a different pseudo-random polynomial seed or fall
// back to ECM.
func PollardRho(n uint64) (uint64, bool) {
	if n%2 == 0 {
		return 2, true
	}
	red := montgomery.NewReducer64(n)

	for attempt := uint64(1); attempt <= 8; attempt++ {
		c := attempt
		f := func(x uint64) uint64 { return red.FromResidue(red.Add(red.Square(red.ToResidue(x)), red.ToResidue(c))) }

		x, y, d := uint64(2), uint64(2), uint64(1)
		q := uint64(1)
		var savedX, savedY uint64
		const batch = 128

		for d == 1 {
			savedX, savedY = x, y
			for i := 0; i < batch && d == 1; i++ {
				x = f(x)
				y = f(f(y))
				diff := x
				if y > x {
					diff = y - x
				} else {
					diff = x - y
				}
				if diff == 0 {
					break
				}
				q = red.FromResidue(red.Mul(red.ToResidue(q), red.ToResidue(diff)))
			}
			d = utils.GCD(q, n)
		}

		if d == n {
			// Backtrack one step at a time to isolate the factor, the
			// standard fix for Brent's batched-gcd variant overshooting.
			x, y = savedX, savedY
			d = 1
			for d == 1 {
				x = f(x)
				y = f(f(y))
				diff := x
				if y > x {
					diff = y - x
				} else {
					diff = x - y
				}
				if diff == 0 {
					d = n
					break
				}
				d = utils.GCD(diff, n)
			}
		}

		if d > 1 && d < n {
			return d, true
		}
	}

	return 0, false
}
