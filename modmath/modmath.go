// Package modmath implements the modular-arithmetic primitives shared
// by the primality test, factor-base builder, and sieve engine:
// modular exponentiation, the Jacobi symbol, Tonelli-Shanks modular
// square roots, and a binary-GCD modular inverse.
package modmath

import (
	"math/big"

	"qsieve/montgomery"
	"qsieve/uint128"
)

// PowModU64 computes a^e mod m. For odd m it dispatches through a
// Montgomery reducer (the fast path used throughout factor-base
// construction and primality testing); for even m it falls back to
// uint128.PowMod's plain square-and-multiply.
func PowModU64(a, e, m uint64) uint64 {
	if m == 0 {
		panic("modmath: modulus is zero")
	}
	if m%2 == 1 && m >= 3 {
		return montgomery.NewReducer64(m).PowMod(a, e)
	}
	return uint128.PowMod(a, e, m)
}

// Jacobi returns the Jacobi symbol (a/n) for odd n > 0: -1, 0, or +1.
// Implemented with the iterative reciprocity-law algorithm, so no
// factoring of n is required.
func Jacobi(a int64, n uint64) int {
	if n == 0 || n%2 == 0 {
		panic("modmath: Jacobi symbol requires an odd positive modulus")
	}
	nn := int64(n)
	aa := a % nn
	if aa < 0 {
		aa += nn
	}
	result := 1
	for aa != 0 {
		for aa%2 == 0 {
			aa /= 2
			r := nn % 8
			if r == 3 || r == 5 {
				result = -result
			}
		}
		aa, nn = nn, aa
		if aa%4 == 3 && nn%4 == 3 {
			result = -result
		}
		aa %= nn
	}
	if nn == 1 {
		return result
	}
	return 0
}

// InvMod returns a^-1 mod m via the extended binary GCD algorithm (for
// an even m, whose halving steps would not be valid, via math/big's
// ModInverse). Returns 0 if a and m are not coprime, per the spec's
// policy of treating that as a non-fatal "no inverse" result rather
// than an error.
func InvMod(a, m uint64) uint64 {
	if m == 0 {
		panic("modmath: modulus is zero")
	}
	a %= m
	if a == 0 {
		return 0
	}
	if m%2 == 0 {
		inv := new(big.Int).ModInverse(new(big.Int).SetUint64(a), new(big.Int).SetUint64(m))
		if inv == nil {
			return 0
		}
		return inv.Uint64()
	}

	// Extended binary GCD: maintain (u, g1) and (v, g2) such that
	// g1*a ≡ u (mod m) and g2*a ≡ v (mod m), shrinking u, v to gcd.
	u, v := a, m
	g1, g2 := uint64(1), uint64(0)
	for u != 0 {
		for u%2 == 0 {
			u /= 2
			g1 = halveModM(g1, m)
		}
		for v%2 == 0 {
			v /= 2
			g2 = halveModM(g2, m)
		}
		if u >= v {
			u -= v
			g1 = subModM(g1, g2, m)
		} else {
			v -= u
			g2 = subModM(g2, g1, m)
		}
	}
	if v != 1 {
		return 0 // not coprime
	}
	return g2
}

func halveModM(x, m uint64) uint64 {
	if x%2 == 0 {
		return x / 2
	}
	return (x + m) / 2
}

func subModM(x, y, m uint64) uint64 {
	if x >= y {
		return x - y
	}
	return m - (y - x)
}

// ModularSqrt returns r such that r^2 ≡ n (mod p) for an odd prime p,
// using Tonelli-Shanks. Precondition: Jacobi(n, p) == 1 (or n == 0).
// Ties are broken by returning the smaller of {r, p-r}.
func ModularSqrt(n, p uint64) uint64 {
	n %= p
	if n == 0 {
		return 0
	}
	if p == 2 {
		return n
	}

	// Fast path: p ≡ 3 (mod 4).
	if p%4 == 3 {
		r := PowModU64(n, (p+1)/4, p)
		return tieBreak(r, p)
	}

	// General Tonelli-Shanks: write p-1 = q*2^s with q odd.
	q := p - 1
	s := uint(0)
	for q%2 == 0 {
		q /= 2
		s++
	}

	// Find a quadratic non-residue z.
	var z uint64 = 2
	for Jacobi(int64(z), p) != -1 {
		z++
	}

	m := s
	c := PowModU64(z, q, p)
	t := PowModU64(n, q, p)
	r := PowModU64(n, (q+1)/2, p)

	for t != 1 {
		// Find least i, 0 < i < m, such that t^(2^i) == 1.
		i := uint(0)
		tt := t
		for tt != 1 {
			tt = uint128.MulMod(tt, tt, p)
			i++
			if i == m {
				panic("modmath: ModularSqrt precondition violated (n is not a QR mod p)")
			}
		}
		b := PowModU64(c, uint64(1)<<(m-i-1), p)
		m = i
		c = uint128.MulMod(b, b, p)
		t = uint128.MulMod(t, c, p)
		r = uint128.MulMod(r, b, p)
	}
	return tieBreak(r, p)
}

func tieBreak(r, p uint64) uint64 {
	other := p - r
	if other < r {
		return other
	}
	return r
}
