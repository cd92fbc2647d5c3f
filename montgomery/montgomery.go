// Package montgomery implements Montgomery-domain modular arithmetic for
// a fixed odd 64-bit modulus, grounded on the limb-level reduction
// routines the teacher codebase uses for its polynomial-ring arithmetic
// (MForm, InvMForm, MRed, BRed in the ring package).
package montgomery

import (
	"math/bits"

	"qsieve/uint128"
)

// Reducer64 is a Montgomery reducer for a fixed odd 64-bit modulus m.
// The radix is R = 2^64; residues store a*R mod m. The reducer owns m
// and the derived constants; any Residue produced by it must not
// outlive the reducer.
type Reducer64 struct {
	m     uint64
	mInv  uint64 // (-m^-1) mod 2^64
	r2    uint64 // R^2 mod m, i.e. to_residue's multiplier
	one   uint64 // to_residue(1), handy for square-and-multiply seeds
}

// NewReducer64 builds a Reducer64 for odd modulus m. Panics if m is
// even or less than 3, mirroring the spec's InvalidInput contract for
// an odd-modulus reducer fed an even value.
func NewReducer64(m uint64) *Reducer64 {
	if m%2 == 0 || m < 3 {
		panic("montgomery: modulus must be odd and >= 3")
	}
	red := &Reducer64{m: m}
	red.mInv = invModPow2(m)
	// R^2 mod m computed by repeated doubling from 1, since R=2^64.
	r2 := uint128.From64(1 % m)
	for i := 0; i < 128; i++ {
		r2, _ = r2.Add(r2)
		if r2.Cmp(uint128.From64(m)) >= 0 {
			r2, _ = r2.Sub(uint128.From64(m))
		}
	}
	red.r2 = r2.Lo
	red.one = red.ToResidue(1)
	return red
}

// invModPow2 computes (-m^-1) mod 2^64 via Newton iteration on the
// 2-adic inverse, doubling the number of correct bits each round from a
// 1-bit seed (m is odd, so m ≡ 1 mod 2, and x=1 already inverts m mod
// 2; six doublings take that to 64 correct bits).
func invModPow2(m uint64) uint64 {
	x := uint64(1)
	for i := 0; i < 6; i++ {
		x *= 2 - m*x
	}
	return -x
}

// Modulus returns the reducer's modulus.
func (r *Reducer64) Modulus() uint64 { return r.m }

// ToResidue maps x (0 <= x < m, or any uint64 — reduced mod m first) to
// its Montgomery-domain representation x*R mod m.
func (r *Reducer64) ToResidue(x uint64) uint64 {
	return r.reduce(uint128.Mul64(x%r.m, r.r2))
}

// FromResidue maps a Montgomery residue back to the standard domain.
func (r *Reducer64) FromResidue(res uint64) uint64 {
	return r.reduce(uint128.From64(res))
}

// reduce implements the CIOS-less single-limb Montgomery reduction:
// for t (up to 128 bits), q = t0*mInv mod 2^64, t += q*m, t >>= 64,
// with one conditional final subtraction.
func (r *Reducer64) reduce(t uint128.Uint128) uint64 {
	q := t.Lo * r.mInv
	hi, lo := bits.Mul64(q, r.m)
	_, carry := bits.Add64(t.Lo, lo, 0)
	res, carryOut := bits.Add64(t.Hi, hi, carry)
	if carryOut != 0 || res >= r.m {
		res -= r.m
	}
	return res
}

// Mul computes reduce(a*b) for two Montgomery residues a, b.
func (r *Reducer64) Mul(a, b uint64) uint64 {
	return r.reduce(uint128.Mul64(a, b))
}

// Square computes reduce(a*a).
func (r *Reducer64) Square(a uint64) uint64 {
	return r.reduce(uint128.Mul64(a, a))
}

// Add computes (a+b) mod m for two residues (Montgomery form is
// additive-homomorphic, so this needs no domain conversion).
func (r *Reducer64) Add(a, b uint64) uint64 {
	return uint128.ModAdd(a, b, r.m)
}

// Sub computes (a-b) mod m for two residues.
func (r *Reducer64) Sub(a, b uint64) uint64 {
	return uint128.ModSub(a, b, r.m)
}

// PowMod computes a^e mod m (standard domain in, standard domain out)
// by converting to the Montgomery domain, square-and-multiply in
// domain, then converting back.
func (r *Reducer64) PowMod(a, e uint64) uint64 {
	base := r.ToResidue(a)
	acc := r.one
	for e > 0 {
		if e&1 == 1 {
			acc = r.Mul(acc, base)
		}
		base = r.Square(base)
		e >>= 1
	}
	return r.FromResidue(acc)
}

