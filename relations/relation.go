// Package relations implements the relation store and partial-relation
// graph: deduplicated full relations, plus one-large-prime partial
// relations combined into full relations via cycle detection in an
// undirected edge graph over large-prime cofactors.
package relations

import (
	"github.com/google/go-cmp/cmp"

	"qsieve/bigint"
)

// Relation is one sieve relation: x, the factor-base exponent vector
// (index 0 is the sign bit, 1 iff Q(x) < 0; the rest are the exponents
// of FactorBase.Entries[i-1] in |Q(x)|), the residual cofactor (1 for a
// full relation, a large prime for a partial), and the large primes
// still unresolved in this relation (empty for a raw full relation;
// populated, then folded away, while combining partials in the graph).
type Relation struct {
	X           *bigint.Int
	Exponents   []int
	Cofactor    uint64
	LargePrimes map[uint64]int
}

// NewFull builds a full (cofactor == 1) relation.
func NewFull(x *bigint.Int, exponents []int) *Relation {
	return &Relation{X: bigint.Copy(x), Exponents: append([]int(nil), exponents...), Cofactor: 1}
}

// NewPartial builds a one-large-prime partial relation.
func NewPartial(x *bigint.Int, exponents []int, largePrime uint64) *Relation {
	return &Relation{
		X:           bigint.Copy(x),
		Exponents:   append([]int(nil), exponents...),
		Cofactor:    largePrime,
		LargePrimes: map[uint64]int{largePrime: 1},
	}
}

// IsFull reports whether r is a full relation (no unresolved large
// primes; Cofactor == 1).
func (r *Relation) IsFull() bool { return len(r.LargePrimes) == 0 }

// Equal reports whether r and other hold the same logical relation,
// compared with go-cmp the way the teacher's rlwe.Metadata.Equal does.
func (r *Relation) Equal(other *Relation) bool {
	return r.X.EqualTo(other.X) &&
		cmp.Equal(r.Exponents, other.Exponents) &&
		r.Cofactor == other.Cofactor &&
		cmp.Equal(r.LargePrimes, other.LargePrimes)
}

// combine multiplies two relations together: X = Xa*Xb mod n,
// Exponents = elementwise sum (sign bit XORs via addition mod 2, which
// falls out of plain integer addition followed by the matrix's own
// mod-2 reduction), LargePrimes = merged multiset of unresolved large
// primes.
func combine(a, b *Relation, n *bigint.Int) *Relation {
	x := new(bigint.Int).Mul(a.X, b.X)
	x.Mod(x, n)

	exps := make([]int, len(a.Exponents))
	for i := range exps {
		exps[i] = a.Exponents[i] + b.Exponents[i]
	}

	lp := make(map[uint64]int, len(a.LargePrimes)+len(b.LargePrimes))
	for p, c := range a.LargePrimes {
		lp[p] += c
	}
	for p, c := range b.LargePrimes {
		lp[p] += c
	}
	for p, c := range lp {
		if c == 0 {
			delete(lp, p)
		}
	}

	return &Relation{X: x, Exponents: exps, Cofactor: 1, LargePrimes: lp}
}

// resolve divides X (mod n) by the square root prime^(count/2) of every
// even-count large prime in r and clears LargePrimes, so that X^2 is
// congruent mod n to the factor-base product that Exponents records.
// It reports false if any large prime has an odd count; a closed cycle
// of one-large-prime partials always gives even counts.
func resolve(r *Relation, n *bigint.Int) (*Relation, bool) {
	x := bigint.Copy(r.X)
	for p, c := range r.LargePrimes {
		if c%2 != 0 {
			return nil, false
		}
		half := c / 2
		factor := new(bigint.Int).Exp(bigint.NewUint(p), bigint.New(int64(half)), n)
		factor.Inv(factor, n)
		x.Mul(x, factor)
		x.Mod(x, n)
	}
	return &Relation{X: x, Exponents: r.Exponents, Cofactor: 1, LargePrimes: map[uint64]int{}}, true
}
