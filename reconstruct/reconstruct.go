// Package reconstruct turns a GF(2) null-space vector into a congruence
// of squares x^2 = y^2 (mod n) and extracts a nontrivial factor of n
// from it via gcd, the final step of the quadratic sieve.
package reconstruct

import (
	"qsieve/bigint"
	"qsieve/factorbase"
	"qsieve/relations"
)

// Combine folds the relations named by idx into a congruence of squares
// x^2 = y^2 (mod n): x is the product of their x values mod n, and y is
// built straight from the halved, summed factor-base exponents (the
// null-space selection guarantees every exponent -- including the sign
// column -- sums to an even number).
func Combine(n *bigint.Int, fb *factorbase.FactorBase, rels []*relations.Relation, idx []int) (x, y *bigint.Int) {
	x = bigint.New(1)
	totalExp := make([]int, len(fb.Entries)+1)

	for _, i := range idx {
		x.Mul(x, rels[i].X)
		x.Mod(x, n)
		for c, e := range rels[i].Exponents {
			if c >= len(totalExp) {
				break
			}
			totalExp[c] += e
		}
	}

	y = bigint.New(1)
	for i, entry := range fb.Entries {
		half := totalExp[i+1] / 2
		if half == 0 {
			continue
		}
		factor := new(bigint.Int).Exp(bigint.NewUint(entry.P), bigint.New(int64(half)), n)
		y.Mul(y, factor)
		y.Mod(y, n)
	}

	return x, y
}

// TryFactor extracts a nontrivial factor of n from one null-space
// vector, returning ok=false when the congruence happens to be trivial
// (x = +/-y mod n), which does occur for a fraction of dependencies and
// simply means the caller should try the next one.
func TryFactor(n *bigint.Int, fb *factorbase.FactorBase, rels []*relations.Relation, idx []int) (p, q *bigint.Int, ok bool) {
	x, y := Combine(n, fb, rels, idx)

	diff := new(bigint.Int).Sub(x, y)
	diff.Mod(diff, n)
	if f := nontrivialGCD(diff, n); f != nil {
		return f, new(bigint.Int).Div(n, f), true
	}

	sum := new(bigint.Int).Add(x, y)
	sum.Mod(sum, n)
	if f := nontrivialGCD(sum, n); f != nil {
		return f, new(bigint.Int).Div(n, f), true
	}

	return nil, nil, false
}

func nontrivialGCD(a, n *bigint.Int) *bigint.Int {
	g := new(bigint.Int).GCD(a, n)
	if g.Sign() == 0 || g.IsOne() || g.EqualTo(n) {
		return nil
	}
	return g
}

// TryDependencies tries each null-space vector in turn and returns the
// first nontrivial factor pair found.
func TryDependencies(n *bigint.Int, fb *factorbase.FactorBase, rels []*relations.Relation, deps [][]int) (p, q *bigint.Int, ok bool) {
	for _, d := range deps {
		if p, q, ok := TryFactor(n, fb, rels, d); ok {
			return p, q, true
		}
	}
	return nil, nil, false
}
