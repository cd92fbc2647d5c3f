package sieve

import (
	"qsieve/bigint"
	"qsieve/factorbase"
	"qsieve/primality"
	"qsieve/relations"
)

// confirm trial-divides Q(x) = x^2 - n by the factor base to check
// whether a candidate flagged by the log sieve is actually smooth (or
// smooth up to one large-prime cofactor). It returns (relation, true)
// on success, or (nil, false) if the residual cofactor is composite or
// exceeds the large-prime bound.
func confirm(n, x *bigint.Int, fb *factorbase.FactorBase, largePrimeBound uint64) (*relations.Relation, bool) {
	q := new(bigint.Int).Mul(x, x)
	q.Sub(q, n)

	negative := q.Sign() < 0
	if negative {
		q.Neg(q)
	}

	exps := make([]int, len(fb.Entries)+1)
	if negative {
		exps[0] = 1
	}

	for i, e := range fb.Entries {
		p := bigint.NewUint(e.P)
		for q.Sign() != 0 {
			r := new(bigint.Int).Mod(q, p)
			if r.Sign() != 0 {
				break
			}
			q.Div(q, p)
			exps[i+1]++
		}
	}

	if q.IsOne() {
		return relations.NewFull(x, exps), true
	}

	if q.FitsUint64() {
		cofactor := q.Uint64()
		if cofactor > 1 && cofactor <= largePrimeBound && primality.IsPrimeU64(cofactor) {
			return relations.NewPartial(x, exps, cofactor), true
		}
	}

	return nil, false
}
