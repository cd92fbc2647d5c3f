// Package qs is the quadratic sieve's external driver: Factor and
// FindDivisor, the only outward-facing surface of the module.
package qs

import (
	"context"

	"qsieve/bigint"
	"qsieve/config"
	"qsieve/factorbase"
	"qsieve/internal/smallfactor"
	"qsieve/matrix"
	"qsieve/primality"
	"qsieve/qserr"
	"qsieve/reconstruct"
	"qsieve/relations"
	"qsieve/sieve"
)

const maxSieveRounds = 6

// FindDivisor returns a nontrivial factor of the composite n > 1,
// trying cheap methods (even short-circuit, perfect-power check,
// Pollard-rho/ECM for 64-bit-sized n) before falling back to the
// quadratic sieve.
func FindDivisor(ctx context.Context, n *bigint.Int, cfg config.Config) (*bigint.Int, error) {
	if n.Compare(bigint.New(1)) <= 0 {
		return nil, qserr.New(qserr.InvalidInput, "qs: n must be > 1")
	}
	if n.Big().Bit(0) == 0 {
		return bigint.New(2), nil
	}
	if primality.IsPrimeBig(n) {
		return nil, qserr.New(qserr.InvalidInput, "qs: n is prime, no divisor to find")
	}
	if base, ok := perfectPowerBase(n); ok {
		return base, nil
	}
	if n.FitsUint64() {
		if d, ok := smallfactor.TryFactor(n.Uint64()); ok {
			return bigint.NewUint(d), nil
		}
	}

	cfg = cfg.WithDefaults()
	return findDivisorQS(ctx, n, cfg)
}

// Factor returns the multiset of prime factors of n (n == 1 yields an
// empty slice).
func Factor(ctx context.Context, n *bigint.Int, cfg config.Config) ([]*bigint.Int, error) {
	if n.Compare(bigint.New(1)) < 0 {
		return nil, qserr.New(qserr.InvalidInput, "qs: n must be >= 1")
	}
	if n.IsOne() {
		return nil, nil
	}

	var factors []*bigint.Int
	var factor func(m *bigint.Int) error
	factor = func(m *bigint.Int) error {
		if m.IsOne() {
			return nil
		}
		if primality.IsPrimeBig(m) {
			factors = append(factors, m)
			return nil
		}
		d, err := FindDivisor(ctx, m, cfg)
		if err != nil {
			return err
		}
		q := new(bigint.Int).Div(m, d)
		if err := factor(d); err != nil {
			return err
		}
		return factor(q)
	}
	if err := factor(n); err != nil {
		return nil, err
	}
	sortFactors(factors)
	return factors, nil
}

func sortFactors(fs []*bigint.Int) {
	for i := 1; i < len(fs); i++ {
		for j := i; j > 0 && fs[j-1].Compare(fs[j]) > 0; j-- {
			fs[j-1], fs[j] = fs[j], fs[j-1]
		}
	}
}

// perfectPowerBase reports whether n = b^k for some k >= 2, returning b.
func perfectPowerBase(n *bigint.Int) (*bigint.Int, bool) {
	for k := uint(2); k <= uint(n.BitLen()); k++ {
		r := bigint.IntegerNthRoot(n, k)
		if r.Compare(bigint.New(1)) <= 0 {
			break
		}
		check := new(bigint.Int).Exp(r, bigint.New(int64(k)), nil)
		if check.EqualTo(n) {
			return r, true
		}
	}
	return nil, false
}

func findDivisorQS(ctx context.Context, n *bigint.Int, cfg config.Config) (*bigint.Int, error) {
	k := cfg.Multiplier
	if k == 0 {
		k = selectMultiplier(n)
	}
	m := new(bigint.Int).Mul(n, bigint.NewUint(k))

	size := cfg.FactorBaseSize
	if size == 0 {
		size = factorbase.RecommendedSize(factorbase.DigitCount(n))
	}

	fb, err := factorbase.Build(ctx, m, size)
	if err != nil {
		return nil, err
	}

	store := relations.NewStore(m, len(fb.Entries))
	largePrimeBound := uint64(0)
	if cfg.ProcessPartialRelations {
		lp := fb.LargestPrime()
		largePrimeBound = lp * lp
	}

	surplus := 10

	for round := 0; round < maxSieveRounds; round++ {
		err := sieve.Run(ctx, m, fb, store, sieve.Params{
			Threads:          cfg.Threads,
			WindowSize:       cfg.IntervalSize,
			ThresholdPercent: cfg.LowerBoundPercent,
			LargePrimeBound:  largePrimeBound,
			Surplus:          surplus,
			TimeLimit:        cfg.SieveTimeLimit,
			Report:           cfg.Report,
		})
		if err != nil && !qserr.Is(err, qserr.InsufficientRelations) {
			return nil, err
		}

		rels := store.Relations()
		deps := matrix.FindDependencies(rels, len(fb.Entries), cfg.MergeLimit)
		if p, _, ok := reconstruct.TryDependencies(n, fb, rels, deps); ok {
			return p, nil
		}

		surplus += 10 // the dependency stream was exhausted without a nontrivial split; gather more
	}

	return nil, qserr.New(qserr.InsufficientRelations, "qs: exhausted sieve rounds without a nontrivial factor")
}

// selectMultiplier scores small odd k by how favorably k*n's residues
// behave modulo the first few small primes (more small primes admit n
// as a quadratic residue -> a richer, faster-converging factor base),
// a standard SIQS refinement spec.md leaves unspecified.
func selectMultiplier(n *bigint.Int) uint64 {
	candidates := []uint64{1, 3, 5, 7, 11, 13, 15, 17, 19, 21, 23}
	scoreScale := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}

	best, bestScore := uint64(1), -1
	for _, k := range candidates {
		kn := new(bigint.Int).Mul(n, bigint.NewUint(k))
		score := 0
		for _, p := range scoreScale {
			mod := new(bigint.Int).Mod(kn, bigint.NewUint(p)).Uint64()
			if p == 2 {
				if mod == 1 {
					score += 2
				}
				continue
			}
			if j := jacobiUint64(mod, p); j == 1 {
				score++
			} else if j == 0 {
				score += 4 // kn shares a factor with p: very favorable
			}
		}
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	return best
}

func jacobiUint64(a, n uint64) int {
	if n%2 == 0 {
		return 0
	}
	return bigint.Jacobi(bigint.NewUint(a), bigint.NewUint(n))
}
