// Package factorbase builds the factor base a sieve run operates
// against: the ordered list of small primes p for which n is a
// quadratic residue, together with the two square roots of n mod p and
// a log-approximation weight used by the sieve's threshold check.
package factorbase

import (
	"context"
	"math"
	"sort"

	"qsieve/bigint"
	"qsieve/modmath"
	"qsieve/qserr"
)

// Entry is one factor-base prime and its precomputed sieve roots.
type Entry struct {
	P      uint64 // the prime
	RPlus  uint64 // r with r^2 ≡ n (mod p)
	RMinus uint64 // p - RPlus; 0 for p = 2, which has the single root RPlus
	Log    uint16 // ceil(10 * ln(p)), the log-approximation weight
}

// FactorBase is the ordered set of primes a sieve run trial-divides
// against, plus the modulus it was built for.
type FactorBase struct {
	N       *bigint.Int
	Entries []Entry
}

// LargestPrime returns the largest prime in the base, or 0 if empty.
func (fb *FactorBase) LargestPrime() uint64 {
	if len(fb.Entries) == 0 {
		return 0
	}
	return fb.Entries[len(fb.Entries)-1].P
}

// sizeAnchors is the digit-count -> B piecewise-linear table from the
// spec, interpolated (and, past the last anchor, extrapolated along
// the final segment's slope) to pick a default factor-base size.
var sizeAnchors = []struct {
	digits int
	size   int
}{
	{1, 2}, {6, 5}, {10, 30}, {20, 60}, {30, 500},
	{40, 1200}, {50, 5000}, {60, 12000}, {90, 60000},
}

// RecommendedSize returns the default factor-base size for an n with
// the given decimal digit count.
func RecommendedSize(digits int) int {
	anchors := sizeAnchors
	if digits <= anchors[0].digits {
		return anchors[0].size
	}
	for i := 1; i < len(anchors); i++ {
		if digits <= anchors[i].digits {
			lo, hi := anchors[i-1], anchors[i]
			frac := float64(digits-lo.digits) / float64(hi.digits-lo.digits)
			size := float64(lo.size) + frac*float64(hi.size-lo.size)
			return int(math.Ceil(size))
		}
	}
	last := anchors[len(anchors)-1]
	prev := anchors[len(anchors)-2]
	slope := float64(last.size-prev.size) / float64(last.digits-prev.digits)
	size := float64(last.size) + slope*float64(digits-last.digits)
	return int(math.Ceil(size))
}

// DigitCount returns the base-10 digit count of n (used to look up the
// default factor-base size).
func DigitCount(n *bigint.Int) int {
	return len(n.Big().String())
}

// Build constructs a factor base of the requested size for n: it
// streams candidate primes from an expanding sieve of Eratosthenes,
// keeps those with Jacobi(n mod p, p) == 1, and always includes p=2
// first when n is odd.
func Build(ctx context.Context, n *bigint.Int, size int) (*FactorBase, error) {
	if size <= 0 {
		return nil, qserr.New(qserr.InvalidInput, "factorbase: size must be positive")
	}

	fb := &FactorBase{N: bigint.Copy(n)}

	if n.Big().Bit(0) == 1 {
		nMod2 := uint64(n.Big().Bit(0))
		fb.Entries = append(fb.Entries, Entry{P: 2, RPlus: nMod2, RMinus: 0, Log: logWeight(2)})
	}

	limit := uint64(1000)
	if want := uint64(size) * 20; want > limit {
		limit = want
	}

	for len(fb.Entries) < size {
		select {
		case <-ctx.Done():
			return nil, qserr.Wrap(qserr.Cancelled, ctx.Err())
		default:
		}

		fb.Entries = fb.Entries[:0]
		if n.Big().Bit(0) == 1 {
			fb.Entries = append(fb.Entries, Entry{P: 2, RPlus: uint64(n.Big().Bit(0)), RMinus: 0, Log: logWeight(2)})
		}

		primes := sieveEratosthenes(limit)
		for _, p := range primes {
			if p == 2 {
				continue
			}
			nModP := modUint64(n, p)
			if modmath.Jacobi(int64(nModP), p) != 1 {
				continue
			}
			r := modmath.ModularSqrt(nModP, p)
			fb.Entries = append(fb.Entries, Entry{
				P:      p,
				RPlus:  r,
				RMinus: p - r,
				Log:    logWeight(p),
			})
			if len(fb.Entries) >= size {
				break
			}
		}

		if len(fb.Entries) < size {
			limit *= 2
		}
	}

	if len(fb.Entries) > size {
		fb.Entries = fb.Entries[:size]
	}

	sort.Slice(fb.Entries, func(i, j int) bool { return fb.Entries[i].P < fb.Entries[j].P })
	return fb, nil
}

func logWeight(p uint64) uint16 {
	return uint16(math.Ceil(10 * math.Log(float64(p))))
}

func modUint64(n *bigint.Int, p uint64) uint64 {
	m := new(bigint.Int).Mod(n, bigint.NewUint(p))
	return m.Uint64()
}

// sieveEratosthenes returns every prime <= limit.
func sieveEratosthenes(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	var primes []uint64
	for p := uint64(2); p <= limit; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		if p*p > limit {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}
	return primes
}
