package sieve

import (
	"qsieve/bigint"
	"qsieve/factorbase"
)

// smallPrimeCycle is the length of the combined small-prime template:
// lcm(2,3,5,7). Only primes dividing this period recur at the same
// window offset every copy()'d block, so only 2, 3, 5, and 7 are folded
// into it; every other factor-base prime, however small, is sieved
// through the ordinary per-root stepped loop instead.
const smallPrimeCycle = 210

// window describes one contiguous range of k offsets sharing a counter
// buffer: x ranges over x0+k0 .. x0+k0+W-1.
type window struct {
	k0 int64
	w  int
}

// sieveWindow lays logp weights into c (length >= w.w) for every
// factor-base entry, using the precomputed x0 mod p residues.
func sieveWindow(fb *factorbase.FactorBase, x0ModP []uint64, w window, c []uint16) {
	buf := c[:w.w]
	for i := range buf {
		buf[i] = 0
	}

	applySmallPrimeTemplate(fb, x0ModP, w, buf)

	for i, e := range fb.Entries {
		if isTemplatePrime(e.P) {
			continue // already folded into the combined template above
		}
		if e.P == 2 {
			continue
		}
		addRoot(buf, w.w, e.P, rootPosition(e.RPlus, x0ModP[i], w.k0, e.P), e.Log)
		addRoot(buf, w.w, e.P, rootPosition(e.RMinus, x0ModP[i], w.k0, e.P), e.Log)
	}
}

// isTemplatePrime reports whether p divides smallPrimeCycle (2, 3, 5, 7):
// only those primes recur with the same residue every smallPrimeCycle
// offsets, which is what makes replaying the template with copy() valid.
// Every other factor-base prime, however small, must go through the
// ordinary per-root stepped loop instead.
func isTemplatePrime(p uint64) bool {
	switch p {
	case 2, 3, 5, 7:
		return true
	default:
		return false
	}
}

// applySmallPrimeTemplate builds the combined logp pattern for the
// factor-base primes dividing smallPrimeCycle (2, 3, 5, 7; p=2 using its
// single root) and copy()'s it across the window -- the teacher's
// precompute-once-and-replicate idiom applied to the sieve's tightest
// inner loop.
func applySmallPrimeTemplate(fb *factorbase.FactorBase, x0ModP []uint64, w window, buf []uint16) {
	template := make([]uint16, smallPrimeCycle)
	any := false
	for i, e := range fb.Entries {
		if !isTemplatePrime(e.P) {
			continue
		}
		any = true
		if e.P == 2 {
			addRoot(template, smallPrimeCycle, 2, rootPosition(e.RPlus, x0ModP[i], w.k0, 2), e.Log)
			continue
		}
		addRoot(template, smallPrimeCycle, e.P, rootPosition(e.RPlus, x0ModP[i], w.k0, e.P), e.Log)
		addRoot(template, smallPrimeCycle, e.P, rootPosition(e.RMinus, x0ModP[i], w.k0, e.P), e.Log)
	}
	if !any {
		return
	}
	filled := copy(buf, template)
	for filled < len(buf) {
		filled += copy(buf[filled:], buf[:filled])
	}
}

func addRoot(buf []uint16, w int, p uint64, start int, logp uint16) {
	for j := start; j < w; j += int(p) {
		buf[j] += logp
	}
}

// rootPosition returns the offset within the window where x0+k0+j ≡ r
// (mod p).
func rootPosition(r, x0ModP uint64, k0 int64, p uint64) int {
	pk0 := k0 % int64(p)
	if pk0 < 0 {
		pk0 += int64(p)
	}
	diff := (int64(r) - int64(x0ModP) - pk0) % int64(p)
	if diff < 0 {
		diff += int64(p)
	}
	return int(diff)
}

// precomputeX0ModP returns x0 mod p for every factor-base entry.
func precomputeX0ModP(fb *factorbase.FactorBase, x0 *bigint.Int) []uint64 {
	out := make([]uint64, len(fb.Entries))
	for i, e := range fb.Entries {
		out[i] = new(bigint.Int).Mod(x0, bigint.NewUint(e.P)).Uint64()
	}
	return out
}
