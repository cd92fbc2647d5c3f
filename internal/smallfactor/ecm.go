package smallfactor

import (
	"math"
	"math/big"

	"qsieve/internal/utils"
	"qsieve/montgomery"
)

// point is an elliptic curve point, or the identity when {0, 1}.
type point struct{ x, y uint64 }

// weierstrass is the curve y^2 = x^3 + a*x + b (mod n), grounded on the
// teacher's ring.Weierstrass/ring.Point, rebuilt on top of
// montgomery.Reducer64 instead of hand-rolled Barrett reduction.
type weierstrass struct {
	a, b uint64
	red  *montgomery.Reducer64
}

func modInv(x, n uint64) uint64 {
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(x), new(big.Int).SetUint64(n))
	if inv == nil {
		return 0
	}
	return inv.Uint64()
}

func (w *weierstrass) mul(a, b uint64) uint64 {
	return w.red.FromResidue(w.red.Mul(w.red.ToResidue(a), w.red.ToResidue(b)))
}

func (w *weierstrass) add(p, q point) point {
	if p.x == 0 && p.y == 1 {
		return q
	}
	if q.x == 0 && q.y == 1 {
		return p
	}

	n := w.red.Modulus()
	if p.x == q.x && p.y == n-q.y {
		return point{0, 1}
	}

	var s uint64
	if p.x != q.x {
		num := (q.y + n - p.y) % n
		den := modInv((q.x+n-p.x)%n, n)
		s = w.mul(num, den)
	} else {
		num := (3*w.mul(p.x, p.x) + w.a) % n
		den := modInv((2 * p.y) % n, n)
		s = w.mul(num, den)
	}

	xr := (w.mul(s, s) + n - p.x + n - q.x) % n
	yr := (w.mul(s, (p.x+n-xr)%n) + n - p.y) % n
	return point{x: xr, y: yr}
}

// checkThenAdd adds p and q, but returns early with a nontrivial gcd if
// the addition formula's denominator shares a factor with n -- exactly
// how the curve arithmetic itself surfaces factors in ECM.
func (w *weierstrass) checkThenAdd(p, q point) (point, uint64) {
	n := w.red.Modulus()
	var denom uint64
	if p.x == q.x && p.y == q.y {
		denom = (p.y << 1) % n
	} else {
		denom = (q.x + n - p.x) % n
	}
	if g := utils.GCD(denom, n); g != 1 {
		return point{}, g
	}
	return w.add(p, q), 1
}

func (w *weierstrass) checkThenMul(k uint64, p point) (point, uint64) {
	q := point{0, 1}
	var gcd uint64
	for k > 0 {
		if k&1 == 1 {
			if q, gcd = w.checkThenAdd(p, q); gcd != 1 {
				return point{}, gcd
			}
		}
		if p, gcd = w.checkThenAdd(p, p); gcd != 1 {
			return point{}, gcd
		}
		k >>= 1
	}
	return q, 1
}

// randomCurve picks a random curve and point on it modulo the odd n,
// retrying until the curve is nonsingular and coprime to n.
func randomCurve(n uint64) (*weierstrass, point) {
	red := montgomery.NewReducer64(n)
	w := &weierstrass{red: red}

	for {
		a := utils.RandUint64() % n
		xg := utils.RandUint64() % n
		yg := utils.RandUint64() % n

		w.a = a
		ySq := w.mul(yg, yg)
		xCube := w.mul(w.mul(xg, xg), xg)
		ax := w.mul(a, xg)
		b := (ySq + n - xCube + n - ax) % n
		w.b = b

		fourACube := (4 * w.mul(w.mul(a, a), a)) % n
		twentySevenBSq := (27 * w.mul(b, b)) % n
		disc := (fourACube + twentySevenBSq) % n
		if disc != 0 && utils.GCD(n, disc) == 1 {
			return w, point{x: xg, y: yg}
		}
	}
}

// ECM runs Lenstra's elliptic-curve method against the odd composite n,
// trying a fresh random curve whenever the current one's smoothness
// bound B is exhausted without producing a factor.
func ECM(n uint64, maxCurves int) (uint64, bool) {
	bound := int(math.Exp(math.Sqrt(2*math.Log(float64(n))*math.Log(math.Log(float64(n)))))) + 1

	for c := 0; c < maxCurves; c++ {
		w, g := randomCurve(n)
		p := g
		for i := 1; i < bound; i++ {
			q, gcd := w.checkThenMul(uint64(i), p)
			if gcd != 1 {
				if gcd > 1 && gcd < n {
					return gcd, true
				}
				break
			}
			p = q
		}
	}
	return 0, false
}
