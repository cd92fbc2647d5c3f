package bigint

import "math/big"

// IntegerSqrt returns r = floor(sqrt(n)) for n >= 0, computed by
// math/big's Int.Sqrt. Postcondition: r*r <= n < (r+1)*(r+1).
func IntegerSqrt(n *Int) *Int {
	if n.Sign() < 0 {
		panic("bigint: IntegerSqrt of a negative number")
	}
	if n.Sign() == 0 {
		return New(0)
	}
	r := new(big.Int).Sqrt(&n.Value)
	return FromBig(r)
}

// IntegerNthRoot returns r = floor(n^(1/k)) for n >= 0, k >= 1, via
// Newton iteration on f(x) = x^k - n: x_{i+1} = ((k-1)*x_i + n/x_i^(k-1)) / k.
// Postcondition: r^k <= n < (r+1)^k.
func IntegerNthRoot(n *Int, k uint) *Int {
	if k == 0 {
		panic("bigint: IntegerNthRoot requires k >= 1")
	}
	if n.Sign() < 0 {
		panic("bigint: IntegerNthRoot of a negative number")
	}
	if n.Sign() == 0 || k == 1 {
		return Copy(n)
	}

	bitLen := n.BitLen()
	x := new(big.Int).Lsh(big.NewInt(1), uint(bitLen/int(k)+1))

	kBig := new(big.Int).SetUint64(uint64(k))
	kMinus1 := new(big.Int).SetUint64(uint64(k - 1))

	for {
		xkm1 := new(big.Int).Exp(x, kMinus1, nil)
		div := new(big.Int).Quo(&n.Value, xkm1)
		num := new(big.Int).Mul(kMinus1, x)
		num.Add(num, div)
		next := new(big.Int).Quo(num, kBig)

		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}

	// Newton can under/overshoot by one at the boundary; correct.
	for new(big.Int).Exp(x, kBig, nil).Cmp(&n.Value) > 0 {
		x.Sub(x, big.NewInt(1))
	}
	for {
		next := new(big.Int).Add(x, big.NewInt(1))
		if new(big.Int).Exp(next, kBig, nil).Cmp(&n.Value) > 0 {
			break
		}
		x = next
	}

	return FromBig(x)
}

// Jacobi returns the Jacobi symbol (a/n) for odd n > 0.
func Jacobi(a, n *Int) int {
	return big.Jacobi(&a.Value, &n.Value)
}

// ModSqrt returns r such that r*r ≡ n (mod p) for prime p, or nil if
// no such r exists (n is a non-residue mod p).
func ModSqrt(n, p *Int) *Int {
	r := new(big.Int).ModSqrt(&n.Value, &p.Value)
	if r == nil {
		return nil
	}
	return FromBig(r)
}
