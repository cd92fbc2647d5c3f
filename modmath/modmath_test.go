package modmath_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/modmath"
)

func TestJacobiKnownValues(t *testing.T) {
	require.Equal(t, -1, modmath.Jacobi(1001, 9907))
	require.Equal(t, 1, modmath.Jacobi(1, 3))
	require.Equal(t, 0, modmath.Jacobi(9, 3))
}

func TestJacobiMatchesMathBig(t *testing.T) {
	for _, n := range []uint64{3, 5, 7, 11, 101, 9907} {
		for a := int64(-20); a <= 20; a++ {
			got := modmath.Jacobi(a, n)
			want := big.Jacobi(big.NewInt(a), new(big.Int).SetUint64(n))
			require.Equal(t, want, got, "a=%d n=%d", a, n)
		}
	}
}

func TestModularSqrtKnownValues(t *testing.T) {
	r := modmath.ModularSqrt(7, 29)
	require.Contains(t, []uint64{6, 23}, r)
	// Tie-break: smaller of r, p-r.
	require.Equal(t, uint64(6), r)
}

func TestModularSqrtRoundTrip(t *testing.T) {
	primes := []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 97, 1009}
	for _, p := range primes {
		for n := uint64(1); n < p; n++ {
			if modmath.Jacobi(int64(n), p) != 1 {
				continue
			}
			r := modmath.ModularSqrt(n, p)
			require.Equal(t, n, uint128mulmod(r, r, p), "p=%d n=%d r=%d", p, n, r)
		}
	}
}

func uint128mulmod(a, b, m uint64) uint64 {
	return new(big.Int).Mod(new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)), new(big.Int).SetUint64(m)).Uint64()
}

func TestInvModRoundTrip(t *testing.T) {
	for _, p := range []uint64{3, 5, 7, 11, 1009} {
		for a := uint64(1); a < p; a++ {
			inv := modmath.InvMod(a, p)
			require.Equal(t, uint64(1), uint128mulmod(a, inv, p))
		}
	}
}

func TestInvModNotCoprime(t *testing.T) {
	require.Equal(t, uint64(0), modmath.InvMod(4, 8))
}
