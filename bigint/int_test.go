package bigint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
)

func TestArithmeticChaining(t *testing.T) {
	a, b := bigint.New(7), bigint.New(3)
	sum := new(bigint.Int).Add(a, b)
	require.Equal(t, "10", sum.String())

	prod := new(bigint.Int).Mul(a, b)
	require.Equal(t, "21", prod.String())
}

func TestIntegerSqrt(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 3, 4, 99, 1000000, 1 << 40} {
		r := bigint.IntegerSqrt(bigint.New(n))
		rr := new(bigint.Int).Mul(r, r)
		rp1 := new(bigint.Int).Add(r, bigint.New(1))
		rp1sq := new(bigint.Int).Mul(rp1, rp1)
		require.True(t, rr.Compare(bigint.New(n)) <= 0, "n=%d r=%s", n, r)
		require.True(t, rp1sq.Compare(bigint.New(n)) > 0, "n=%d r=%s", n, r)
	}
}

func TestIntegerNthRoot(t *testing.T) {
	cases := []struct {
		n int64
		k uint
	}{
		{8, 3}, {9, 3}, {1000, 3}, {1, 5}, {1024, 10}, {2, 214},
	}
	for _, c := range cases {
		n := bigint.New(c.n)
		if c.n == 2 {
			n = new(bigint.Int).Exp(bigint.New(2), bigint.New(214), nil)
		}
		r := bigint.IntegerNthRoot(n, c.k)
		rk := new(bigint.Int).Exp(r, bigint.New(int64(c.k)), nil)
		rp1 := new(bigint.Int).Add(r, bigint.New(1))
		rp1k := new(bigint.Int).Exp(rp1, bigint.New(int64(c.k)), nil)
		require.True(t, rk.Compare(n) <= 0, "n=%v k=%d r=%s", n, c.k, r)
		require.True(t, rp1k.Compare(n) > 0, "n=%v k=%d r=%s", n, c.k, r)
	}
}

func TestGCD(t *testing.T) {
	g := new(bigint.Int).GCD(bigint.New(48), bigint.New(18))
	require.Equal(t, "6", g.String())
}

func TestModSqrtKnown(t *testing.T) {
	r := bigint.ModSqrt(bigint.New(7), bigint.New(29))
	require.NotNil(t, r)
	sq := new(bigint.Int).Mul(r, r)
	sq.Mod(sq, bigint.New(29))
	require.Equal(t, "7", sq.String())
}

func TestFromBigRoundTrip(t *testing.T) {
	b := big.NewInt(123456789)
	i := bigint.FromBig(b)
	require.Equal(t, b.String(), i.String())
}
