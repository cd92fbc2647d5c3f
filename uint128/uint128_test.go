package uint128_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/uint128"
)

func toBig(v uint128.Uint128) *big.Int {
	hi := new(big.Int).SetUint64(v.Hi)
	hi.Lsh(hi, 64)
	return hi.Or(hi, new(big.Int).SetUint64(v.Lo))
}

func TestMul64FullProduct(t *testing.T) {
	a, b := uint64(0xffffffffffffffff), uint64(0xfffffffffffffffe)
	got := uint128.Mul64(a, b)
	want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	require.Equal(t, want, toBig(got))
}

func TestDivModByU64(t *testing.T) {
	v := uint128.Mul64(123456789012345, 987654321098765)
	q, r := v.DivModByU64(1000000007)

	vBig := toBig(v)
	wantQ, wantR := new(big.Int).QuoRem(vBig, big.NewInt(1000000007), new(big.Int))
	require.Equal(t, wantQ, toBig(q))
	require.Equal(t, wantR.Uint64(), r)
}

func TestShifts(t *testing.T) {
	v := uint128.Uint128{Lo: 1}
	got := v.Lsh(70)
	require.Equal(t, uint64(0), got.Lo)
	require.Equal(t, uint64(1<<6), got.Hi)

	back := got.Rsh(70)
	require.Equal(t, v, back)
}

func TestMulModAndPowMod(t *testing.T) {
	const m = 1000000007
	for _, tc := range []struct{ a, b uint64 }{
		{123456789, 987654321},
		{m - 1, m - 1},
		{0, 5},
	} {
		got := uint128.MulMod(tc.a, tc.b, m)
		want := new(big.Int).Mod(new(big.Int).Mul(new(big.Int).SetUint64(tc.a), new(big.Int).SetUint64(tc.b)), big.NewInt(m))
		require.Equal(t, want.Uint64(), got)
	}

	got := uint128.PowMod(2, 1000, m)
	want := new(big.Int).Exp(big.NewInt(2), big.NewInt(1000), big.NewInt(m))
	require.Equal(t, want.Uint64(), got)
}

func TestModAddSub(t *testing.T) {
	const m = 18446744073709551557 // a large 64-bit prime, close to 2^64
	require.Equal(t, uint64(3), uint128.ModAdd(m-2, 5, m))
	require.Equal(t, uint64(m-3), uint128.ModSub(2, 5, m))
}

func TestDivModWide(t *testing.T) {
	a := uint128.Mul64(0xffffffffffffffff, 0xffffffffffffffff)
	d := uint128.Uint128{Lo: 0, Hi: 1} // 2^64
	q, r := a.DivMod(d)

	aBig := toBig(a)
	dBig := toBig(d)
	wantQ, wantR := new(big.Int).QuoRem(aBig, dBig, new(big.Int))
	require.Equal(t, wantQ, toBig(q))
	require.Equal(t, wantR, toBig(r))
}
