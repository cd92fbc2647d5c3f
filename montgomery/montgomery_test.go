package montgomery_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/montgomery"
)

var testModuli = []uint64{3, 5, 1000000007, 0xffffffffffffffc5, 18446744073709551557}

func TestToFromResidueRoundTrip(t *testing.T) {
	for _, m := range testModuli {
		red := montgomery.NewReducer64(m)
		for _, a := range []uint64{0, 1, 2, m / 2, m - 1} {
			res := red.ToResidue(a)
			require.Equal(t, a, red.FromResidue(res), "m=%d a=%d", m, a)
		}
	}
}

func TestMulMatchesModArithmetic(t *testing.T) {
	for _, m := range testModuli {
		red := montgomery.NewReducer64(m)
		for _, a := range []uint64{0, 1, 2, m / 3, m - 1} {
			for _, b := range []uint64{0, 1, 3, m / 5, m - 2} {
				got := red.FromResidue(red.Mul(red.ToResidue(a), red.ToResidue(b)))
				want := new(big.Int).Mod(
					new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)),
					new(big.Int).SetUint64(m),
				).Uint64()
				require.Equal(t, want, got, "m=%d a=%d b=%d", m, a, b)
			}
		}
	}
}

func TestPowModU64(t *testing.T) {
	for _, m := range testModuli {
		red := montgomery.NewReducer64(m)
		for _, a := range []uint64{2, 3, m - 1} {
			for _, e := range []uint64{0, 1, 2, 1000} {
				got := red.PowMod(a, e)
				want := new(big.Int).Exp(new(big.Int).SetUint64(a), new(big.Int).SetUint64(e), new(big.Int).SetUint64(m)).Uint64()
				require.Equal(t, want, got, "m=%d a=%d e=%d", m, a, e)
			}
		}
	}
}

func TestEvenModulusPanics(t *testing.T) {
	require.Panics(t, func() { montgomery.NewReducer64(4) })
}
