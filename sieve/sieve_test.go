package sieve_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
	"qsieve/factorbase"
	"qsieve/relations"
	"qsieve/sieve"
)

func TestRunGathersRelationsForSmallComposite(t *testing.T) {
	n, ok := bigint.NewFromString("1046333") // 1009 * 1037, small enough to sieve quickly
	require.True(t, ok)

	fb, err := factorbase.Build(context.Background(), n, 40)
	require.NoError(t, err)

	store := relations.NewStore(n, len(fb.Entries))
	err = sieve.Run(context.Background(), n, fb, store, sieve.Params{
		Threads:         2,
		WindowSize:      2000,
		Surplus:         2,
		LargePrimeBound: fb.LargestPrime() * fb.LargestPrime(),
	})
	require.NoError(t, err)
	require.True(t, store.Enough(2))

	for _, rel := range store.Relations() {
		require.True(t, rel.IsFull())

		q := new(big.Int).Mul(rel.X.Big(), rel.X.Big())
		q.Sub(q, n.Big())
		negative := q.Sign() < 0
		if negative {
			q.Neg(q)
		}

		want := 0
		if negative {
			want = 1
		}
		require.Equal(t, want, rel.Exponents[0])

		residual := new(big.Int).Set(q)
		for i, e := range fb.Entries {
			p := new(big.Int).SetUint64(e.P)
			count := 0
			for residual.Sign() != 0 {
				quo, rem := new(big.Int).QuoRem(residual, p, new(big.Int))
				if rem.Sign() != 0 {
					break
				}
				residual = quo
				count++
			}
			require.Equal(t, count, rel.Exponents[i+1], "prime %d", e.P)
		}
		require.Zero(t, residual.Cmp(big.NewInt(1)))
	}
}
