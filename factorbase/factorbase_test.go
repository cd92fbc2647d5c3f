package factorbase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
	"qsieve/factorbase"
	"qsieve/modmath"
)

func TestBuildProducesQuadraticResidues(t *testing.T) {
	n, ok := bigint.NewFromString("10023859281455311421")
	require.True(t, ok)

	fb, err := factorbase.Build(context.Background(), n, 80)
	require.NoError(t, err)
	require.Len(t, fb.Entries, 80)

	nMod2 := bigint.New(0)
	for _, e := range fb.Entries {
		if e.P == 2 {
			continue
		}
		require.Equal(t, 1, modmath.Jacobi(int64(new(bigint.Int).Mod(n, bigint.NewUint(e.P)).Uint64()), e.P), "p=%d", e.P)

		rSq := (e.RPlus * e.RPlus) % e.P
		require.Equal(t, new(bigint.Int).Mod(n, bigint.NewUint(e.P)).Uint64(), rSq, "p=%d", e.P)
	}
	_ = nMod2
}

func TestRecommendedSizeMonotonic(t *testing.T) {
	prev := 0
	for _, d := range []int{1, 6, 10, 20, 30, 40, 50, 60, 90, 120} {
		size := factorbase.RecommendedSize(d)
		require.GreaterOrEqual(t, size, prev)
		prev = size
	}
}

func TestRecommendedSizeAnchors(t *testing.T) {
	require.Equal(t, 2, factorbase.RecommendedSize(1))
	require.Equal(t, 60000, factorbase.RecommendedSize(90))
}
