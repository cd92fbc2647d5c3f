package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
	"qsieve/matrix"
	"qsieve/relations"
)

func combinedParity(rels []*relations.Relation, idx []int, numCols int) []int {
	out := make([]int, numCols)
	for _, i := range idx {
		for c, e := range rels[i].Exponents {
			if c >= numCols {
				break
			}
			out[c] += e
		}
	}
	for c := range out {
		out[c] %= 2
	}
	return out
}

func TestFindDependenciesPigeonhole(t *testing.T) {
	factorBaseLen := 3 // 4 columns total including the sign bit
	rels := []*relations.Relation{
		relations.NewFull(bigint.New(1), []int{0, 1, 0, 0}),
		relations.NewFull(bigint.New(2), []int{0, 1, 0, 0}),
		relations.NewFull(bigint.New(3), []int{0, 0, 1, 0}),
		relations.NewFull(bigint.New(4), []int{0, 0, 1, 0}),
		relations.NewFull(bigint.New(5), []int{1, 0, 0, 1}),
	}

	deps := matrix.FindDependencies(rels, factorBaseLen, 8)
	require.NotEmpty(t, deps)

	for _, d := range deps {
		require.NotEmpty(t, d)
		parity := combinedParity(rels, d, factorBaseLen+1)
		for _, p := range parity {
			require.Zero(t, p, "dependency %v has odd column", d)
		}
	}
}

func TestFindDependenciesNoneWhenIndependent(t *testing.T) {
	factorBaseLen := 3
	rels := []*relations.Relation{
		relations.NewFull(bigint.New(1), []int{1, 0, 0, 0}),
		relations.NewFull(bigint.New(2), []int{0, 1, 0, 0}),
		relations.NewFull(bigint.New(3), []int{0, 0, 1, 0}),
		relations.NewFull(bigint.New(4), []int{0, 0, 0, 1}),
	}
	deps := matrix.FindDependencies(rels, factorBaseLen, 8)
	require.Empty(t, deps)
}
