package reconstruct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
	"qsieve/factorbase"
	"qsieve/reconstruct"
	"qsieve/relations"
)

// n = 83 * 97; x = 3489 satisfies x^2 = 9 (mod n), giving the
// congruence of squares x^2 = 3^2 (mod n).
func TestTryFactorRecoversKnownCongruence(t *testing.T) {
	n := bigint.New(8051)
	fb := &factorbase.FactorBase{
		N:       n,
		Entries: []factorbase.Entry{{P: 3, RPlus: 0, RMinus: 0, Log: 1}},
	}

	// y = 3 = 3^(2/2): the single relation has x = 3489 and carries
	// exponent 2 on p=3, since x^2 = 9 = 3^2 (mod n).
	rel := relations.NewFull(bigint.New(3489), []int{0, 2}) // exponent 2 -> y contribution = 3^1

	p, q, ok := reconstruct.TryFactor(n, fb, []*relations.Relation{rel}, []int{0})
	require.True(t, ok)

	got := map[string]bool{p.String(): true, q.String(): true}
	require.True(t, got["83"] || got["97"])
	require.True(t, got["83"])
	require.True(t, got["97"])
	require.Zero(t, new(bigint.Int).Mul(p, q).Compare(n))
}

func TestTryDependenciesSkipsTrivial(t *testing.T) {
	n := bigint.New(8051)
	fb := &factorbase.FactorBase{N: n, Entries: []factorbase.Entry{{P: 3, Log: 1}}}

	trivial := relations.NewFull(bigint.New(1), []int{0, 0}) // x=1, y=1: trivial congruence
	real := relations.NewFull(bigint.New(3489), []int{0, 2})

	deps := [][]int{{0}, {1}}
	p, q, ok := reconstruct.TryDependencies(n, fb, []*relations.Relation{trivial, real}, deps)
	require.True(t, ok)
	require.Zero(t, new(bigint.Int).Mul(p, q).Compare(n))
}
