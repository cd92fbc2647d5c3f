package relations_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
	"qsieve/relations"
)

var testN, _ = bigint.NewFromString("8051") // 83 * 97, only used as a modulus here

func TestStoreDedupesFullRelations(t *testing.T) {
	s := relations.NewStore(testN, 5)

	r := relations.NewFull(bigint.New(123), []int{0, 1, 0, 2, 0, 0})
	require.True(t, s.AddFull(r))
	require.False(t, s.AddFull(relations.NewFull(bigint.New(123), []int{0, 1, 0, 2, 0, 0})))
	require.Equal(t, 1, s.Count())
}

func TestStoreClosesCycleOnRepeatedLargePrime(t *testing.T) {
	s := relations.NewStore(testN, 5)

	rel1 := relations.NewPartial(bigint.New(17), []int{0, 1, 0, 0, 0, 0}, 9973)
	rel2 := relations.NewPartial(bigint.New(19), []int{0, 0, 1, 0, 0, 0}, 9973)

	require.False(t, s.AddPartial(rel1))
	require.Equal(t, 0, s.Count())

	require.True(t, s.AddPartial(rel2))
	require.Equal(t, 1, s.Count())

	stats := s.Stats()
	require.Equal(t, 1, stats.CyclesClosed)
	require.Equal(t, 1, stats.Accepted)

	combined := s.Relations()[0]
	want := new(bigint.Int).Mul(bigint.New(17), bigint.New(19))
	want.Mul(want, new(bigint.Int).Inv(bigint.New(9973), testN)) // the shared large prime's square root is divided out of X
	want.Mod(want, testN)
	require.Zero(t, combined.X.Compare(want))
	require.Equal(t, []int{0, 1, 1, 0, 0, 0}, combined.Exponents)
	require.True(t, combined.IsFull())
}

func TestStoreDistinctLargePrimesStayPending(t *testing.T) {
	s := relations.NewStore(testN, 5)

	require.False(t, s.AddPartial(relations.NewPartial(bigint.New(3), []int{0, 1, 0, 0, 0, 0}, 101)))
	require.False(t, s.AddPartial(relations.NewPartial(bigint.New(5), []int{0, 0, 1, 0, 0, 0}, 103)))
	require.Equal(t, 0, s.Count())
	require.Equal(t, 2, s.Stats().Pending)
}

func TestEnoughRespectsSurplus(t *testing.T) {
	s := relations.NewStore(testN, 3)
	for i := 0; i < 4; i++ {
		s.AddFull(relations.NewFull(bigint.New(int64(100+i)), []int{0, 0, 0, 0}))
	}
	require.True(t, s.Enough(0)) // 4 relations >= 3+1+0
	require.False(t, s.Enough(1))
}

func TestRelationEqual(t *testing.T) {
	a := relations.NewFull(bigint.New(7), []int{0, 1, 2})
	b := relations.NewFull(bigint.New(7), []int{0, 1, 2})
	c := relations.NewFull(bigint.New(8), []int{0, 1, 2})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
