package structs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestVectorRoundTrip(t *testing.T) {
	testVector[uint64](t)
	testVector[uint32](t)
	testVector[uint8](t)
}

func testVector[T constraints.Integer](t *testing.T) {
	v := Vector[T](make([]T, 64))
	for i := range v {
		v[i] = T(i)
	}
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	var vNew Vector[T]
	require.NoError(t, vNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(v, vNew))
}

func TestMatrixRoundTrip(t *testing.T) {
	m := Matrix[uint64](make([]Vector[uint64], 8))
	for i := range m {
		row := make(Vector[uint64], 4)
		for j := range row {
			row[j] = uint64(i * j)
		}
		m[i] = row
	}
	data, err := m.MarshalBinary()
	require.NoError(t, err)
	var mNew Matrix[uint64]
	require.NoError(t, mNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(m, mNew))
}
