package primality_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"qsieve/bigint"
	"qsieve/primality"
)

func TestIsPrimeU64SmallValues(t *testing.T) {
	primes := map[uint64]bool{0: false, 1: false, 2: true, 3: true, 4: false, 5: true, 17: true, 18: false}
	for n, want := range primes {
		require.Equal(t, want, primality.IsPrimeU64(n), "n=%d", n)
	}
}

func TestIsPrimeU64MatchesBigReference(t *testing.T) {
	for n := uint64(2); n < 5000; n++ {
		want := big.NewInt(0).SetUint64(n).ProbablyPrime(30)
		require.Equal(t, want, primality.IsPrimeU64(n), "n=%d", n)
	}
}

func TestIsPrimeU64Known64BitPrime(t *testing.T) {
	require.True(t, primality.IsPrimeU64(0xffffffffffffffc5)) // 2^64 - 59
	require.False(t, primality.IsPrimeU64(0xffffffffffffffff)) // 2^64 - 1, composite
}

func TestIsPrimeBig(t *testing.T) {
	bigPrime, ok := bigint.NewFromString("18446744073709551629") // 2^64 + 13
	require.True(t, ok)
	require.True(t, primality.IsPrimeBig(bigPrime))

	notPrime := new(bigint.Int).Mul(bigPrime, bigint.New(3))
	require.False(t, primality.IsPrimeBig(notPrime))
}
