package smallfactor

import "testing"

func TestTryFactorKnownComposites(t *testing.T) {
	cases := []uint64{
		1046333,             // 1009 * 1037
		9999999967 * 3,      // small prime times large prime
		1000000007 * 999983, // two large-ish primes
	}
	for _, n := range cases {
		d, ok := TryFactor(n)
		if !ok {
			t.Fatalf("TryFactor(%d): expected a factor", n)
		}
		if n%d != 0 || d == 1 || d == n {
			t.Fatalf("TryFactor(%d) returned non-divisor %d", n, d)
		}
	}
}

func TestTryFactorPrimeReturnsFalse(t *testing.T) {
	_, ok := TryFactor(999999937) // prime
	if ok {
		t.Fatalf("TryFactor on a prime should report false")
	}
}

func TestPollardRhoFindsFactor(t *testing.T) {
	d, ok := PollardRho(8051) // 83 * 97
	if !ok {
		t.Fatal("expected PollardRho to find a factor of 8051")
	}
	if 8051%d != 0 || d == 1 || d == 8051 {
		t.Fatalf("PollardRho(8051) returned non-divisor %d", d)
	}
}
