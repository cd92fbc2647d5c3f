package qs

import (
	"context"
	"testing"

	"qsieve/bigint"
	"qsieve/config"
)

func TestFindDivisorEvenShortCircuit(t *testing.T) {
	n := bigint.New(100)
	d, err := FindDivisor(context.Background(), n, config.Default())
	if err != nil {
		t.Fatalf("FindDivisor: %v", err)
	}
	if d.Uint64() != 2 {
		t.Fatalf("FindDivisor(100) = %v, want 2", d)
	}
}

func TestFindDivisorPerfectPower(t *testing.T) {
	n := bigint.New(243) // 3^5
	d, err := FindDivisor(context.Background(), n, config.Default())
	if err != nil {
		t.Fatalf("FindDivisor: %v", err)
	}
	if d.Uint64() != 3 {
		t.Fatalf("FindDivisor(243) = %v, want 3", d)
	}
}

func TestFindDivisorSmallComposite(t *testing.T) {
	n := bigint.New(8051) // 83 * 97
	d, err := FindDivisor(context.Background(), n, config.Default())
	if err != nil {
		t.Fatalf("FindDivisor: %v", err)
	}
	v := d.Uint64()
	if v != 83 && v != 97 {
		t.Fatalf("FindDivisor(8051) = %v, want 83 or 97", v)
	}
}

func TestFindDivisorRejectsTrivialInputs(t *testing.T) {
	for _, n := range []*bigint.Int{bigint.New(1), bigint.New(0), bigint.New(-5)} {
		if _, err := FindDivisor(context.Background(), n, config.Default()); err == nil {
			t.Fatalf("FindDivisor(%v): expected an error", n)
		}
	}
}

func TestFindDivisorRejectsPrime(t *testing.T) {
	if _, err := FindDivisor(context.Background(), bigint.New(104729), config.Default()); err == nil {
		t.Fatal("FindDivisor on a prime should error")
	}
}

func TestFactorFullFactorization(t *testing.T) {
	factors, err := Factor(context.Background(), bigint.New(60), config.Default())
	if err != nil {
		t.Fatalf("Factor: %v", err)
	}
	want := []int64{2, 2, 3, 5}
	if len(factors) != len(want) {
		t.Fatalf("Factor(60) = %v, want %v", factors, want)
	}
	for i, w := range want {
		if factors[i].Int64() != w {
			t.Fatalf("Factor(60)[%d] = %v, want %v", i, factors[i], w)
		}
	}
}

func TestFactorOfOneIsEmpty(t *testing.T) {
	factors, err := Factor(context.Background(), bigint.New(1), config.Default())
	if err != nil {
		t.Fatalf("Factor(1): %v", err)
	}
	if len(factors) != 0 {
		t.Fatalf("Factor(1) = %v, want empty", factors)
	}
}

func TestFactorOfPrime(t *testing.T) {
	factors, err := Factor(context.Background(), bigint.New(97), config.Default())
	if err != nil {
		t.Fatalf("Factor(97): %v", err)
	}
	if len(factors) != 1 || factors[0].Int64() != 97 {
		t.Fatalf("Factor(97) = %v, want [97]", factors)
	}
}

func TestPerfectPowerBaseDetectsExactPowers(t *testing.T) {
	if base, ok := perfectPowerBase(bigint.New(243)); !ok || base.Uint64() != 3 {
		t.Fatalf("perfectPowerBase(243) = (%v, %v), want (3, true)", base, ok)
	}
	if _, ok := perfectPowerBase(bigint.New(8051)); ok {
		t.Fatal("perfectPowerBase(8051) should report false")
	}
}

func TestSelectMultiplierStaysWithinCandidates(t *testing.T) {
	candidates := map[uint64]bool{1: true, 3: true, 5: true, 7: true, 11: true, 13: true, 15: true, 17: true, 19: true, 21: true, 23: true}
	k := selectMultiplier(bigint.New(8051))
	if !candidates[k] {
		t.Fatalf("selectMultiplier returned %d, not one of the known candidates", k)
	}
}
