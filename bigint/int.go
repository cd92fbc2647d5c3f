// Package bigint provides the unbounded-precision integer type used
// throughout the sieve core, wrapping math/big.Int the way the teacher
// codebase wraps it in its own ring.Int: a thin value type whose
// methods mutate the receiver and return it, so call chains read
// left-to-right instead of nesting.
package bigint

import (
	"crypto/rand"
	"math/big"
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	Value big.Int
}

// New creates a new Int with the given int64 value.
func New(v int64) *Int {
	i := new(Int)
	i.Value.SetInt64(v)
	return i
}

// NewUint creates a new Int with the given uint64 value.
func NewUint(v uint64) *Int {
	i := new(Int)
	i.Value.SetUint64(v)
	return i
}

// FromBig wraps an existing *big.Int (copying its value).
func FromBig(v *big.Int) *Int {
	i := new(Int)
	i.Value.Set(v)
	return i
}

// Copy creates a new Int that is a copy of v.
func Copy(v *Int) *Int {
	i := new(Int)
	i.Value.Set(&v.Value)
	return i
}

// RandInt generates a uniformly random Int in [0, max).
func RandInt(max *Int) *Int {
	n, err := rand.Int(rand.Reader, &max.Value)
	if err != nil {
		panic("bigint: crypto/rand failed: " + err.Error())
	}
	return &Int{Value: *n}
}

// NewFromString parses s (base 0: 0x/0/0b prefixes select base).
func NewFromString(s string) (*Int, bool) {
	i := new(Int)
	_, ok := i.Value.SetString(s, 0)
	return i, ok
}

func (i *Int) String() string { return i.Value.String() }

// Big returns the underlying *big.Int (read-only use expected; callers
// that need to mutate should go through Int's own methods).
func (i *Int) Big() *big.Int { return &i.Value }

// Add sets i = a + b and returns i.
func (i *Int) Add(a, b *Int) *Int { i.Value.Add(&a.Value, &b.Value); return i }

// Sub sets i = a - b and returns i.
func (i *Int) Sub(a, b *Int) *Int { i.Value.Sub(&a.Value, &b.Value); return i }

// Mul sets i = a * b and returns i.
func (i *Int) Mul(a, b *Int) *Int { i.Value.Mul(&a.Value, &b.Value); return i }

// Div sets i = a / b truncated toward zero and returns i.
func (i *Int) Div(a, b *Int) *Int { i.Value.Quo(&a.Value, &b.Value); return i }

// Mod sets i = a mod m (Euclidean, always non-negative for m > 0) and
// returns i.
func (i *Int) Mod(a, m *Int) *Int { i.Value.Mod(&a.Value, &m.Value); return i }

// Exp sets i = a^b mod m (or a^b if m is nil) and returns i.
func (i *Int) Exp(a, b, m *Int) *Int {
	var mv *big.Int
	if m != nil {
		mv = &m.Value
	}
	i.Value.Exp(&a.Value, &b.Value, mv)
	return i
}

// Inv sets i = a^-1 mod m (0 if not invertible) and returns i.
func (i *Int) Inv(a, m *Int) *Int {
	if i.Value.ModInverse(&a.Value, &m.Value) == nil {
		i.Value.SetInt64(0)
	}
	return i
}

// Neg sets i = -a and returns i.
func (i *Int) Neg(a *Int) *Int { i.Value.Neg(&a.Value); return i }

// Lsh sets i = a << n and returns i.
func (i *Int) Lsh(a *Int, n uint) *Int { i.Value.Lsh(&a.Value, n); return i }

// Rsh sets i = a >> n and returns i.
func (i *Int) Rsh(a *Int, n uint) *Int { i.Value.Rsh(&a.Value, n); return i }

// GCD sets i = gcd(a, b) and returns i.
func (i *Int) GCD(a, b *Int) *Int {
	i.Value.GCD(nil, nil, new(big.Int).Abs(&a.Value), new(big.Int).Abs(&b.Value))
	return i
}

// Sign returns -1, 0, or +1.
func (i *Int) Sign() int { return i.Value.Sign() }

// BitLen returns the number of bits required to represent |i|.
func (i *Int) BitLen() int { return i.Value.BitLen() }

// Compare returns -1, 0 or +1 as i <, ==, > other.
func (i *Int) Compare(other *Int) int { return i.Value.Cmp(&other.Value) }

// EqualTo reports whether i and other hold the same value.
func (i *Int) EqualTo(other *Int) bool { return i.Value.Cmp(&other.Value) == 0 }

// IsOne reports whether i == 1.
func (i *Int) IsOne() bool { return i.Value.Cmp(big.NewInt(1)) == 0 }

// IsPrime reports whether i is probably prime, using n Miller-Rabin
// rounds on top of the Baillie-PSW test math/big already performs.
func (i *Int) IsPrime(n int) bool { return i.Value.ProbablyPrime(n) }

// Uint64 returns the low 64 bits of i.
func (i *Int) Uint64() uint64 { return i.Value.Uint64() }

// Int64 returns the low 63 bits of i (as a signed value).
func (i *Int) Int64() int64 { return i.Value.Int64() }

// FitsUint64 reports whether i is representable as a uint64.
func (i *Int) FitsUint64() bool { return i.Value.IsUint64() }
