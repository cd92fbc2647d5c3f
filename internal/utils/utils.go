// Package utils holds small numeric and slice helpers shared across the
// sieve core's packages, in the style of the teacher codebase's
// top-level utils package (GCD, random scalars, slice rotation and
// dedup helpers consumed by ring and higher-level packages).
package utils

import (
	"crypto/rand"
	"encoding/binary"
	"sort"
)

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// RandUint64 returns a cryptographically random uint64, used to seed
// randomized curve/witness selection (e.g. the ECM fallback factorizer).
func RandUint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("utils: crypto/rand failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// AllDistinct reports whether every element of s is unique.
func AllDistinct[T comparable](s []T) bool {
	seen := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// GetSortedKeys returns the keys of m in ascending order.
func GetSortedKeys[K ~int | ~int64 | ~uint64, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetDistincts returns the distinct elements of s, order unspecified.
func GetDistincts[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// RotateSlice returns a new slice holding s rotated left by k
// positions (k may be negative or larger than len(s)).
func RotateSlice[T any](s []T, k int) []T {
	out := make([]T, len(s))
	copy(out, s)
	RotateSliceInPlace(out, k)
	return out
}

// RotateSliceInPlace rotates s left by k positions in place.
func RotateSliceInPlace[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// RotateUint64SliceAllocFree writes s rotated left by k positions into
// sout without allocating, matching the teacher's allocation-free
// rotation idiom.
func RotateUint64SliceAllocFree(s []uint64, k int, sout []uint64) {
	n := len(s)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if &s[0] == &sout[0] {
		RotateSliceInPlace(sout, k)
		return
	}
	copy(sout, s[k:])
	copy(sout[n-k:], s[:k])
}
