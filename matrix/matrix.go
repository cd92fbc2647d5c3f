// Package matrix turns a set of relations into null-space vectors over
// GF(2): each relation contributes one row (its factor-base exponent
// parities, sign included), and a structured Gaussian elimination finds
// combinations of rows that XOR to the zero vector -- exactly the
// combinations whose relation product is a perfect square.
package matrix

import (
	"math/bits"

	"qsieve/internal/structs"
	"qsieve/relations"
)

const wordBits = 64

// row is one bit-matrix row: its coefficient bits (one per factor-base
// column, plus the sign column at index 0) packed into 64-bit words,
// and a parallel history of which original relation indices combine to
// produce it.
type row struct {
	bits    structs.Vector[uint64]
	history structs.Vector[uint64]
}

func newRow(numCols, numRows int) row {
	return row{
		bits:    make(structs.Vector[uint64], wordsFor(numCols)),
		history: make(structs.Vector[uint64], wordsFor(numRows)),
	}
}

func wordsFor(bitsWanted int) int { return (bitsWanted + wordBits - 1) / wordBits }

func (r row) get(i int) bool { return r.bits[i/wordBits]>>(uint(i)%wordBits)&1 != 0 }
func (r row) set(i int)      { r.bits[i/wordBits] |= 1 << (uint(i) % wordBits) }

func (r row) setHistory(i int) { r.history[i/wordBits] |= 1 << (uint(i) % wordBits) }

func (r row) isZero() bool {
	for _, w := range r.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// leading returns the lowest set bit index in r.bits, or -1 if r is the
// zero vector.
func (r row) leading() int {
	for wi, w := range r.bits {
		if w != 0 {
			return wi*wordBits + bits.TrailingZeros64(w)
		}
	}
	return -1
}

func (r row) xorInto(other row) {
	for i := range r.bits {
		r.bits[i] ^= other.bits[i]
	}
	for i := range r.history {
		r.history[i] ^= other.history[i]
	}
}

// historyIndices returns the set of original relation indices combined
// into r.
func (r row) historyIndices() []int {
	var out []int
	for wi, w := range r.history {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &= w - 1
		}
	}
	return out
}

// build constructs the GF(2) bit matrix for rels against a factor base
// of the given length: column 0 is the sign bit, columns 1..len are the
// factor-base prime exponent parities.
func build(rels []*relations.Relation, factorBaseLen int) []row {
	numCols := factorBaseLen + 1
	rows := make([]row, len(rels))
	for i, rel := range rels {
		r := newRow(numCols, len(rels))
		for col, exp := range rel.Exponents {
			if col >= numCols {
				break
			}
			if exp%2 != 0 {
				r.set(col)
			}
		}
		r.setHistory(i)
		rows[i] = r
	}
	return rows
}

// FindDependencies runs structured Gaussian elimination over GF(2) on
// rels and returns the relation-index sets whose combined exponent
// vector is all-even: each such set, combined, yields a congruence of
// squares usable for factor reconstruction. mergeLimit caps the row
// weight the merge pass is willing to fold away (spec default range
// 5-10); 0 disables the merge pass and runs the filter pass only.
func FindDependencies(rels []*relations.Relation, factorBaseLen int, mergeLimit int) [][]int {
	rows := build(rels, factorBaseLen)
	numCols := factorBaseLen + 1

	rows = filterAndMerge(rows, numCols, mergeLimit)

	pivotRow := make([]int, numCols)
	for i := range pivotRow {
		pivotRow[i] = -1
	}

	var dependencies [][]int

	for i := range rows {
		cur := rows[i]
		for {
			lead := cur.leading()
			if lead < 0 {
				dependencies = append(dependencies, cur.historyIndices())
				break
			}
			if pivotRow[lead] < 0 {
				pivotRow[lead] = i
				rows[i] = cur
				break
			}
			cur.xorInto(rows[pivotRow[lead]])
		}
	}

	return dependencies
}

// rowWeight returns the number of set coefficient bits in r.
func rowWeight(r row) int {
	w := 0
	for _, word := range r.bits {
		w += bits.OnesCount64(word)
	}
	return w
}

// filterAndMerge is the structured pre-pass of §4.H: a filter pass
// repeatedly discards any column (factor-base prime, sign bit included)
// that appears in exactly one live row, since that row's lone copy of
// the column can never be cancelled and so can never take part in a
// valid dependency; a merge pass then picks the lightest remaining
// column (weight <= mergeLimit), XORs its sparsest live row into every
// other row touching that column, and retires both. XORing rows already
// carries their combined history forward (row.xorInto folds both the
// coefficient bits and the relation-index history together), so the
// dense residual solve in FindDependencies lifts merged rows back to
// original relation indices for free. The pre-pass repeats filter after
// every merge, since a merge can turn other columns into singletons.
func filterAndMerge(rows []row, numCols, mergeLimit int) []row {
	active := make([]bool, len(rows))
	for i := range active {
		active[i] = true
	}
	dead := make([]bool, numCols)

	columnRows := func(c int) []int {
		var out []int
		for i, r := range rows {
			if active[i] && r.get(c) {
				out = append(out, i)
			}
		}
		return out
	}

	runFilter := func() {
		changed := true
		for changed {
			changed = false
			for c := 0; c < numCols; c++ {
				if dead[c] {
					continue
				}
				lr := columnRows(c)
				if len(lr) == 0 {
					dead[c] = true
					changed = true
					continue
				}
				if len(lr) == 1 {
					active[lr[0]] = false
					dead[c] = true
					changed = true
				}
			}
		}
	}
	runFilter()

	for {
		bestCol, bestRows, bestWeight := -1, []int(nil), mergeLimit+1
		for c := 0; c < numCols; c++ {
			if dead[c] {
				continue
			}
			lr := columnRows(c)
			if len(lr) == 0 {
				dead[c] = true
				continue
			}
			if len(lr) <= mergeLimit && len(lr) < bestWeight {
				bestCol, bestRows, bestWeight = c, lr, len(lr)
			}
		}
		if bestCol < 0 {
			break
		}

		pivot := bestRows[0]
		for _, i := range bestRows[1:] {
			if rowWeight(rows[i]) < rowWeight(rows[pivot]) {
				pivot = i
			}
		}
		for _, i := range bestRows {
			if i == pivot {
				continue
			}
			rows[i].xorInto(rows[pivot])
		}
		active[pivot] = false
		dead[bestCol] = true
		runFilter()
	}

	out := rows[:0]
	for i, a := range active {
		if a {
			out = append(out, rows[i])
		}
	}
	return out
}
