package relations

import (
	"sync"

	"qsieve/bigint"
)

// Store collects full relations (both sieved directly and synthesized
// by closing cycles in the partial-relation graph) and deduplicates
// them by x. It is safe for concurrent use by the sieve's worker pool.
type Store struct {
	mu sync.Mutex

	n             *bigint.Int
	factorBaseLen int

	seenX map[string]bool
	full  []*Relation

	partials *graph

	relationsAccepted int
	relationsDropped  int
	cyclesClosed      int
}

// NewStore creates an empty relation store for factoring n against a
// factor base of factorBaseLen primes.
func NewStore(n *bigint.Int, factorBaseLen int) *Store {
	return &Store{
		n:             bigint.Copy(n),
		factorBaseLen: factorBaseLen,
		seenX:         make(map[string]bool),
		partials:      newGraph(n),
	}
}

// AddFull records a full relation, returning false if x was already
// recorded (as a full relation, or via a closed cycle).
func (s *Store) AddFull(rel *Relation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addFullLocked(rel)
}

func (s *Store) addFullLocked(rel *Relation) bool {
	key := rel.X.String()
	if s.seenX[key] {
		s.relationsDropped++
		return false
	}
	s.seenX[key] = true
	s.full = append(s.full, rel)
	s.relationsAccepted++
	return true
}

// AddPartial records a one-large-prime partial relation. If this is the
// second sighting of that large prime along an existing path in the
// graph, the cycle is closed and the resulting full relation is also
// recorded; AddPartial reports whether a new full relation resulted.
func (s *Store) AddPartial(rel *Relation) bool {
	if len(rel.LargePrimes) != 1 {
		return false
	}
	var largePrime uint64
	for p := range rel.LargePrimes {
		largePrime = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	combined, closed := s.partials.insert(largePrime, 1, rel)
	if !closed {
		return false
	}
	s.cyclesClosed++

	full, ok := resolve(combined, s.n)
	if !ok {
		// Every large prime in a closed cycle must have an even total
		// count; if not, the cycle spans an unsupported multi-large-prime
		// configuration and is silently discarded rather than fed to the
		// matrix with a bad invariant.
		s.relationsDropped++
		return false
	}
	return s.addFullLocked(full)
}

// Count returns the number of full relations currently stored.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.full)
}

// Enough reports whether enough full relations have been gathered to
// run the linear algebra stage: at least as many rows as factor-base
// columns (+1 for the sign column), plus the requested surplus to absorb a few
// all-zero or duplicate null-space vectors.
func (s *Store) Enough(surplus int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.full) >= s.factorBaseLen+1+surplus
}

// Relations returns a snapshot copy of the full relations gathered so
// far.
func (s *Store) Relations() []*Relation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Relation, len(s.full))
	copy(out, s.full)
	return out
}

// Stats reports relation bookkeeping counters, used for the sieve's
// end-of-run "sieve.done" report.
type Stats struct {
	Accepted     int
	Dropped      int
	CyclesClosed int
	Pending      int
}

// Stats returns a snapshot of the store's bookkeeping counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Accepted:     s.relationsAccepted,
		Dropped:      s.relationsDropped,
		CyclesClosed: s.cyclesClosed,
		Pending:      len(s.partials.index) - 1, // exclude the sentinel
	}
}
