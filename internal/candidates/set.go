// internal/candidates/set.go
//
// Immutable snapshots of the words still consistent with every observation.
//
// Characteristics:
//   - The dictionary slice is shared, read-only, between all snapshots.
//   - Liveness is tracked per dictionary index in a bitset, so iteration
//     order is always dictionary order.
//   - Filter never mutates its receiver; it returns a new snapshot whose
//     live indexes are a subset of the parent's.

package candidates

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Set is an ordered, immutable candidate set.
type Set struct {
	dict []feedback.Word
	live *bitset.BitSet
}

// New returns a set with every dictionary word live.
// The caller must not modify dict afterwards.
func New(dict []feedback.Word) *Set {
	live := bitset.New(uint(len(dict)))
	live.FlipRange(0, uint(len(dict)))
	return &Set{dict: dict, live: live}
}

// Len returns the number of live words.
func (s *Set) Len() int { return int(s.live.Count()) }

// Words returns the live words in dictionary order as a fresh slice.
func (s *Set) Words() []feedback.Word {
	out := make([]feedback.Word, 0, s.Len())
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		out = append(out, s.dict[i])
	}
	return out
}

// Contains reports whether w is live.
func (s *Set) Contains(w feedback.Word) bool {
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		if s.dict[i] == w {
			return true
		}
	}
	return false
}

// Filter returns a new snapshot with only the words matching obs.
func (s *Set) Filter(obs feedback.Observation) *Set {
	next := s.live.Clone()
	for i, ok := s.live.NextSet(0); ok; i, ok = s.live.NextSet(i + 1) {
		if !feedback.Matches(obs, s.dict[i]) {
			next.Clear(i)
		}
	}
	return &Set{dict: s.dict, live: next}
}
