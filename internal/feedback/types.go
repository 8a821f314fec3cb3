// internal/feedback/types.go
//
// Core type definitions for the feedback engine.
// Defines:
//   - Word: a five-letter lowercase guess or dictionary entry.
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Feedback: the five marks for one guess against one secret.
//   - Observation: a (guess, feedback) pair recorded during play.

package feedback

import "strings"

// Size is the number of letters in every word.
const Size = 5

// Word is an immutable five-letter word of lowercase ASCII letters.
// Construct with ParseWord at input boundaries or MustWord for literals.
type Word [Size]byte

// Mark represents the evaluation result for a single letter in a guess.
//   - MarkMiss:    no unclaimed copy of the letter is left in the secret.
//   - MarkPresent: letter exists in the secret at a different position.
//   - MarkHit:     letter is correct and in the correct position.
type Mark uint8

const (
	MarkMiss Mark = iota
	MarkPresent
	MarkHit
)

// Feedback is the per-position result of one guess against one secret.
// The zero value is all-Miss.
type Feedback [Size]Mark

// Observation is a recorded guess and the feedback it received.
// Once recorded it is a permanent constraint on the candidate set.
type Observation struct {
	Guess  Word
	Result Feedback
}

// NumPatterns is the number of distinct Feedback values (3^5).
const NumPatterns = 243

// AllHit is the feedback of a guess identical to the secret.
var AllHit = Feedback{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}

func (w Word) String() string { return string(w[:]) }

// Distinct reports whether all letters of w differ from each other.
func (w Word) Distinct() bool {
	var seen uint32
	for _, c := range w {
		bit := uint32(1) << (c - 'a')
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// Char returns the feedback-string character for m.
func (m Mark) Char() byte {
	switch m {
	case MarkHit:
		return 'g'
	case MarkPresent:
		return 'y'
	default:
		return '.'
	}
}

// String renders f in the "gy..g" format accepted by ParseFeedback.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, m := range f {
		b.WriteByte(m.Char())
	}
	return b.String()
}

// Solved reports whether every mark is a hit.
func (f Feedback) Solved() bool { return f == AllHit }

// Code packs f into a base-3 number in [0, NumPatterns).
func (f Feedback) Code() int {
	code := 0
	for _, m := range f {
		code = code*3 + int(m)
	}
	return code
}

func (o Observation) String() string {
	return o.Guess.String() + " " + o.Result.String()
}
