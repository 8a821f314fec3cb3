// internal/ranker/types.go
//
// Shared types for the ranking strategies.

package ranker

import "github.com/robalobadob/wordle/apps/go-solver/internal/feedback"

// Scored pairs a word with the score a strategy gave it.
type Scored struct {
	Word  feedback.Word
	Score int
}

// FrequencyTable maps words to usage counts. Missing entries count as zero.
type FrequencyTable map[feedback.Word]int

// Strategy names the ranking method behind a suggestion list.
type Strategy string

const (
	Elimination     Strategy = "elimination"
	LetterFrequency Strategy = "letter-frequency"
)

// Words strips scores, keeping order.
func Words(scored []Scored) []feedback.Word {
	out := make([]feedback.Word, len(scored))
	for i, s := range scored {
		out[i] = s.Word
	}
	return out
}
