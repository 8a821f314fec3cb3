package ranker

import (
	"cmp"
	"slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// ByLetterFrequency scores each word by how common its letters are among
// the candidates, either at the same position (byPosition) or anywhere.
// Repeated letters count once per occurrence. Sorted descending, stable.
func ByLetterFrequency(words []feedback.Word, byPosition bool) []Scored {
	var positional [feedback.Size][26]int
	var global [26]int
	for _, w := range words {
		for i, c := range w {
			positional[i][c-'a']++
			global[c-'a']++
		}
	}

	out := make([]Scored, len(words))
	for k, w := range words {
		score := 0
		for i, c := range w {
			if byPosition {
				score += positional[i][c-'a']
			} else {
				score += global[c-'a']
			}
		}
		out[k] = Scored{Word: w, Score: score}
	}
	slices.SortStableFunc(out, func(a, b Scored) int { return cmp.Compare(b.Score, a.Score) })
	return out
}

// DistinctLetters keeps only scored words made of five different letters.
func DistinctLetters(scored []Scored) []Scored {
	out := make([]Scored, 0, len(scored))
	for _, s := range scored {
		if s.Word.Distinct() {
			out = append(out, s)
		}
	}
	return out
}

// ByUsageFrequency sorts words by their usage count, most common first.
// A nil table ranks everything equally and keeps input order.
func ByUsageFrequency(words []feedback.Word, table FrequencyTable) []Scored {
	out := make([]Scored, len(words))
	for i, w := range words {
		out[i] = Scored{Word: w, Score: table[w]}
	}
	slices.SortStableFunc(out, func(a, b Scored) int { return cmp.Compare(b.Score, a.Score) })
	return out
}
