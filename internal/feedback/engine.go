// internal/feedback/engine.go
//
// Feedback computation and constraint matching.
// Responsibilities:
//   - Score a guess against a secret using the classic two-pass algorithm.
//   - Decide whether a candidate word is consistent with an observation.
//   - Filter word lists by an observation, preserving order.
//
// Notes:
//   - Matches gives exactly the verdict of recomputing feedback and comparing,
//     including for guesses that repeat a letter more often than the candidate.
package feedback

// Compute returns the feedback for guess when the hidden word is secret.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) secret letters.
//
// Pass 2:
//   - For each non-hit guess letter, left to right: if an unclaimed copy remains,
//     mark Present and consume it; otherwise leave it Miss.
func Compute(guess, secret Word) Feedback {
	var res Feedback
	var counts [26]int

	for i := 0; i < Size; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkHit
		} else {
			counts[secret[i]-'a']++
		}
	}

	for i := 0; i < Size; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		}
	}
	return res
}

// Matches reports whether candidate could be the secret given obs, i.e.
// whether Compute(obs.Guess, candidate) == obs.Result.
//
// The check works from the observation alone: every Hit and Present mark
// claims one copy of its letter. A letter whose marks include a Miss has
// its count in the candidate pinned to exactly the claimed number; otherwise
// the claimed number is a lower bound. Presents for a letter must precede
// its Misses, since Compute hands out Presents left to right.
func Matches(obs Observation, candidate Word) bool {
	g, r := obs.Guess, obs.Result

	var claimed, have [26]int
	var missed [26]bool

	for i := 0; i < Size; i++ {
		j := g[i] - 'a'
		switch r[i] {
		case MarkHit:
			if candidate[i] != g[i] {
				return false
			}
			claimed[j]++
		case MarkPresent:
			if candidate[i] == g[i] || missed[j] {
				return false
			}
			claimed[j]++
		default:
			if candidate[i] == g[i] {
				return false
			}
			missed[j] = true
		}
	}

	for _, c := range candidate {
		have[c-'a']++
	}
	for _, c := range g {
		j := c - 'a'
		if missed[j] {
			if have[j] != claimed[j] {
				return false
			}
		} else if have[j] < claimed[j] {
			return false
		}
	}
	return true
}

// Filter returns the words consistent with obs, in their original order.
// The input slice is not modified.
func Filter(obs Observation, words []Word) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if Matches(obs, w) {
			out = append(out, w)
		}
	}
	return out
}
