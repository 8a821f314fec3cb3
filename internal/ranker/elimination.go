// internal/ranker/elimination.go
//
// Brute-force guess ranking by expected elimination.
//
// For every guess g, the score is
//
//	Σ_{secret} |{c : feedback.Matches((g, Compute(g, secret)), c)}|
//
// Since Matches agrees with recomputing feedback, the inner count is the
// size of the feedback bucket the secret falls into, and the score reduces
// to the sum of squared bucket sizes. Lower is better.
//
// Cost is O(n² · 5); callers gate this behind Config.BruteForceLimit.

package ranker

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// ByElimination ranks every candidate as a next guess, ascending by score.
// Ties keep input order. workers <= 0 means GOMAXPROCS.
func ByElimination(ctx context.Context, words []feedback.Word, workers int) ([]Scored, error) {
	if len(words) == 0 {
		return []Scored{}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Scored, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, guess := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Scored{Word: guess, Score: eliminationScore(guess, words)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b Scored) int { return cmp.Compare(a.Score, b.Score) })
	return out, nil
}

// eliminationScore returns the sum of squared feedback bucket sizes.
func eliminationScore(guess feedback.Word, words []feedback.Word) int {
	var buckets [feedback.NumPatterns]int
	for _, secret := range words {
		buckets[feedback.Compute(guess, secret).Code()]++
	}
	score := 0
	for _, n := range buckets {
		score += n * n
	}
	return score
}
