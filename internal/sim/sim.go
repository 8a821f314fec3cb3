// internal/sim/sim.go
//
// Offline self-play for the solver.
// Responsibilities:
//   - Play one game against a known secret, always taking the top suggestion.
//   - Play every dictionary word as the secret and summarise guess counts.
//
// Notes:
//   - Feedback is computed locally; nothing is persisted.
//   - PlayAll runs games in parallel, each with a single ranking worker.

package sim

import (
	"context"
	"errors"
	"io"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// ErrNoSuggestion is returned when the ranker has nothing left to offer.
var ErrNoSuggestion = errors.New("no suggestion available")

// Game describes what a simulation plays with.
type Game struct {
	Dict     []feedback.Word
	Table    ranker.FrequencyTable
	Ranker   ranker.Config
	MaxTurns int
}

// Result is the record of one simulated game.
type Result struct {
	Secret  feedback.Word
	Guesses []feedback.Observation
	Won     bool
}

// Turns returns the number of guesses played.
func (r Result) Turns() int { return len(r.Guesses) }

// Play solves secret, taking the first suggestion each round.
// A game that runs out of turns or candidates is a loss, not an error.
func Play(ctx context.Context, g Game, secret feedback.Word) (Result, error) {
	res := Result{Secret: secret}
	s := session.New(g.Dict, g.Table, g.Ranker)

	for len(res.Guesses) < g.MaxTurns {
		var guess feedback.Word
		switch s.Outcome() {
		case session.Exhausted:
			return res, nil
		case session.Solved:
			guess, _ = s.Answer()
		default:
			sug, err := s.Suggest(ctx)
			if err != nil {
				return res, err
			}
			if len(sug.Best) == 0 {
				return res, ErrNoSuggestion
			}
			guess = sug.Best[0]
		}

		obs := feedback.Observation{Guess: guess, Result: feedback.Compute(guess, secret)}
		res.Guesses = append(res.Guesses, obs)
		if obs.Result.Solved() {
			res.Won = true
			return res, nil
		}
		if s.Outcome().Finished() {
			// the lone candidate was wrong: secret is not in the dictionary
			return res, nil
		}
		if _, err := s.Apply(obs); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Summary aggregates the results of PlayAll.
type Summary struct {
	Games     int
	Won       int
	Histogram map[int]int // turns -> games won in that many turns
	Failures  []feedback.Word
	Elapsed   time.Duration
}

// Mean returns the average number of turns over won games.
func (s Summary) Mean() float64 {
	if s.Won == 0 {
		return 0
	}
	total := 0
	for turns, n := range s.Histogram {
		total += turns * n
	}
	return float64(total) / float64(s.Won)
}

// PlayAll plays every dictionary word as the secret. Progress is drawn on
// progress when it is non-nil. workers <= 0 means GOMAXPROCS.
func PlayAll(ctx context.Context, g Game, workers int, progress io.Writer) (Summary, error) {
	start := time.Now()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.Ranker.Workers = 1

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(g.Dict),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("simulating"),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	sum := Summary{Games: len(g.Dict), Histogram: make(map[int]int)}
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, secret := range g.Dict {
		eg.Go(func() error {
			res, err := Play(ctx, g, secret)
			if err != nil {
				return err
			}
			mu.Lock()
			if res.Won {
				sum.Won++
				sum.Histogram[res.Turns()]++
			} else {
				sum.Failures = append(sum.Failures, secret)
			}
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	slices.SortFunc(sum.Failures, func(a, b feedback.Word) int {
		return slices.Compare(a[:], b[:])
	})
	sum.Elapsed = time.Since(start)
	log.Debug().
		Int("games", sum.Games).
		Int("won", sum.Won).
		Dur("elapsed", sum.Elapsed).
		Msg("simulation finished")
	return sum, nil
}
