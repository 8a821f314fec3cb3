package ranker

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Config controls Suggest.
type Config struct {
	// BruteForceLimit is the largest candidate count ranked by elimination.
	BruteForceLimit int
	// Limit truncates every suggestion list; 0 keeps everything.
	Limit int
	// Workers bounds elimination fan-out; 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig matches the interactive solver's defaults.
func DefaultConfig() Config {
	return Config{BruteForceLimit: 500, Limit: 48}
}

// Suggestions is the ranked advice for one round.
type Suggestions struct {
	Strategy Strategy
	// Best is the primary list for Strategy.
	Best []feedback.Word
	// Distinct is Best restricted to words with five different letters.
	// Only set for LetterFrequency.
	Distinct []feedback.Word
	// Common ranks by usage frequency. Only set when a table is supplied
	// and Strategy is LetterFrequency.
	Common []feedback.Word
}

// Suggest ranks words by elimination when the set is small enough to
// brute force, otherwise by positional letter frequency.
func Suggest(ctx context.Context, words []feedback.Word, table FrequencyTable, cfg Config) (Suggestions, error) {
	if len(words) <= cfg.BruteForceLimit {
		scored, err := ByElimination(ctx, words, cfg.Workers)
		if err != nil {
			return Suggestions{}, err
		}
		log.Debug().Int("candidates", len(words)).Str("strategy", string(Elimination)).Msg("ranked")
		return Suggestions{Strategy: Elimination, Best: truncate(Words(scored), cfg.Limit)}, nil
	}

	byLetters := ByLetterFrequency(words, true)
	s := Suggestions{
		Strategy: LetterFrequency,
		Best:     truncate(Words(byLetters), cfg.Limit),
		Distinct: truncate(Words(DistinctLetters(byLetters)), cfg.Limit),
	}
	if len(table) > 0 {
		s.Common = truncate(Words(ByUsageFrequency(words, table)), cfg.Limit)
	}
	log.Debug().Int("candidates", len(words)).Str("strategy", string(LetterFrequency)).Msg("ranked")
	return s, nil
}

func truncate(words []feedback.Word, limit int) []feedback.Word {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}
