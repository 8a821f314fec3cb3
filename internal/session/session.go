// internal/session/session.go
//
// Driving loop state for a single solve.
// Responsibilities:
//   - Own the only mutable candidate snapshot and the observation history.
//   - Apply observations and report the resulting Outcome.
//   - Ask the ranker for suggestions over the current snapshot.
//
// Notes:
//   - An empty or singleton candidate set is an expected terminal outcome,
//     not an error.
//   - Observations after a terminal outcome are rejected with ErrFinished.
package session

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
)

// ErrFinished is returned when applying an observation to a finished session.
var ErrFinished = errors.New("session finished")

// New starts a session over dict. table may be nil.
func New(dict []feedback.Word, table ranker.FrequencyTable, cfg ranker.Config) *Session {
	known := make(map[feedback.Word]struct{}, len(dict))
	for _, w := range dict {
		known[w] = struct{}{}
	}
	s := &Session{
		known:      known,
		table:      table,
		cfg:        cfg,
		candidates: candidates.New(dict),
		outcome:    Playing,
	}
	s.outcome = s.settle()
	return s
}

// Apply records obs, narrows the candidates and returns the new outcome.
func (s *Session) Apply(obs feedback.Observation) (Outcome, error) {
	if s.outcome.Finished() {
		return s.outcome, ErrFinished
	}
	before := s.candidates.Len()
	s.history = append(s.history, obs)
	s.candidates = s.candidates.Filter(obs)

	if obs.Result.Solved() {
		s.outcome = Won
	} else {
		s.outcome = s.settle()
	}
	log.Debug().
		Str("guess", obs.Guess.String()).
		Str("result", obs.Result.String()).
		Int("before", before).
		Int("remaining", s.candidates.Len()).
		Str("outcome", string(s.outcome)).
		Msg("observation applied")
	return s.outcome, nil
}

// settle maps the candidate count to an outcome.
func (s *Session) settle() Outcome {
	switch s.candidates.Len() {
	case 0:
		return Exhausted
	case 1:
		return Solved
	default:
		return Playing
	}
}

// Suggest ranks the current candidates.
func (s *Session) Suggest(ctx context.Context) (ranker.Suggestions, error) {
	return ranker.Suggest(ctx, s.candidates.Words(), s.table, s.cfg)
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Remaining returns the number of live candidates.
func (s *Session) Remaining() int { return s.candidates.Len() }

// Candidates returns the live candidates in dictionary order.
func (s *Session) Candidates() []feedback.Word { return s.candidates.Words() }

// History returns a copy of the observations applied so far.
func (s *Session) History() []feedback.Observation { return slices.Clone(s.history) }

// Answer returns the solution once the session is Won or Solved.
func (s *Session) Answer() (feedback.Word, bool) {
	switch s.outcome {
	case Won:
		return s.history[len(s.history)-1].Guess, true
	case Solved:
		return s.candidates.Words()[0], true
	}
	return feedback.Word{}, false
}

// Knows reports whether w is in the session's dictionary.
func (s *Session) Knows(w feedback.Word) bool {
	_, ok := s.known[w]
	return ok
}
