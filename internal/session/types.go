// internal/session/types.go
//
// Core type definitions for a solving session.
// Defines:
//   - Outcome: where the session stands after an observation.
//   - Session: the driving loop's state (candidate snapshot + history).

package session

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
)

// Outcome represents the state of a session after an observation.
//   - Playing:   more than one candidate remains.
//   - Won:       the observed feedback was all hits.
//   - Solved:    exactly one candidate remains.
//   - Exhausted: no candidate is consistent with the history.
type Outcome string

const (
	Playing   Outcome = "playing"
	Won       Outcome = "won"
	Solved    Outcome = "solved"
	Exhausted Outcome = "exhausted"
)

// Finished reports whether o ends the session.
func (o Outcome) Finished() bool { return o != Playing }

// Session holds the state of one solve.
type Session struct {
	known      map[feedback.Word]struct{}
	table      ranker.FrequencyTable
	cfg        ranker.Config
	candidates *candidates.Set
	history    []feedback.Observation
	outcome    Outcome
}
