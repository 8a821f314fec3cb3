package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
)

func obs(guess, result string) feedback.Observation {
	o, err := feedback.ParseObservation(guess, result)
	if err != nil {
		panic(err)
	}
	return o
}

func TestScenarioSolved(t *testing.T) {
	s := New(feedback.MustWords("soare", "socko", "songs", "socks"), nil, ranker.DefaultConfig())
	assert.Equal(t, Playing, s.Outcome())
	assert.Equal(t, 4, s.Remaining())

	out, err := s.Apply(obs("soare", "gg..."))
	require.NoError(t, err)
	assert.Equal(t, Playing, out)
	assert.Equal(t, feedback.MustWords("socko", "songs", "socks"), s.Candidates())

	out, err = s.Apply(obs("socko", "gg..."))
	require.NoError(t, err)
	assert.Equal(t, Solved, out)
	answer, ok := s.Answer()
	assert.True(t, ok)
	assert.Equal(t, "songs", answer.String())

	_, err = s.Apply(obs("songs", "ggggg"))
	assert.ErrorIs(t, err, ErrFinished)
	assert.Len(t, s.History(), 2)
}

func TestWonAndExhausted(t *testing.T) {
	dict := feedback.MustWords("crane", "slate", "trace", "crate")

	s := New(dict, nil, ranker.DefaultConfig())
	out, err := s.Apply(obs("crane", "ggggg"))
	require.NoError(t, err)
	assert.Equal(t, Won, out)
	answer, ok := s.Answer()
	assert.True(t, ok)
	assert.Equal(t, "crane", answer.String())

	s = New(dict, nil, ranker.DefaultConfig())
	out, err = s.Apply(obs("zzzzz", "y...."))
	require.NoError(t, err)
	assert.Equal(t, Exhausted, out)
	assert.Zero(t, s.Remaining())
	_, ok = s.Answer()
	assert.False(t, ok)
}

func TestNewSettlesSmallDictionaries(t *testing.T) {
	assert.Equal(t, Exhausted, New(nil, nil, ranker.DefaultConfig()).Outcome())
	assert.Equal(t, Solved, New(feedback.MustWords("crane"), nil, ranker.DefaultConfig()).Outcome())
}

func TestSuggestAndKnows(t *testing.T) {
	dict := feedback.MustWords("songs", "socks", "socko", "crane")
	s := New(dict, nil, ranker.DefaultConfig())
	assert.True(t, s.Knows(feedback.MustWord("crane")))
	assert.False(t, s.Knows(feedback.MustWord("zzzzz")))

	sug, err := s.Suggest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ranker.Elimination, sug.Strategy)
	assert.ElementsMatch(t, dict, sug.Best)

	_, err = s.Apply(obs("blame", "....."))
	require.NoError(t, err)
	sug, err = s.Suggest(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, feedback.MustWords("songs", "socks", "socko"), sug.Best)
}

func TestHistoryIsACopy(t *testing.T) {
	s := New(feedback.MustWords("soare", "socko", "songs", "socks"), nil, ranker.DefaultConfig())
	_, err := s.Apply(obs("soare", "gg..."))
	require.NoError(t, err)
	h := s.History()
	h[0].Guess = feedback.MustWord("zzzzz")
	assert.Equal(t, "soare", s.History()[0].Guess.String())
}
