package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

func newSession() *session.Session {
	return session.New(feedback.MustWords("soare", "socko", "songs", "socks"), nil, ranker.DefaultConfig())
}

func TestRunScenario(t *testing.T) {
	in := strings.NewReader("soare\ngg...\nsocko\ngg...\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newSession(), in, &out, Options{}))

	text := out.String()
	assert.Contains(t, text, "There are 4 possible words left...")
	assert.Contains(t, text, "There are 3 possible words left...")
	assert.Contains(t, text, "Guesses that narrow it down the most are:")
	assert.Contains(t, text, "SOARE gg...")
	assert.True(t, strings.HasSuffix(text, "You win! The word is songs\n"), text)
}

func TestRunRejectsBadInput(t *testing.T) {
	in := strings.NewReader("zzzzz\nsoar\nsoare\ngg\nsoare\nGGGGG\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newSession(), in, &out, Options{}))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "That's not in the word list!"))
	assert.Equal(t, 1, strings.Count(text, "That doesn't match the format expected!"))
	assert.True(t, strings.HasSuffix(text, "You won!\n"), text)
}

func TestRunExhausted(t *testing.T) {
	in := strings.NewReader("socks\n.....\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newSession(), in, &out, Options{}))
	assert.True(t, strings.HasSuffix(out.String(), "No words remaining. You... lose?\n"))
}

func TestRunFinishedAtStart(t *testing.T) {
	single := session.New(feedback.MustWords("crane"), nil, ranker.DefaultConfig())
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), single, strings.NewReader("crane\nggggg\n"), &out, Options{}))
	assert.Equal(t, "You win! The word is crane\n", out.String())

	empty := session.New(nil, nil, ranker.DefaultConfig())
	out.Reset()
	require.NoError(t, Run(context.Background(), empty, strings.NewReader(""), &out, Options{}))
	assert.Equal(t, "No words remaining. You... lose?\n", out.String())
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), newSession(), strings.NewReader("soare\n"), &out, Options{}))
	assert.Contains(t, out.String(), "What was the result")
}

func TestRunLetterFrequencyFallback(t *testing.T) {
	dict := feedback.MustWords("soare", "socko", "songs", "socks", "crane", "slate")
	table := ranker.FrequencyTable{feedback.MustWord("crane"): 9}
	s := session.New(dict, table, ranker.Config{BruteForceLimit: 2, Limit: 3})
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), s, strings.NewReader(""), &out, Options{}))
	text := out.String()
	assert.Contains(t, text, "too many to brute force")
	assert.Contains(t, text, "Using five different letters:")
	assert.Contains(t, text, "Most common words:\ncrane\t")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, newSession(), strings.NewReader("soare\ngg...\n"), &bytes.Buffer{}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestColumns(t *testing.T) {
	words := feedback.MustWords("aaaaa", "bbbbb", "ccccc", "ddddd", "eeeee")
	assert.Equal(t, "aaaaa\tbbbbb\nccccc\tddddd\neeeee\n", Columns(words, 2))
	assert.Equal(t, "aaaaa\tbbbbb\tccccc\tddddd\teeeee\n", Columns(words, 12))
	assert.Empty(t, Columns(nil, 12))
}

func TestRender(t *testing.T) {
	o := feedback.Observation{Guess: feedback.MustWord("weave"), Result: feedback.MustFeedback(".ygyg")}
	assert.Equal(t, "WEAVE .ygyg", Render(o, false))

	colored := Render(o, true)
	for _, c := range "WEAVE" {
		assert.Contains(t, colored, string(c))
	}
}
