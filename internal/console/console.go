// internal/console/console.go
//
// Plain-text front end for a solving session.
// Responsibilities:
//   - Print the remaining candidate count and ranked suggestions each round.
//   - Read the guess that was played and the feedback the game showed.
//   - Reject malformed input at the boundary and re-prompt.
//   - Report the terminal outcome.
//
// Input convention for feedback: g/G = hit, y/Y = present, anything else = miss.
// End of input ends the loop without error.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// PerRow is the number of suggestions printed per line.
const PerRow = 12

// Options controls presentation.
type Options struct {
	// Color renders each recorded guess as coloured tiles.
	Color bool
}

// Run drives s from in until the session finishes or in is exhausted.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer, opts Options) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Outcome().Finished() {
			report(s, out)
			return nil
		}
		if err := printStatus(ctx, s, out); err != nil {
			return err
		}

		obs, ok := readObservation(s, sc, out)
		if !ok {
			return sc.Err()
		}

		if _, err := s.Apply(obs); err != nil {
			return err
		}
		fmt.Fprintln(out, Render(obs, opts.Color))
	}
}

// report prints the message for a finished session.
func report(s *session.Session, out io.Writer) {
	switch s.Outcome() {
	case session.Won:
		fmt.Fprintln(out, "You won!")
	case session.Solved:
		answer, _ := s.Answer()
		fmt.Fprintf(out, "You win! The word is %s\n", answer)
	case session.Exhausted:
		fmt.Fprintln(out, "No words remaining. You... lose?")
	}
}

// readObservation prompts until a well-formed observation is entered.
// It returns false at end of input.
func readObservation(s *session.Session, sc *bufio.Scanner, out io.Writer) (feedback.Observation, bool) {
	for {
		fmt.Fprintln(out, "What was your guess?")
		if !sc.Scan() {
			return feedback.Observation{}, false
		}
		guess, err := feedback.ParseWord(sc.Text())
		if err != nil || !s.Knows(guess) {
			log.Debug().Err(err).Str("input", sc.Text()).Msg("rejected guess")
			fmt.Fprintln(out, "That's not in the word list!")
			continue
		}

		fmt.Fprintln(out, "What was the result (format 'y..gg')?")
		if !sc.Scan() {
			return feedback.Observation{}, false
		}
		result, err := feedback.ParseFeedback(sc.Text())
		if err != nil {
			log.Debug().Err(err).Str("input", sc.Text()).Msg("rejected result")
			fmt.Fprintln(out, "That doesn't match the format expected! 5 characters, g or y or anything else.")
			continue
		}
		return feedback.Observation{Guess: guess, Result: result}, true
	}
}

func printStatus(ctx context.Context, s *session.Session, out io.Writer) error {
	sug, err := s.Suggest(ctx)
	if err != nil {
		return fmt.Errorf("suggest: %w", err)
	}
	fmt.Fprintf(out, "\nThere are %d possible words left...\n", s.Remaining())
	switch sug.Strategy {
	case ranker.Elimination:
		fmt.Fprintln(out, "Guesses that narrow it down the most are:")
		fmt.Fprint(out, Columns(sug.Best, PerRow))
	default:
		fmt.Fprintln(out, "That's too many to brute force good guesses... here are some with common letters:")
		fmt.Fprint(out, Columns(sug.Best, PerRow))
		if len(sug.Distinct) > 0 {
			fmt.Fprintln(out, "Using five different letters:")
			fmt.Fprint(out, Columns(sug.Distinct, PerRow))
		}
		if len(sug.Common) > 0 {
			fmt.Fprintln(out, "Most common words:")
			fmt.Fprint(out, Columns(sug.Common, PerRow))
		}
	}
	fmt.Fprintln(out, "... go guess one!")
	fmt.Fprintln(out)
	return nil
}

// Columns lays words out tab-separated, perRow to a line.
func Columns(words []feedback.Word, perRow int) string {
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range words {
		b.WriteString(w.String())
		if (i+1)%perRow == 0 || i == len(words)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte('\t')
		}
	}
	return b.String()
}
