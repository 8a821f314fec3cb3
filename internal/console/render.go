package console

import (
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Render formats an observation as "GUESS gy..g", or as coloured
// letters when colored is set.
func Render(obs feedback.Observation, colored bool) string {
	guess := strings.ToUpper(obs.Guess.String())
	if !colored {
		return guess + " " + obs.Result.String()
	}

	var b strings.Builder
	for i, m := range obs.Result {
		b.WriteString(color.Colorize(markColor(m), guess[i:i+1]))
	}
	return b.String()
}

func markColor(m feedback.Mark) string {
	switch m {
	case feedback.MarkHit:
		return color.Green
	case feedback.MarkPresent:
		return color.Yellow
	default:
		return color.Gray
	}
}
