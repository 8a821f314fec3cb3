package feedback

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWordLength     = errors.New("word must be exactly 5 letters")
	ErrWordChars      = errors.New("word must contain only letters a-z")
	ErrFeedbackLength = errors.New("feedback must be exactly 5 characters")
)

// ParseWord trims and lowercases s and validates it as a Word.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Size {
		return w, fmt.Errorf("%q: %w", s, ErrWordLength)
	}
	for i := 0; i < Size; i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return w, fmt.Errorf("%q: %w", s, ErrWordChars)
		}
		w[i] = s[i]
	}
	return w, nil
}

// MustWord is ParseWord for trusted literals. It panics on malformed input.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

// MustWords converts a list of trusted literals.
func MustWords(list ...string) []Word {
	out := make([]Word, len(list))
	for i, s := range list {
		out[i] = MustWord(s)
	}
	return out
}

// ParseFeedback maps a five-character result string to Feedback:
// g/G is a hit, y/Y is present, anything else is a miss.
func ParseFeedback(s string) (Feedback, error) {
	var f Feedback
	s = strings.TrimSpace(s)
	if len(s) != Size {
		return f, fmt.Errorf("%q: %w", s, ErrFeedbackLength)
	}
	for i := 0; i < Size; i++ {
		switch s[i] {
		case 'g', 'G':
			f[i] = MarkHit
		case 'y', 'Y':
			f[i] = MarkPresent
		default:
			f[i] = MarkMiss
		}
	}
	return f, nil
}

// MustFeedback is ParseFeedback for trusted literals.
func MustFeedback(s string) Feedback {
	f, err := ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseObservation validates a raw guess/result pair.
func ParseObservation(guess, result string) (Observation, error) {
	w, err := ParseWord(guess)
	if err != nil {
		return Observation{}, err
	}
	f, err := ParseFeedback(result)
	if err != nil {
		return Observation{}, err
	}
	return Observation{Guess: w, Result: f}, nil
}
