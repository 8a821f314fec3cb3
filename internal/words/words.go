// internal/words/words.go
//
// Dictionary and frequency sources for the solver.
//
// Responsibilities:
//   - Load the dictionary from a configured file or fall back to the embedded default.
//   - Load the optional usage-frequency table the same way.
//   - Validate entries at the boundary so the core only ever sees 5-letter words.
//
// Word lists:
//   - Lines are lowercased and trimmed; blanks and '#' comments are ignored.
//   - Dictionary lines that are not 5 letters a–z are skipped (logged at debug).
//   - Duplicates are dropped, first occurrence wins, order is preserved.
//
// Frequency lines are "word count" separated by whitespace. Bad lines are
// skipped; missing words simply have no entry.

package words

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranker"
)

// ErrEmptyDictionary is returned when no valid word could be loaded.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// LoadDictionary reads the dictionary from path, or the embedded default
// when path is empty.
func LoadDictionary(path string) ([]feedback.Word, error) {
	lines, err := source(path, assets.DictionaryLines)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	dict := ParseDictionary(lines)
	if len(dict) == 0 {
		return nil, ErrEmptyDictionary
	}
	log.Debug().Str("path", describe(path)).Int("words", len(dict)).Msg("dictionary loaded")
	return dict, nil
}

// LoadFrequencies reads the frequency table from path, or the embedded
// default when path is empty.
func LoadFrequencies(path string) (ranker.FrequencyTable, error) {
	lines, err := source(path, assets.FrequencyLines)
	if err != nil {
		return nil, fmt.Errorf("load frequencies: %w", err)
	}
	table := ParseFrequencies(lines)
	log.Debug().Str("path", describe(path)).Int("entries", len(table)).Msg("frequencies loaded")
	return table, nil
}

// ParseDictionary keeps the valid, unique words of lines in order.
func ParseDictionary(lines []string) []feedback.Word {
	seen := make(map[feedback.Word]struct{}, len(lines))
	out := make([]feedback.Word, 0, len(lines))
	for _, line := range lines {
		w, err := feedback.ParseWord(line)
		if err != nil {
			log.Debug().Err(err).Msg("skip dictionary line")
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// ParseFrequencies builds a table from "word count" lines.
// Later lines for the same word overwrite earlier ones.
func ParseFrequencies(lines []string) ranker.FrequencyTable {
	table := make(ranker.FrequencyTable, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			log.Debug().Str("line", line).Msg("skip frequency line")
			continue
		}
		w, err := feedback.ParseWord(fields[0])
		if err != nil {
			log.Debug().Err(err).Msg("skip frequency line")
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			log.Debug().Str("line", line).Msg("skip frequency line")
			continue
		}
		table[w] = n
	}
	return table
}

func source(path string, embedded func() ([]string, error)) ([]string, error) {
	if path == "" {
		return embedded()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

func describe(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
