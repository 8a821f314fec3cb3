// assets/embed.go
//
// Embedded default word data, used when no files are configured.
//   - words.txt: sample dictionary, one five-letter word per line.
//   - freq.txt:  "word count" usage frequencies; words may be missing.
// Blank lines and lines starting with '#' are skipped.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words.txt freq.txt
var FS embed.FS

// ReadLines returns the trimmed, lowercased, non-comment lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// DictionaryLines returns the embedded dictionary lines.
func DictionaryLines() ([]string, error) {
	return readLines("words.txt")
}

// FrequencyLines returns the embedded frequency table lines.
func FrequencyLines() ([]string, error) {
	return readLines("freq.txt")
}
