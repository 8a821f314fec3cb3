package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

func TestEmbeddedDefaults(t *testing.T) {
	dict, err := LoadDictionary("")
	require.NoError(t, err)
	assert.Greater(t, len(dict), 500)
	assert.Contains(t, dict, feedback.MustWord("crane"))

	table, err := LoadFrequencies("")
	require.NoError(t, err)
	assert.NotEmpty(t, table)
	assert.Greater(t, table[feedback.MustWord("about")], 0)
}

func TestLoadDictionaryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\nSOARE\n\nsocko\ntoolong\nso4re\nsongs\nsoare\nsocks\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, feedback.MustWords("soare", "socko", "songs", "socks"), dict)
}

func TestLoadDictionaryErrors(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing\nab\n"), 0o644))
	_, err = LoadDictionary(path)
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestParseFrequencies(t *testing.T) {
	table := ParseFrequencies([]string{
		"crane 120",
		"slate\t7",
		"bad",
		"toolong 5",
		"adieu -3",
		"trace x",
		"crane 130",
	})
	assert.Len(t, table, 2)
	assert.Equal(t, 130, table[feedback.MustWord("crane")])
	assert.Equal(t, 7, table[feedback.MustWord("slate")])
	assert.Zero(t, table[feedback.MustWord("adieu")])
}
