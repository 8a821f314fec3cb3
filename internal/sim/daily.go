// internal/sim/daily.go
//
// Secret selection for "-simulate daily".
// The same UTC date and salt always pick the same dictionary word, so a
// daily run can be replayed and compared across machines.

package sim

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// DailySecret picks the word dict holds for date. It reports false for an
// empty dict.
func DailySecret(date time.Time, salt string, dict []feedback.Word) (feedback.Word, bool) {
	if len(dict) == 0 {
		return feedback.Word{}, false
	}
	day := date.UTC().Format(time.DateOnly)
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(day))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))

	secret := dict[seed%uint64(len(dict))]
	log.Debug().Str("day", day).Int("dictionary", len(dict)).Msg("picked daily secret")
	return secret, true
}
