package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/ciphermind/go-server/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CodeForDate returns the deterministic secret code for a date using
// HMAC(salt, YYYY-MM-DD): each code position consumes one digest byte
// modulo the alphabet size. Every player sees the same code on the same
// date for the same salt.
func CodeForDate(date time.Time, salt string, n int, alphabet game.Alphabet) game.Code {
	if n == 0 || len(alphabet) == 0 {
		panic("daily: CodeForDate with zero length or empty alphabet")
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)

	code := make(game.Code, n)
	for i := 0; i < n; i++ {
		code[i] = alphabet[int(sum[i%len(sum)])%len(alphabet)]
	}
	return code
}
