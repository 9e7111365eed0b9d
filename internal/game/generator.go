// internal/game/generator.go
//
// Secret generation. Fairness, not security, is the requirement here, so
// the source is a plain math/rand generator scoped to the caller (the
// session), which keeps concurrent sessions independent and lets tests
// substitute a seeded source.

package game

import (
	"math/rand"
	"time"
)

// NewRand returns a time-seeded random source suitable for secret
// generation. Each session gets its own.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Generate draws n independent uniform symbols from the alphabet.
// A zero length or empty alphabet is a configuration bug, not a runtime
// condition, and panics.
func Generate(r *rand.Rand, n int, alphabet Alphabet) Code {
	if n == 0 {
		panic("game: Generate called with zero code length")
	}
	if len(alphabet) == 0 {
		panic("game: Generate called with empty alphabet")
	}
	code := make(Code, n)
	for i := range code {
		code[i] = alphabet[r.Intn(len(alphabet))]
	}
	return code
}
