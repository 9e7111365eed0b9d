// internal/game/validate.go
//
// Guess validation: turns raw player input into a Code or a typed,
// recoverable error. Both error kinds are surfaced to the presentation
// layer for re-prompting and never consume an attempt.

package game

import (
	"fmt"
	"strings"
)

// LengthError reports a guess whose symbol count does not match the code
// length.
type LengthError struct {
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid length: got %d symbols, want %d", e.Got, e.Want)
}

// SymbolError reports an input rune outside the alphabet.
type SymbolError struct {
	Symbol rune
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q", e.Symbol)
}

// ParseGuess validates raw input against the expected length and alphabet.
// Matching is case-insensitive; beyond trimming surrounding whitespace and
// folding case, the input is preserved as given (no deduplication, no
// reordering). Returns *LengthError or *SymbolError on failure.
func ParseGuess(raw string, n int, alphabet Alphabet) (Code, error) {
	runes := []rune(strings.TrimSpace(raw))
	if len(runes) != n {
		return nil, &LengthError{Got: len(runes), Want: n}
	}
	code := make(Code, 0, n)
	for _, r := range runes {
		s, ok := alphabet.Canon(r)
		if !ok {
			return nil, &SymbolError{Symbol: r}
		}
		code = append(code, s)
	}
	return code, nil
}
