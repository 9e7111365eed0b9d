// internal/game/symbol.go
//
// Core type definitions for the CipherMind engine.
// Defines:
//   - Symbol: one color peg from the guessable alphabet.
//   - Alphabet: the ordered set of symbols a code may contain.
//   - Code: an ordered sequence of symbols, used for secrets and guesses.

package game

import "unicode"

// Package-level defaults are kept here for clarity.
const (
	DefaultCodeLength  = 4
	DefaultMaxAttempts = 10
)

// Symbol is a single code peg, identified by its canonical uppercase letter.
type Symbol rune

const (
	Red     Symbol = 'R'
	Green   Symbol = 'G'
	Blue    Symbol = 'B'
	Yellow  Symbol = 'Y'
	Magenta Symbol = 'M'
	Cyan    Symbol = 'C'
)

// Alphabet is an ordered set of distinct symbols. Order matters for
// rendering and for uniform random draws; membership is case-insensitive
// against the canonical uppercase letters.
type Alphabet []Symbol

// Colors returns the standard six-color alphabet.
func Colors() Alphabet {
	return Alphabet{Red, Green, Blue, Yellow, Magenta, Cyan}
}

// Contains reports whether s is part of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// Canon maps an input rune to its alphabet symbol, folding case.
// The second return is false when the rune is not in the alphabet.
func (a Alphabet) Canon(r rune) (Symbol, bool) {
	s := Symbol(unicode.ToUpper(r))
	if a.Contains(s) {
		return s, true
	}
	return 0, false
}

// String renders the alphabet as its canonical letters, e.g. "RGBYMC".
func (a Alphabet) String() string {
	out := make([]rune, len(a))
	for i, s := range a {
		out[i] = rune(s)
	}
	return string(out)
}

// Code is an ordered sequence of symbols. Positions are significant and
// repeats are allowed. A Code plays two roles: the secret (generated once
// per session) and a guess (validated once per attempt).
type Code []Symbol

// String renders the code as its canonical letters, e.g. "RGBY".
// ParseGuess accepts this rendering back unchanged.
func (c Code) String() string {
	out := make([]rune, len(c))
	for i, s := range c {
		out[i] = rune(s)
	}
	return string(out)
}

// Equal reports whether two codes have the same symbols in the same order.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}
