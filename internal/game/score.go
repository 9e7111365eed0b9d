// internal/game/score.go
//
// Feedback scoring: compares a guess against a secret and reports how many
// positions matched exactly and how many further symbols matched out of
// position. This is the classic two-pass comparison; the second pass walks
// a count multiset so a secret symbol instance is never matched twice.

package game

// Feedback is the result of comparing one guess against the secret.
//   - Exact: positions where guess and secret hold the same symbol.
//   - Color: additional symbol matches at the wrong position, counted by
//     multiset consumption over the non-exact remainder.
//
// Exact + Color never exceeds the code length.
type Feedback struct {
	Exact int `json:"exact"`
	Color int `json:"color"`
}

// Score implements the standard two-pass comparison.
//
// Pass 1:
//   - Count exact positional matches.
//   - Collect the remaining secret symbols into a count multiset and the
//     remaining guess symbols into a slice, preserving order.
//
// Pass 2:
//   - For each leftover guess symbol: if the multiset still holds that
//     symbol, count a color match and consume one instance.
//
// This ensures correct behavior with repeated symbols in both codes.
// Lengths must already agree; the validator guarantees this upstream, so a
// mismatch here is a contract breach and panics.
func Score(secret, guess Code) Feedback {
	if len(secret) != len(guess) {
		panic("game: Score called with mismatched code lengths")
	}

	var fb Feedback
	remaining := make(map[Symbol]int, len(secret))
	leftover := make([]Symbol, 0, len(guess))

	// First pass: exact matches, plus counts for the rest of the secret.
	for i := range guess {
		if guess[i] == secret[i] {
			fb.Exact++
		} else {
			remaining[secret[i]]++
			leftover = append(leftover, guess[i])
		}
	}

	// Second pass: consume at most one secret instance per color match.
	for _, s := range leftover {
		if remaining[s] > 0 {
			fb.Color++
			remaining[s]--
		}
	}
	return fb
}
