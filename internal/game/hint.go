// internal/game/hint.go
//
// Advisory hint tiers. A pure function of feedback, keyed on the exact
// count first; renderers map tiers to whatever encouragement text they
// like. Carries no state and never affects scoring.

package game

// HintTier labels how close a guess felt, for presentation only.
type HintTier string

const (
	HintNoMatch     HintTier = "no_match"
	HintRightColors HintTier = "right_colors"
	HintOneExact    HintTier = "one_exact"
	HintTwoExact    HintTier = "two_exact"
	HintThreeExact  HintTier = "three_exact"
	HintProgress    HintTier = "progress"
)

// Hint selects a tier from the fixed table.
func Hint(fb Feedback) HintTier {
	switch {
	case fb.Exact == 0 && fb.Color == 0:
		return HintNoMatch
	case fb.Exact == 0:
		return HintRightColors
	case fb.Exact == 1:
		return HintOneExact
	case fb.Exact == 2:
		return HintTwoExact
	case fb.Exact == 3:
		return HintThreeExact
	default:
		return HintProgress
	}
}
