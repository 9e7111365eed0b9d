package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(secret string) *Session {
	return NewSession(Config{Secret: code(secret)})
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(Config{Rand: rand.New(rand.NewSource(5))})
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, DefaultCodeLength, s.CodeLength())
	assert.Equal(t, DefaultMaxAttempts, s.AttemptsLeft())
	assert.Zero(t, s.Attempts())
	assert.Empty(t, s.History())
}

func TestSession_WinOnExactMatch(t *testing.T) {
	s := newTestSession("RGBY")
	fb, st := s.Submit(code("RGBY"))
	assert.Equal(t, Feedback{Exact: 4, Color: 0}, fb)
	assert.Equal(t, StateWon, st)
	assert.Equal(t, "RGBY", s.Reveal().String())
}

// Once every position matches, the session is won regardless of how many
// attempts remain.
func TestSession_WinBeforeBudgetSpent(t *testing.T) {
	s := NewSession(Config{Secret: code("RGBY"), MaxAttempts: 3})
	_, st := s.Submit(code("MMCC"))
	require.Equal(t, StateInProgress, st)
	_, st = s.Submit(code("RGBY"))
	assert.Equal(t, StateWon, st)
	assert.Equal(t, 2, s.Attempts())
}

func TestSession_LossAfterAttemptLimit(t *testing.T) {
	s := NewSession(Config{Secret: code("RGBY"), MaxAttempts: 3})
	for i := 0; i < 2; i++ {
		_, st := s.Submit(code("MMCC"))
		require.Equal(t, StateInProgress, st, "attempt %d", i+1)
	}
	_, st := s.Submit(code("MMCC"))
	assert.Equal(t, StateLost, st)
	assert.Equal(t, 0, s.AttemptsLeft())
}

func TestSession_HistoryOrdered(t *testing.T) {
	s := newTestSession("RGBY")
	s.Submit(code("MMCC"))
	s.Submit(code("RBYM"))

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, "MMCC", h[0].Guess.String())
	assert.Equal(t, Feedback{Exact: 0, Color: 0}, h[0].Feedback)
	assert.Equal(t, "RBYM", h[1].Guess.String())
	assert.Equal(t, Feedback{Exact: 1, Color: 2}, h[1].Feedback)
}

func TestSession_SubmitRawValidationLeavesStateUntouched(t *testing.T) {
	s := newTestSession("RGBY")

	_, st, err := s.SubmitRaw("RGB")
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, StateInProgress, st)
	assert.Zero(t, s.Attempts())
	assert.Empty(t, s.History())

	_, _, err = s.SubmitRaw("RGBX")
	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Zero(t, s.Attempts())
}

func TestSession_SubmitRawAppliesValidGuess(t *testing.T) {
	s := newTestSession("RGBY")
	fb, st, err := s.SubmitRaw("rgyb")
	require.NoError(t, err)
	assert.Equal(t, Feedback{Exact: 2, Color: 2}, fb)
	assert.Equal(t, StateInProgress, st)
	assert.Equal(t, 1, s.Attempts())
}

func TestSession_AbandonRevealsSecret(t *testing.T) {
	s := newTestSession("RGBY")
	s.Submit(code("MMCC"))

	secret := s.Abandon()
	assert.Equal(t, "RGBY", secret.String())
	assert.Equal(t, StateAbandoned, s.State())
	// History survives abandonment for transcript rendering.
	assert.Len(t, s.History(), 1)
}

func TestSession_TerminalContractBreaches(t *testing.T) {
	won := newTestSession("RGBY")
	won.Submit(code("RGBY"))
	require.Panics(t, func() { won.Submit(code("MMCC")) })
	require.Panics(t, func() { won.Abandon() })

	live := newTestSession("RGBY")
	require.Panics(t, func() { live.Reveal() })
}

func TestSession_FixedSecretLengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		NewSession(Config{CodeLength: 4, Secret: Code{Red, Green}})
	})
}

func TestHint_Tiers(t *testing.T) {
	cases := []struct {
		fb   Feedback
		want HintTier
	}{
		{Feedback{0, 0}, HintNoMatch},
		{Feedback{0, 4}, HintRightColors},
		{Feedback{1, 2}, HintOneExact},
		{Feedback{2, 0}, HintTwoExact},
		{Feedback{3, 1}, HintThreeExact},
		{Feedback{4, 0}, HintProgress},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Hint(tc.fb), "feedback %+v", tc.fb)
	}
}
