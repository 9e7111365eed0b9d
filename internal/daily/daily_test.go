package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphermind/go-server/internal/game"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2026, 3, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-03-02", DateKey(ts))
}

func TestCodeForDate_Deterministic(t *testing.T) {
	d := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	a := CodeForDate(d, "salt", 4, game.Colors())
	b := CodeForDate(d.Add(3*time.Hour), "salt", 4, game.Colors())
	assert.True(t, a.Equal(b), "same date must yield same code")

	// Codes vary across dates; a small window is enough to show the
	// digest actually feeds the selection.
	varied := false
	for i := 1; i <= 10 && !varied; i++ {
		varied = !a.Equal(CodeForDate(d.AddDate(0, 0, i), "salt", 4, game.Colors()))
	}
	assert.True(t, varied, "codes should vary across dates")
}

func TestCodeForDate_MembershipAndLength(t *testing.T) {
	alphabet := game.Colors()
	d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		c := CodeForDate(d.AddDate(0, 0, i), "salt", 4, alphabet)
		require.Len(t, c, 4)
		for _, s := range c {
			assert.True(t, alphabet.Contains(s))
		}
	}
}
