package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuess_CaseInsensitive(t *testing.T) {
	c, err := ParseGuess("rgyb", 4, Colors())
	require.NoError(t, err)
	assert.Equal(t, Code{Red, Green, Yellow, Blue}, c)
}

func TestParseGuess_PreservesOrder(t *testing.T) {
	c, err := ParseGuess("YByb", 4, Colors())
	require.NoError(t, err)
	assert.Equal(t, Code{Yellow, Blue, Yellow, Blue}, c)
}

func TestParseGuess_TrimsWhitespace(t *testing.T) {
	c, err := ParseGuess("  RGBY\n", 4, Colors())
	require.NoError(t, err)
	assert.Equal(t, "RGBY", c.String())
}

func TestParseGuess_LengthMismatch(t *testing.T) {
	for _, raw := range []string{"RGB", "RGBYY", ""} {
		_, err := ParseGuess(raw, 4, Colors())
		var lenErr *LengthError
		require.ErrorAs(t, err, &lenErr, "input %q", raw)
		assert.Equal(t, 4, lenErr.Want)
		assert.Equal(t, len(raw), lenErr.Got)
	}
}

func TestParseGuess_UnknownSymbol(t *testing.T) {
	_, err := ParseGuess("RGBX", 4, Colors())
	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, 'X', symErr.Symbol)
}

// A code rendered to text and re-validated yields an equal code.
func TestParseGuess_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		c := Generate(r, 4, Colors())
		back, err := ParseGuess(c.String(), 4, Colors())
		require.NoError(t, err)
		assert.True(t, c.Equal(back), "code=%s back=%s", c, back)
	}
}

func TestAlphabet_Canon(t *testing.T) {
	a := Colors()

	s, ok := a.Canon('m')
	assert.True(t, ok)
	assert.Equal(t, Magenta, s)

	_, ok = a.Canon('z')
	assert.False(t, ok)
}

func TestAlphabet_String(t *testing.T) {
	assert.Equal(t, "RGBYMC", Colors().String())
}
