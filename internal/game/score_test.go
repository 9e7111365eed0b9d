package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func code(s string) Code {
	c, err := ParseGuess(s, len([]rune(s)), Colors())
	if err != nil {
		panic(err)
	}
	return c
}

func TestScore_AllExact(t *testing.T) {
	fb := Score(code("RGBY"), code("RGBY"))
	assert.Equal(t, Feedback{Exact: 4, Color: 0}, fb)
}

func TestScore_NoMatches(t *testing.T) {
	fb := Score(code("RGBY"), code("MMCC"))
	assert.Equal(t, Feedback{Exact: 0, Color: 0}, fb)
}

func TestScore_AllColorMatches(t *testing.T) {
	fb := Score(code("RGBY"), code("YBGR"))
	assert.Equal(t, Feedback{Exact: 0, Color: 4}, fb)
}

func TestScore_Mixed(t *testing.T) {
	// R exact at position 0; B and Y present but misplaced; M absent.
	fb := Score(code("RGBY"), code("RBYM"))
	assert.Equal(t, Feedback{Exact: 1, Color: 2}, fb)
}

func TestScore_RepeatedSymbols(t *testing.T) {
	cases := []struct {
		name          string
		secret, guess string
		exact, color  int
	}{
		{"secret has duplicate, guess one copy", "RRGB", "RYYY", 1, 0},
		{"guess has duplicate, secret one copy", "RGBY", "RRRR", 1, 0},
		{"duplicate consumed only once", "RGGB", "GGYY", 1, 1},
		{"all same symbol", "RRRR", "RRRR", 4, 0},
		{"misplaced duplicates", "RRGG", "GGRR", 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb := Score(code(tc.secret), code(tc.guess))
			assert.Equal(t, Feedback{Exact: tc.exact, Color: tc.color}, fb)
		})
	}
}

func TestScore_Symmetry(t *testing.T) {
	// Hand-picked pairs plus a seeded random sweep.
	pairs := [][2]string{
		{"RGBY", "RBYM"},
		{"RRGG", "GGRR"},
		{"RGGB", "GGYY"},
		{"MMCC", "RGBY"},
	}
	for _, p := range pairs {
		assert.Equal(t, Score(code(p[0]), code(p[1])), Score(code(p[1]), code(p[0])), "pair %v", p)
	}

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := Generate(r, 4, Colors())
		b := Generate(r, 4, Colors())
		assert.Equal(t, Score(a, b), Score(b, a), "a=%s b=%s", a, b)
	}
}

func TestScore_Bound(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := Generate(r, 4, Colors())
		b := Generate(r, 4, Colors())
		fb := Score(a, b)
		assert.LessOrEqual(t, fb.Exact+fb.Color, 4, "a=%s b=%s", a, b)
		assert.GreaterOrEqual(t, fb.Exact, 0)
		assert.GreaterOrEqual(t, fb.Color, 0)
	}
}

func TestScore_SelfMatch(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		c := Generate(r, 4, Colors())
		assert.Equal(t, Feedback{Exact: 4, Color: 0}, Score(c, c), "code=%s", c)
	}
}

func TestScore_MismatchedLengthsPanics(t *testing.T) {
	require.Panics(t, func() {
		Score(code("RGBY"), Code{Red, Green, Blue})
	})
}
