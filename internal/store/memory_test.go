package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphermind/go-server/internal/game"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := game.NewSession(game.Config{})
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
