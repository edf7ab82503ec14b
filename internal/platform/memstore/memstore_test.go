package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravchuk/worddrill/internal/store"
)

func TestMemStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	require.NoError(t, s.Set(ctx, "a", []byte("one")))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)

	// Overwrite replaces the prior value.
	require.NoError(t, s.Set(ctx, "a", []byte("two")))
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestMemStoreGetAbsentKey(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestMemStoreRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	require.NoError(t, s.Set(ctx, "a", []byte("one")))
	require.NoError(t, s.Remove(ctx, "a"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	// Removing an absent key is not an error.
	assert.NoError(t, s.Remove(ctx, "a"))
}

func TestMemStoreKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestMemStoreCopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	value := []byte("original")
	require.NoError(t, s.Set(ctx, "a", value))
	value[0] = 'X'

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}
