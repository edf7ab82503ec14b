package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/platform/memstore"
	"github.com/okravchuk/worddrill/internal/store"
)

func TestSrsStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSrsStore(memstore.New(), nil)

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	mapping := map[string]domain.WordProgress{
		"кіт": {SrsStage: 1, NextReviewDate: now.AddDate(0, 0, 1)},
		"пес": {SrsStage: 4, NextReviewDate: now.AddDate(0, 0, 14)},
	}

	require.NoError(t, s.Save(ctx, "animals", 0, mapping))
	assert.Equal(t, mapping, s.Load(ctx, "animals", 0))
}

func TestSrsStoreLoadMissingKeyReturnsEmpty(t *testing.T) {
	t.Parallel()

	s := NewSrsStore(memstore.New(), nil)
	mapping := s.Load(context.Background(), "animals", 0)
	assert.Empty(t, mapping)
	assert.NotNil(t, mapping)
}

func TestSrsStoreLoadMalformedValueReturnsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := memstore.New()
	require.NoError(t, kv.Set(ctx, store.SrsProgressKey("animals", 0), []byte("{not json")))

	s := NewSrsStore(kv, nil)
	assert.Empty(t, s.Load(ctx, "animals", 0))
}

func TestSrsStoreLoadSkipsInvalidEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := memstore.New()
	blob := `[["кіт",{"srsStage":2,"nextReviewDate":"2024-03-10T00:00:00Z"}],` +
		`["пес",{"srsStage":-3,"nextReviewDate":"2024-03-10T00:00:00Z"}]]`
	require.NoError(t, kv.Set(ctx, store.SrsProgressKey("animals", 0), []byte(blob)))

	s := NewSrsStore(kv, nil)
	mapping := s.Load(ctx, "animals", 0)
	require.Len(t, mapping, 1)
	assert.Equal(t, 2, mapping["кіт"].SrsStage)
}

func TestSrsStoreSaveReplacesPriorValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewSrsStore(memstore.New(), nil)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, "animals", 0, map[string]domain.WordProgress{
		"кіт": {SrsStage: 1, NextReviewDate: now},
		"пес": {SrsStage: 1, NextReviewDate: now},
	}))
	require.NoError(t, s.Save(ctx, "animals", 0, map[string]domain.WordProgress{
		"кіт": {SrsStage: 2, NextReviewDate: now},
	}))

	mapping := s.Load(ctx, "animals", 0)
	require.Len(t, mapping, 1)
	assert.Equal(t, 2, mapping["кіт"].SrsStage)
}

func TestSrsStoreRemoveAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := memstore.New()
	s := NewSrsStore(kv, nil)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	mapping := map[string]domain.WordProgress{"кіт": {SrsStage: 1, NextReviewDate: now}}
	require.NoError(t, s.Save(ctx, "animals", 0, mapping))
	require.NoError(t, s.Save(ctx, "animals", 1, mapping))
	require.NoError(t, s.Save(ctx, "verbs", 0, mapping))

	require.NoError(t, s.RemoveAll(ctx, "animals"))

	assert.Empty(t, s.Load(ctx, "animals", 0))
	assert.Empty(t, s.Load(ctx, "animals", 1))
	// Other dictionaries are untouched.
	assert.Len(t, s.Load(ctx, "verbs", 0), 1)
}

func TestFilterDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	words := []domain.Word{
		{Native: "cat", Translation: "кіт"},
		{Native: "dog", Translation: "пес"},
		{Native: "fox", Translation: "лис"},
		{Native: "sun", Translation: "сонце"},
	}
	mapping := map[string]domain.WordProgress{
		// Due today at midnight.
		"кіт": {SrsStage: 1, NextReviewDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		// Due tomorrow: not in this pass.
		"пес": {SrsStage: 2, NextReviewDate: now.AddDate(0, 0, 1)},
		// Overdue.
		"лис": {SrsStage: 3, NextReviewDate: now.AddDate(0, 0, -5)},
		// "сонце" has no record: always due.
	}

	due := FilterDue(words, mapping, now)
	assert.Equal(t, []domain.Word{
		{Native: "cat", Translation: "кіт"},
		{Native: "fox", Translation: "лис"},
		{Native: "sun", Translation: "сонце"},
	}, due)
}
