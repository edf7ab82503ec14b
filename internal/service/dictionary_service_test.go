package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/parser"
	"github.com/okravchuk/worddrill/internal/platform/memstore"
	"github.com/okravchuk/worddrill/internal/progress"
	"github.com/okravchuk/worddrill/internal/sentence"
	"github.com/okravchuk/worddrill/internal/session"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*DictionaryService, *memstore.MemStore) {
	t.Helper()

	ctx := context.Background()
	kv := memstore.New()
	srs := progress.NewSrsStore(kv, nil)
	unknowns := progress.NewUnknownQueue(kv, nil)
	sess := session.New(srs, unknowns, nil)
	idx := sentence.NewIndex(ctx, kv, nil)

	svc := NewDictionaryService(sess, srs, idx, nil)
	svc.now = func() time.Time { return testNow }
	return svc, kv
}

func TestImportDictionary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)

	dict, err := svc.ImportDictionary(ctx, "animals", []parser.Grid{{
		{"cat", "", "кіт"},
		{"dog", "", "пес"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "animals", dict.Name)
	require.Len(t, dict.Sets, 1)
	assert.Equal(t, "Set 1", dict.Sets[0].Name)

	current, err := svc.CurrentDictionary()
	require.NoError(t, err)
	assert.Equal(t, dict, current)
}

func TestImportDictionaryFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.ImportDictionary(ctx, "animals", []parser.Grid{{{"cat", "", "кіт"}}})
	require.NoError(t, err)

	// A failed import must not replace the loaded dictionary.
	_, err = svc.ImportDictionary(ctx, "broken", []parser.Grid{{{"x", "", ""}}})
	assert.ErrorIs(t, err, parser.ErrNoValidWords)

	current, err := svc.CurrentDictionary()
	require.NoError(t, err)
	assert.Equal(t, "animals", current.Name)
}

func TestCurrentDictionaryWithoutImport(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, err := svc.CurrentDictionary()
	assert.ErrorIs(t, err, ErrNoDictionaryLoaded)
}

func TestSetSummariesReportDueCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, kv := newTestService(t)

	_, err := svc.ImportDictionary(ctx, "animals", []parser.Grid{{
		{"cat", "", "кіт"},
		{"dog", "", "пес"},
		{"fox", "", "лис"},
	}})
	require.NoError(t, err)

	// Schedule "пес" for tomorrow: two of three words remain due.
	srs := progress.NewSrsStore(kv, nil)
	require.NoError(t, srs.Save(ctx, "animals", 0, map[string]domain.WordProgress{
		"пес": {SrsStage: 1, NextReviewDate: testNow.AddDate(0, 0, 1)},
	}))

	summaries, err := svc.SetSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, SetSummary{
		Name:             "Set 1",
		WordCount:        3,
		OriginalSetIndex: 0,
		DueCount:         2,
	}, summaries[0])
}

func TestImportSentences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, kv := newTestService(t)

	require.NoError(t, svc.ImportSentenceEntries(ctx, map[string]string{
		"Cat": "The cat sat on the mat.",
	}))
	require.NoError(t, svc.ImportSentenceGrid(ctx, [][]string{
		{"dog", "Every dog has its day."},
	}))

	// The merged index is persisted: a fresh index over the same store
	// sees both sources.
	idx := sentence.NewIndex(ctx, kv, nil)
	s, ok := idx.Lookup("cat")
	assert.True(t, ok)
	assert.Equal(t, "The cat sat on the mat.", s)
	s, ok = idx.Lookup("DOG")
	assert.True(t, ok)
	assert.Equal(t, "Every dog has its day.", s)

	require.NoError(t, svc.ClearSentences(ctx))
	idx = sentence.NewIndex(ctx, kv, nil)
	assert.Equal(t, 0, idx.Len())
}
