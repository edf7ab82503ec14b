package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravchuk/worddrill/internal/domain"
)

func TestParseGridsSingleGroup(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"cat", "", "кіт"},
		{"dog", "", "пес"},
	}

	sets, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)
	require.Len(t, sets, 1)

	assert.Equal(t, "Set 1", sets[0].Name)
	assert.Equal(t, 0, sets[0].OriginalSetIndex)
	assert.Equal(t, []domain.Word{
		{Native: "cat", Translation: "кіт"},
		{Native: "dog", Translation: "пес"},
	}, sets[0].Words)
}

func TestParseGridsTrimsAndSkipsIncompleteRows(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"  cat  ", "", "  кіт "},
		{"dog", "", ""},     // missing translation
		{"", "", "пес"},     // missing native
		{"   ", "", "миша"}, // native blank after trim
		{"fox", "", "лис"},
	}

	sets, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)
	require.Len(t, sets, 1)

	assert.Equal(t, []domain.Word{
		{Native: "cat", Translation: "кіт"},
		{Native: "fox", Translation: "лис"},
	}, sets[0].Words)
}

func TestParseGridsJaggedRows(t *testing.T) {
	t.Parallel()

	// Second row is too short to reach the translation column of the
	// second group; first row defines maxCols.
	grid := Grid{
		{"cat", "", "кіт", "", "sun", "", "сонце"},
		{"dog", "", "пес"},
	}

	sets, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "Set 1", sets[0].Name)
	assert.Len(t, sets[0].Words, 2)
	assert.Equal(t, "Set 2", sets[1].Name)
	assert.Equal(t, []domain.Word{{Native: "sun", Translation: "сонце"}}, sets[1].Words)
}

func TestParseGridsChunksLargeGroup(t *testing.T) {
	t.Parallel()

	grid := make(Grid, 35)
	for i := range grid {
		grid[i] = []string{fmt.Sprintf("word%d", i), "", fmt.Sprintf("слово%d", i)}
	}

	sets, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "Set 1 (1-30)", sets[0].Name)
	assert.Len(t, sets[0].Words, 30)
	assert.Equal(t, "Set 1 (31-35)", sets[1].Name)
	assert.Len(t, sets[1].Words, 5)

	// Chunks share one original set index.
	assert.Equal(t, 0, sets[0].OriginalSetIndex)
	assert.Equal(t, 0, sets[1].OriginalSetIndex)

	// Concatenated chunks reconstruct the source group in order.
	var all []domain.Word
	for _, s := range sets {
		all = append(all, s.Words...)
	}
	require.Len(t, all, 35)
	for i, w := range all {
		assert.Equal(t, fmt.Sprintf("word%d", i), w.Native)
	}
}

func TestParseGridsEmptyGroupsDoNotConsumeIndices(t *testing.T) {
	t.Parallel()

	// Columns 0-2 form a group with no complete pairs; the group at
	// column 4 is the first non-empty one and must become Set 1.
	grid := Grid{
		{"lonely", "", "", "", "sun", "", "сонце"},
		{"", "", "самотній", "", "moon", "", "місяць"},
	}

	sets, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "Set 1", sets[0].Name)
	assert.Equal(t, 0, sets[0].OriginalSetIndex)
}

func TestParseGridsCounterSharedAcrossSheets(t *testing.T) {
	t.Parallel()

	sheet1 := Grid{{"cat", "", "кіт"}}
	sheet2 := Grid{{"dog", "", "пес", "", "sun", "", "сонце"}}

	sets, err := ParseGrids([]Grid{sheet1, sheet2})
	require.NoError(t, err)
	require.Len(t, sets, 3)

	assert.Equal(t, "Set 1", sets[0].Name)
	assert.Equal(t, "Set 2", sets[1].Name)
	assert.Equal(t, "Set 3", sets[2].Name)
	assert.Equal(t, []int{0, 1, 2}, []int{
		sets[0].OriginalSetIndex,
		sets[1].OriginalSetIndex,
		sets[2].OriginalSetIndex,
	})
}

func TestParseGridsDeterministic(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"cat", "", "кіт", "", "sun", "", "сонце"},
		{"dog", "", "пес", "", "moon", "", "місяць"},
	}

	first, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)
	second, err := ParseGrids([]Grid{grid})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseGridsEmptySource(t *testing.T) {
	t.Parallel()

	_, err := ParseGrids(nil)
	assert.ErrorIs(t, err, ErrEmptySource)

	_, err = ParseGrids([]Grid{{}, {}})
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestParseGridsNoValidWords(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"cat", "", ""},
		{"", "", "пес"},
	}

	_, err := ParseGrids([]Grid{grid})
	assert.ErrorIs(t, err, ErrNoValidWords)
}
