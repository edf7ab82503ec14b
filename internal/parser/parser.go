package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okravchuk/worddrill/internal/domain"
)

// Parsing errors surfaced to the caller. Ingestion is all-or-nothing:
// when either error is returned, no dictionary may be created.
var (
	// ErrEmptySource is returned when the source contains no rows at all.
	ErrEmptySource = errors.New("source contains no rows")

	// ErrNoValidWords is returned when parsing yielded zero words across
	// every group of every sheet.
	ErrNoValidWords = errors.New("no valid words found in source")
)

// MaxWordsPerBlock caps the size of a single word set. Source groups
// larger than this are split into consecutive chunks that share one
// original set index.
const MaxWordsPerBlock = 30

// groupStride is the column distance between consecutive group starts.
// Each group occupies a native column, a spacer, and a translation
// column, with a fourth column left free between groups.
const groupStride = 4

// translationOffset is the column distance from a group's native column
// to its translation column.
const translationOffset = 2

// Grid is a raw 2-D block of cells as decoded from one sheet of an
// uploaded source. Rows may be jagged; empty cells are empty strings.
// Decoding an underlying file format into this shape is the caller's
// responsibility.
type Grid [][]string

// ParseGrids turns one or more sheet grids into validated word sets.
// Sheets are parsed independently in order, with a single original-set
// counter shared across all of them, so indices stay contiguous for one
// import. Groups that yield no words are discarded and do not consume
// an index. Returns ErrEmptySource if no sheet has any rows, and
// ErrNoValidWords if no group anywhere yielded a word.
func ParseGrids(grids []Grid) ([]domain.WordSet, error) {
	hasRows := false
	for _, g := range grids {
		if len(g) > 0 {
			hasRows = true
			break
		}
	}
	if !hasRows {
		return nil, ErrEmptySource
	}

	var sets []domain.WordSet
	counter := 0
	for _, g := range grids {
		sets = append(sets, parseGrid(g, &counter)...)
	}
	if len(sets) == 0 {
		return nil, ErrNoValidWords
	}
	return sets, nil
}

// parseGrid extracts the word sets of one sheet, advancing the shared
// group counter once per non-empty source group.
func parseGrid(g Grid, counter *int) []domain.WordSet {
	maxCols := 0
	for _, row := range g {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	var sets []domain.WordSet
	// A group needs at least a native column and a translation column
	// two to its right.
	for col := 0; col <= maxCols-translationOffset-1; col += groupStride {
		words := collectGroup(g, col)
		if len(words) == 0 {
			continue
		}
		*counter++
		sets = append(sets, chunkGroup(words, *counter)...)
	}
	return sets
}

// collectGroup scans every row of the grid for the group starting at
// the given column. A row contributes a word only when both the native
// and the translation cell are non-empty after trimming.
func collectGroup(g Grid, col int) []domain.Word {
	var words []domain.Word
	for _, row := range g {
		native := cellAt(row, col)
		translation := cellAt(row, col+translationOffset)
		if native == "" || translation == "" {
			continue
		}
		words = append(words, domain.Word{Native: native, Translation: translation})
	}
	return words
}

// chunkGroup splits a group's words into sets of at most
// MaxWordsPerBlock, preserving order. All chunks share the group's
// original set index; chunked sets carry a 1-indexed inclusive range in
// their name.
func chunkGroup(words []domain.Word, setNumber int) []domain.WordSet {
	index := setNumber - 1
	if len(words) <= MaxWordsPerBlock {
		return []domain.WordSet{{
			Name:             fmt.Sprintf("Set %d", setNumber),
			Words:            words,
			OriginalSetIndex: index,
		}}
	}

	var sets []domain.WordSet
	for start := 0; start < len(words); start += MaxWordsPerBlock {
		end := start + MaxWordsPerBlock
		if end > len(words) {
			end = len(words)
		}
		sets = append(sets, domain.WordSet{
			Name:             fmt.Sprintf("Set %d (%d-%d)", setNumber, start+1, end),
			Words:            words[start:end],
			OriginalSetIndex: index,
		})
	}
	return sets
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
