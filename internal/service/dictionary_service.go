// Package service orchestrates ingestion: turning uploaded grids into a
// loaded dictionary, merging sentence sources, and exposing per-set due
// counts for the set-selection screen.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/parser"
	"github.com/okravchuk/worddrill/internal/platform/logger"
	"github.com/okravchuk/worddrill/internal/progress"
	"github.com/okravchuk/worddrill/internal/sentence"
	"github.com/okravchuk/worddrill/internal/session"
)

// ErrNoDictionaryLoaded is returned when an operation requires a loaded
// dictionary and none exists yet.
var ErrNoDictionaryLoaded = errors.New("no dictionary loaded")

// SetSummary describes one word set on the set-selection screen.
type SetSummary struct {
	Name             string `json:"name"`
	WordCount        int    `json:"word_count"`
	OriginalSetIndex int    `json:"original_set_index"`
	DueCount         int    `json:"due_count"`
}

// DictionaryService owns the loaded dictionary and the ingestion
// boundary. Imports are all-or-nothing: a failed parse leaves the
// previously loaded dictionary and all session state untouched.
type DictionaryService struct {
	mu        sync.Mutex
	session   *session.Session
	srs       *progress.SrsStore
	sentences *sentence.Index
	logger    *slog.Logger
	now       func() time.Time
}

// NewDictionaryService creates a DictionaryService.
// If logger is nil, a default logger will be used.
func NewDictionaryService(
	sess *session.Session,
	srs *progress.SrsStore,
	sentences *sentence.Index,
	logger *slog.Logger,
) *DictionaryService {
	if sess == nil {
		panic("session cannot be nil")
	}
	if srs == nil {
		panic("srs store cannot be nil")
	}
	if sentences == nil {
		panic("sentence index cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DictionaryService{
		session:   sess,
		srs:       srs,
		sentences: sentences,
		logger:    logger.With(slog.String("component", "dictionary_service")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ImportDictionary parses the uploaded grids into a new dictionary and,
// on success, installs it as the loaded dictionary (a full session
// reset). Parse failures propagate and leave prior state untouched.
func (s *DictionaryService) ImportDictionary(
	ctx context.Context,
	name string,
	grids []parser.Grid,
) (*domain.LoadedDictionary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sets, err := parser.ParseGrids(grids)
	if err != nil {
		log.Warn("dictionary import failed",
			slog.String("name", name),
			slog.String("error", err.Error()))
		return nil, err
	}

	dict, err := domain.NewLoadedDictionary(name, sets)
	if err != nil {
		return nil, fmt.Errorf("failed to build dictionary: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetDictionary(dict)

	log.Info("dictionary imported",
		slog.String("name", name),
		slog.Int("sets", len(sets)))
	return dict, nil
}

// CurrentDictionary returns the loaded dictionary.
// Returns ErrNoDictionaryLoaded when none has been imported yet.
func (s *DictionaryService) CurrentDictionary() (*domain.LoadedDictionary, error) {
	dict := s.session.Dictionary()
	if dict == nil {
		return nil, ErrNoDictionaryLoaded
	}
	return dict, nil
}

// SetSummaries lists the loaded dictionary's sets with their due counts
// for the set-selection screen.
func (s *DictionaryService) SetSummaries(ctx context.Context) ([]SetSummary, error) {
	dict, err := s.CurrentDictionary()
	if err != nil {
		return nil, err
	}

	now := s.now()
	summaries := make([]SetSummary, 0, len(dict.Sets))
	for _, set := range dict.Sets {
		mapping := s.srs.Load(ctx, dict.Name, set.OriginalSetIndex)
		summaries = append(summaries, SetSummary{
			Name:             set.Name,
			WordCount:        len(set.Words),
			OriginalSetIndex: set.OriginalSetIndex,
			DueCount:         len(progress.FilterDue(set.Words, mapping, now)),
		})
	}
	return summaries, nil
}

// ImportSentenceEntries merges a flat headword→sentence mapping into
// the sentence index.
func (s *DictionaryService) ImportSentenceEntries(ctx context.Context, entries map[string]string) error {
	if err := s.sentences.MergeEntries(ctx, entries); err != nil {
		return fmt.Errorf("failed to import sentences: %w", err)
	}
	s.logger.Info("sentence entries imported", slog.Int("total_indexed", s.sentences.Len()))
	return nil
}

// ImportSentenceGrid merges a two-column tabular sentence source into
// the sentence index.
func (s *DictionaryService) ImportSentenceGrid(ctx context.Context, grid [][]string) error {
	if err := s.sentences.MergeGrid(ctx, grid); err != nil {
		return fmt.Errorf("failed to import sentences: %w", err)
	}
	s.logger.Info("sentence grid imported", slog.Int("total_indexed", s.sentences.Len()))
	return nil
}

// ClearSentences empties the sentence index and removes its persisted copy.
func (s *DictionaryService) ClearSentences(ctx context.Context) error {
	if err := s.sentences.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sentences: %w", err)
	}
	s.logger.Info("sentence index cleared")
	return nil
}
