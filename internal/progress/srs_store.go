package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/store"
)

// SrsStore persists the review progress of each word in a set. The
// mapping is keyed by translation string alone: two native spellings
// sharing one translation are the same SRS item. (The unknown-word
// queue keys differently on purpose; see UnknownQueue.)
type SrsStore struct {
	store  store.Store
	logger *slog.Logger
}

// NewSrsStore creates a new SrsStore on top of the given key-value
// store. If logger is nil, a default logger will be used.
func NewSrsStore(kv store.Store, logger *slog.Logger) *SrsStore {
	if kv == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SrsStore{
		store:  kv,
		logger: logger.With(slog.String("component", "srs_store")),
	}
}

// progressPair is the persisted wire form: a [translation, progress]
// JSON pair, matching the pair-array layout of the persisted blobs.
type progressPair struct {
	Translation string
	Progress    domain.WordProgress
}

func (p progressPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Translation, p.Progress})
}

func (p *progressPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", store.ErrMalformedState, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: progress pair must have two elements", store.ErrMalformedState)
	}
	if err := json.Unmarshal(raw[0], &p.Translation); err != nil {
		return fmt.Errorf("%w: %v", store.ErrMalformedState, err)
	}
	if err := json.Unmarshal(raw[1], &p.Progress); err != nil {
		return fmt.Errorf("%w: %v", store.ErrMalformedState, err)
	}
	return nil
}

// Load returns the persisted progress mapping for a set. A missing or
// malformed value yields an empty mapping; corruption is logged and
// never surfaced to the caller.
func (s *SrsStore) Load(ctx context.Context, dictionaryName string, originalSetIndex int) map[string]domain.WordProgress {
	key := store.SrsProgressKey(dictionaryName, originalSetIndex)

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Warn("failed to read srs progress, treating as empty",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return map[string]domain.WordProgress{}
	}

	var pairs []progressPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		s.logger.Warn("malformed srs progress, treating as empty",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return map[string]domain.WordProgress{}
	}

	mapping := make(map[string]domain.WordProgress, len(pairs))
	for _, p := range pairs {
		if err := p.Progress.Validate(); err != nil {
			s.logger.Warn("invalid srs progress entry, skipping",
				slog.String("key", key),
				slog.String("translation", p.Translation),
				slog.String("error", err.Error()))
			continue
		}
		mapping[p.Translation] = p.Progress
	}
	return mapping
}

// Save persists the full progress mapping for a set, replacing any
// prior value. Pairs are written in sorted key order so the persisted
// blob is stable.
func (s *SrsStore) Save(ctx context.Context, dictionaryName string, originalSetIndex int, mapping map[string]domain.WordProgress) error {
	translations := make([]string, 0, len(mapping))
	for t := range mapping {
		translations = append(translations, t)
	}
	sort.Strings(translations)

	pairs := make([]progressPair, 0, len(mapping))
	for _, t := range translations {
		pairs = append(pairs, progressPair{Translation: t, Progress: mapping[t]})
	}

	data, err := json.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("failed to encode srs progress: %w", err)
	}

	key := store.SrsProgressKey(dictionaryName, originalSetIndex)
	if err := s.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist srs progress: %w", err)
	}
	return nil
}

// RemoveAll deletes every persisted progress entry belonging to the
// given dictionary, across all of its original set indices.
func (s *SrsStore) RemoveAll(ctx context.Context, dictionaryName string) error {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate keys: %w", err)
	}

	prefix := store.SrsProgressKeyPrefix(dictionaryName)
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to remove key %q: %w", key, err)
		}
	}
	return nil
}

// FilterDue returns, in order, the words of a set that should enter a
// review pass at the given time: words with no progress record plus
// words whose next review date has arrived (by calendar day).
func FilterDue(words []domain.Word, mapping map[string]domain.WordProgress, now time.Time) []domain.Word {
	var due []domain.Word
	for _, w := range words {
		p, ok := mapping[w.Translation]
		if !ok || p.IsDue(now) {
			due = append(due, w)
		}
	}
	return due
}
