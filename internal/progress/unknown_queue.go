package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/store"
)

// UnknownQueue persists the ordered list of words the learner has
// flagged as not yet known, per (dictionary, original set index).
// Unlike the SRS progress map, queue membership is decided on the full
// (native, translation) pair, and removal keeps an entry only when it
// differs from the removed word on BOTH fields. The asymmetry against
// SrsStore's translation-only keying is deliberate and must not be
// unified.
type UnknownQueue struct {
	store  store.Store
	logger *slog.Logger
}

// NewUnknownQueue creates a new UnknownQueue on top of the given
// key-value store. If logger is nil, a default logger will be used.
func NewUnknownQueue(kv store.Store, logger *slog.Logger) *UnknownQueue {
	if kv == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UnknownQueue{
		store:  kv,
		logger: logger.With(slog.String("component", "unknown_queue")),
	}
}

// Load returns the persisted queue for a set. A missing or malformed
// value yields an empty queue; corruption is logged and never surfaced.
func (q *UnknownQueue) Load(ctx context.Context, dictionaryName string, originalSetIndex int) []domain.Word {
	key := store.UnknownWordsKey(dictionaryName, originalSetIndex)

	data, err := q.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			q.logger.Warn("failed to read unknown words, treating as empty",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return nil
	}

	var words []domain.Word
	if err := json.Unmarshal(data, &words); err != nil {
		q.logger.Warn("malformed unknown words, treating as empty",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil
	}

	valid := words[:0]
	for _, w := range words {
		if err := w.Validate(); err != nil {
			q.logger.Warn("invalid unknown word entry, skipping",
				slog.String("key", key),
				slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, w)
	}
	return valid
}

// Save persists the full queue for a set, replacing any prior value.
func (q *UnknownQueue) Save(ctx context.Context, dictionaryName string, originalSetIndex int, words []domain.Word) error {
	if words == nil {
		words = []domain.Word{}
	}

	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode unknown words: %w", err)
	}

	key := store.UnknownWordsKey(dictionaryName, originalSetIndex)
	if err := q.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist unknown words: %w", err)
	}
	return nil
}

// RemoveAll deletes every persisted unknown-word queue belonging to the
// given dictionary, across all of its original set indices.
func (q *UnknownQueue) RemoveAll(ctx context.Context, dictionaryName string) error {
	keys, err := q.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate keys: %w", err)
	}

	prefix := store.UnknownWordsKeyPrefix(dictionaryName)
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := q.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to remove key %q: %w", key, err)
		}
	}
	return nil
}

// AddUnknown appends a word to the queue unless an entry with the same
// (native, translation) pair is already present. The second return
// value reports whether the queue changed.
func AddUnknown(words []domain.Word, w domain.Word) ([]domain.Word, bool) {
	for _, existing := range words {
		if existing.Equal(w) {
			return words, false
		}
	}
	return append(words, w), true
}

// RemoveUnknown filters a word out of the queue. An entry survives only
// when it differs from w on both native and translation; matching
// either field removes it.
func RemoveUnknown(words []domain.Word, w domain.Word) []domain.Word {
	var kept []domain.Word
	for _, existing := range words {
		if existing.Native != w.Native && existing.Translation != w.Translation {
			kept = append(kept, existing)
		}
	}
	return kept
}
