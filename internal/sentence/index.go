// Package sentence maintains the lookup from an English headword to an
// example sentence, merged across every uploaded sentence source and
// persisted as a whole under a single global key.
package sentence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/okravchuk/worddrill/internal/store"
)

// Index maps lowercase-trimmed headwords to example sentences. Keys are
// unique; merging a new source overwrites existing sentences on key
// collision (new source wins). Lookup misses are not errors.
type Index struct {
	store   store.Store
	logger  *slog.Logger
	entries map[string]string
}

// NewIndex creates an Index on top of the given key-value store and
// loads any persisted entries. A missing or malformed persisted value
// yields an empty index; corruption is logged and never surfaced.
func NewIndex(ctx context.Context, kv store.Store, logger *slog.Logger) *Index {
	if kv == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	idx := &Index{
		store:   kv,
		logger:  logger.With(slog.String("component", "sentence_index")),
		entries: make(map[string]string),
	}
	idx.load(ctx)
	return idx
}

// sentencePair is the persisted wire form: a [key, sentence] JSON pair.
type sentencePair struct {
	Key      string
	Sentence string
}

func (p sentencePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.Key, p.Sentence})
}

func (p *sentencePair) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", store.ErrMalformedState, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: sentence pair must have two elements", store.ErrMalformedState)
	}
	p.Key, p.Sentence = raw[0], raw[1]
	return nil
}

func (i *Index) load(ctx context.Context) {
	data, err := i.store.Get(ctx, store.SentenceDictionaryKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			i.logger.Warn("failed to read sentence dictionary, starting empty",
				slog.String("error", err.Error()))
		}
		return
	}

	var pairs []sentencePair
	if err := json.Unmarshal(data, &pairs); err != nil {
		i.logger.Warn("malformed sentence dictionary, starting empty",
			slog.String("error", err.Error()))
		return
	}

	for _, p := range pairs {
		i.entries[p.Key] = p.Sentence
	}
}

// MergeEntries merges a flat headword→sentence mapping into the index
// and persists the result in full. Keys are trimmed and lowercased; the
// new source's sentence wins on collision.
func (i *Index) MergeEntries(ctx context.Context, entries map[string]string) error {
	for k, v := range entries {
		key := normalizeKey(k)
		if key == "" {
			continue
		}
		i.entries[key] = v
	}
	return i.persist(ctx)
}

// MergeGrid merges a two-column tabular source into the index: column 0
// is the headword, column 1 the sentence. Rows missing either cell are
// skipped; the last value wins on duplicate keys within the source.
func (i *Index) MergeGrid(ctx context.Context, grid [][]string) error {
	for _, row := range grid {
		if len(row) < 2 {
			continue
		}
		key := normalizeKey(row[0])
		sentence := strings.TrimSpace(row[1])
		if key == "" || sentence == "" {
			continue
		}
		i.entries[key] = sentence
	}
	return i.persist(ctx)
}

// Clear resets the index to empty and removes the persisted copy.
func (i *Index) Clear(ctx context.Context) error {
	i.entries = make(map[string]string)
	if err := i.store.Remove(ctx, store.SentenceDictionaryKey); err != nil {
		return fmt.Errorf("failed to remove sentence dictionary: %w", err)
	}
	return nil
}

// Lookup returns the example sentence for a word's translation, matched
// on the trimmed, lowercased form. The second return value reports
// whether a sentence was found; an absent key is not an error.
func (i *Index) Lookup(translation string) (string, bool) {
	sentence, ok := i.entries[normalizeKey(translation)]
	return sentence, ok
}

// Len returns the number of indexed headwords.
func (i *Index) Len() int {
	return len(i.entries)
}

func (i *Index) persist(ctx context.Context) error {
	keys := make([]string, 0, len(i.entries))
	for k := range i.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]sentencePair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, sentencePair{Key: k, Sentence: i.entries[k]})
	}

	data, err := json.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("failed to encode sentence dictionary: %w", err)
	}
	if err := i.store.Set(ctx, store.SentenceDictionaryKey, data); err != nil {
		return fmt.Errorf("failed to persist sentence dictionary: %w", err)
	}
	return nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
