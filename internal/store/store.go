package store

import (
	"context"
	"fmt"
)

// Store is the durable key-value substrate under every persisted
// concern: SRS progress, unknown-word queues, and the sentence index.
// Implementations must be safe for use from a single logical thread of
// control; writes are last-writer-wins, and no multi-key atomicity is
// provided or required.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value stored under key.
	// Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys returns every key currently present, in no particular order.
	Keys(ctx context.Context) ([]string, error)
}

// Key formats for the three persisted concerns. Progress and unknown
// words are keyed per (dictionary, original set index) so that progress
// survives re-chunking and re-import of the same dictionary.
const (
	srsProgressKeyFormat  = "srs_progress_%s_%d"
	unknownWordsKeyFormat = "unknown_words_%s_%d"
	srsProgressKeyPrefix  = "srs_progress_%s_"
	unknownWordsKeyPrefix = "unknown_words_%s_"
	SentenceDictionaryKey = "global_sentence_dictionary"
)

// SrsProgressKey builds the key under which a set's review progress map
// is persisted.
func SrsProgressKey(dictionaryName string, originalSetIndex int) string {
	return fmt.Sprintf(srsProgressKeyFormat, dictionaryName, originalSetIndex)
}

// UnknownWordsKey builds the key under which a set's unknown-word queue
// is persisted.
func UnknownWordsKey(dictionaryName string, originalSetIndex int) string {
	return fmt.Sprintf(unknownWordsKeyFormat, dictionaryName, originalSetIndex)
}

// SrsProgressKeyPrefix returns the prefix matching every progress key
// of a dictionary, used when resetting all progress.
func SrsProgressKeyPrefix(dictionaryName string) string {
	return fmt.Sprintf(srsProgressKeyPrefix, dictionaryName)
}

// UnknownWordsKeyPrefix returns the prefix matching every unknown-word
// key of a dictionary, used when resetting all progress.
func UnknownWordsKeyPrefix(dictionaryName string) string {
	return fmt.Sprintf(unknownWordsKeyPrefix, dictionaryName)
}
