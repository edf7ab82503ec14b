package domain

import (
	"errors"
	"strings"
)

// Word-specific validation errors
var (
	// ErrWordNativeEmpty is returned when a word's native term is empty.
	ErrWordNativeEmpty = errors.New("word native term cannot be empty")

	// ErrWordTranslationEmpty is returned when a word's translation is empty.
	ErrWordTranslationEmpty = errors.New("word translation cannot be empty")

	// ErrWordSetNameEmpty is returned when a word set has no name.
	ErrWordSetNameEmpty = errors.New("word set name cannot be empty")

	// ErrWordSetEmpty is returned when a word set contains no words.
	ErrWordSetEmpty = errors.New("word set must contain at least one word")

	// ErrDictionaryNameEmpty is returned when a dictionary has no name.
	ErrDictionaryNameEmpty = errors.New("dictionary name cannot be empty")
)

// Word is an immutable pair of a native term and its translation.
// Identity for all downstream logic is the ordered (native, translation)
// pair; see UnknownQueue and SrsStore for the two places that key
// differently on purpose.
type Word struct {
	Native      string `json:"native"`
	Translation string `json:"translation"`
}

// NewWord creates a Word from raw cell text, trimming both terms.
// Returns an error if either term is empty after trimming.
func NewWord(native, translation string) (Word, error) {
	w := Word{
		Native:      strings.TrimSpace(native),
		Translation: strings.TrimSpace(translation),
	}
	if err := w.Validate(); err != nil {
		return Word{}, err
	}
	return w, nil
}

// Validate checks that both terms are non-empty.
func (w Word) Validate() error {
	if w.Native == "" {
		return ErrWordNativeEmpty
	}
	if w.Translation == "" {
		return ErrWordTranslationEmpty
	}
	return nil
}

// Equal reports whether two words are the same (native, translation) pair.
func (w Word) Equal(other Word) bool {
	return w.Native == other.Native && w.Translation == other.Translation
}

// WordSet is an ordered group of words presented to the learner as one
// study set. OriginalSetIndex identifies the logical source group the
// set was chunked from: all chunks of one group share it, and it is the
// key under which progress and unknown words persist, so progress
// survives re-chunking and re-import.
type WordSet struct {
	Name             string `json:"name"`
	Words            []Word `json:"words"`
	OriginalSetIndex int    `json:"original_set_index"`
}

// Validate checks if the WordSet has valid data.
func (s *WordSet) Validate() error {
	if s.Name == "" {
		return ErrWordSetNameEmpty
	}
	if len(s.Words) == 0 {
		return ErrWordSetEmpty
	}
	for _, w := range s.Words {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadedDictionary is the root of the in-memory model: a named,
// immutable collection of word sets produced by one successful import.
// It is replaced wholesale on a new import, never mutated in place.
type LoadedDictionary struct {
	Name string    `json:"name"`
	Sets []WordSet `json:"sets"`
}

// NewLoadedDictionary creates a dictionary from parsed sets.
// Returns an error if the name is empty or any set is invalid.
func NewLoadedDictionary(name string, sets []WordSet) (*LoadedDictionary, error) {
	d := &LoadedDictionary{Name: name, Sets: sets}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks if the LoadedDictionary has valid data.
func (d *LoadedDictionary) Validate() error {
	if d.Name == "" {
		return ErrDictionaryNameEmpty
	}
	for i := range d.Sets {
		if err := d.Sets[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
