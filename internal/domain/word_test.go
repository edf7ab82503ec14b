package domain

import "testing"

func TestNewWord(t *testing.T) {
	t.Parallel() // Enable parallel execution

	w, err := NewWord("  cat ", " кіт\t")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if w.Native != "cat" {
		t.Errorf("Expected native %q, got %q", "cat", w.Native)
	}
	if w.Translation != "кіт" {
		t.Errorf("Expected translation %q, got %q", "кіт", w.Translation)
	}

	// Test empty native after trimming
	_, err = NewWord("   ", "кіт")
	if err != ErrWordNativeEmpty {
		t.Errorf("Expected error %v, got %v", ErrWordNativeEmpty, err)
	}

	// Test empty translation after trimming
	_, err = NewWord("cat", "  ")
	if err != ErrWordTranslationEmpty {
		t.Errorf("Expected error %v, got %v", ErrWordTranslationEmpty, err)
	}
}

func TestWordEqual(t *testing.T) {
	t.Parallel() // Enable parallel execution

	a := Word{Native: "cat", Translation: "кіт"}
	b := Word{Native: "cat", Translation: "кіт"}
	c := Word{Native: "cat", Translation: "кішка"}
	d := Word{Native: "kitty", Translation: "кіт"}

	if !a.Equal(b) {
		t.Error("Expected identical pairs to be equal")
	}
	if a.Equal(c) {
		t.Error("Expected pairs differing on translation to be unequal")
	}
	if a.Equal(d) {
		t.Error("Expected pairs differing on native to be unequal")
	}
}

func TestWordSetValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := WordSet{
		Name:             "Set 1",
		Words:            []Word{{Native: "cat", Translation: "кіт"}},
		OriginalSetIndex: 0,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	unnamed := valid
	unnamed.Name = ""
	if err := unnamed.Validate(); err != ErrWordSetNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrWordSetNameEmpty, err)
	}

	empty := valid
	empty.Words = nil
	if err := empty.Validate(); err != ErrWordSetEmpty {
		t.Errorf("Expected error %v, got %v", ErrWordSetEmpty, err)
	}
}

func TestNewLoadedDictionary(t *testing.T) {
	t.Parallel() // Enable parallel execution

	sets := []WordSet{{
		Name:  "Set 1",
		Words: []Word{{Native: "dog", Translation: "пес"}},
	}}

	d, err := NewLoadedDictionary("animals", sets)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Name != "animals" {
		t.Errorf("Expected name %q, got %q", "animals", d.Name)
	}

	_, err = NewLoadedDictionary("", sets)
	if err != ErrDictionaryNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrDictionaryNameEmpty, err)
	}
}
