package session

import "github.com/okravchuk/worddrill/internal/domain"

// Snapshot is the per-render view of the session exposed to the
// external rendering collaborator. The renderer owns audio, animation,
// and file-picker concerns; it reads a Snapshot and calls back into the
// session only through the decision operations.
type Snapshot struct {
	SetSelected bool
	SetName     string

	// CurrentWord is nil when no word is under the cursor.
	CurrentWord *domain.Word
	Revealed    bool

	// Position is the cursor; Total the working queue length.
	Position int
	Total    int

	IsTraining   bool
	UnknownCount int

	CanUndo    bool
	CanShuffle bool

	Finished FinishedVariant
}

// Snapshot returns a consistent view of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SetSelected:  s.selectedSet >= 0,
		Position:     s.currentIndex,
		Total:        len(s.sessionWords),
		IsTraining:   s.isTraining,
		UnknownCount: len(s.unknownWords),
		CanUndo:      len(s.history) > 0,
		CanShuffle:   len(s.sessionWords) >= 2,
		Revealed:     s.revealed,
	}

	if s.dictionary != nil && s.selectedSet >= 0 {
		snap.SetName = s.dictionary.Sets[s.selectedSet].Name
	}
	if s.currentIndex < len(s.sessionWords) {
		w := s.sessionWords[s.currentIndex]
		snap.CurrentWord = &w
	}

	if s.isSetFinished {
		switch {
		case !s.isTraining:
			snap.Finished = FinishedSet
		case len(s.unknownWords) == 0:
			snap.Finished = FinishedTrainingComplete
		default:
			snap.Finished = FinishedTrainingRemaining
		}
	}
	return snap
}
