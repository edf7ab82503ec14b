package session

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/progress"
)

// Session operation errors. Decision operations have no user-visible
// failure path beyond these guards; acting on malformed state is a
// rejected no-op, never a crash.
var (
	// ErrNoDictionary is returned when an operation requires a loaded
	// dictionary and none is present.
	ErrNoDictionary = errors.New("no dictionary loaded")

	// ErrNoSetSelected is returned when an operation requires a
	// previously selected set.
	ErrNoSetSelected = errors.New("no set selected")

	// ErrInvalidSetIndex is returned when a set index is out of range.
	ErrInvalidSetIndex = errors.New("set index out of range")

	// ErrDecisionInFlight is returned when a decision arrives while a
	// prior decision's tail has not settled yet. The new decision is
	// rejected, not queued.
	ErrDecisionInFlight = errors.New("a decision is already being processed")

	// ErrNoCurrentWord is returned when a decision arrives with no word
	// under the cursor.
	ErrNoCurrentWord = errors.New("no current word")

	// ErrNoUnknownWords is returned when training is requested with an
	// empty unknown-word queue.
	ErrNoUnknownWords = errors.New("no unknown words to train")
)

// FinishedVariant names the terminal screen the renderer should show
// once a pass is complete.
type FinishedVariant string

const (
	// FinishedNone means the session is still active (or empty).
	FinishedNone FinishedVariant = ""

	// FinishedSet means a regular review pass reached its end.
	FinishedSet FinishedVariant = "finished"

	// FinishedTrainingRemaining means a training pass reached its end
	// with words still in the unknown queue.
	FinishedTrainingRemaining FinishedVariant = "training_remaining"

	// FinishedTrainingComplete means training emptied the unknown queue.
	FinishedTrainingComplete FinishedVariant = "training_complete"
)

// Session drives one study pass over a chosen set: it builds the
// working queue of due words, advances on know / don't-know decisions,
// supports shuffle and a linear cursor undo, and detects completion.
//
// Decisions are two-phase: the decision method applies the logical
// mutation synchronously and raises a processing flag; Settle runs the
// deferred tail (training-queue filtering, cursor advance) and lowers
// the flag. The flag makes know, don't-know, and undo mutually
// exclusive: anything arriving while it is raised is rejected as a
// no-op. A caller without an animation delay simply calls Settle
// immediately after the decision.
type Session struct {
	mu sync.Mutex

	srs      *progress.SrsStore
	unknowns *progress.UnknownQueue
	logger   *slog.Logger

	// now is the clock; injectable for tests.
	now func() time.Time

	// shuffle permutes a word slice uniformly at random; injectable for
	// deterministic tests.
	shuffle func([]domain.Word)

	dictionary    *domain.LoadedDictionary
	selectedSet   int // index into dictionary.Sets, -1 when none
	sessionWords  []domain.Word
	currentIndex  int
	history       []int
	isTraining    bool
	isSetFinished bool
	revealed      bool

	srsProgress  map[string]domain.WordProgress
	unknownWords []domain.Word

	processing bool
	settleTail func(ctx context.Context)
}

// New creates a Session over the given progress stores.
// If logger is nil, a default logger will be used.
func New(srs *progress.SrsStore, unknowns *progress.UnknownQueue, logger *slog.Logger) *Session {
	if srs == nil {
		panic("srs store cannot be nil")
	}
	if unknowns == nil {
		panic("unknown queue cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		srs:         srs,
		unknowns:    unknowns,
		logger:      logger.With(slog.String("component", "review_session")),
		now:         func() time.Time { return time.Now().UTC() },
		shuffle:     shuffleWords,
		selectedSet: -1,
	}
}

func shuffleWords(words []domain.Word) {
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

// SetDictionary installs a freshly imported dictionary and resets all
// session state. A new import is a full session reset.
func (s *Session) SetDictionary(dict *domain.LoadedDictionary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dictionary = dict
	s.selectedSet = -1
	s.sessionWords = nil
	s.currentIndex = 0
	s.history = nil
	s.isTraining = false
	s.isSetFinished = false
	s.revealed = false
	s.srsProgress = nil
	s.unknownWords = nil
	s.processing = false
	s.settleTail = nil
}

// Dictionary returns the currently loaded dictionary, or nil.
func (s *Session) Dictionary() *domain.LoadedDictionary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dictionary
}

// SelectSet enters a review pass over the chosen set: due words are
// computed against the persisted progress, shuffled, and installed as
// the working queue. Words that are not due never appear in the pass.
func (s *Session) SelectSet(ctx context.Context, setIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dictionary == nil {
		return ErrNoDictionary
	}
	if setIndex < 0 || setIndex >= len(s.dictionary.Sets) {
		return ErrInvalidSetIndex
	}

	set := &s.dictionary.Sets[setIndex]
	s.srsProgress = s.srs.Load(ctx, s.dictionary.Name, set.OriginalSetIndex)

	due := progress.FilterDue(set.Words, s.srsProgress, s.now())
	s.shuffle(due)

	s.selectedSet = setIndex
	s.sessionWords = due
	s.currentIndex = 0
	s.history = nil
	s.isTraining = false
	s.isSetFinished = false
	s.revealed = false
	s.processing = false
	s.settleTail = nil
	s.unknownWords = s.unknowns.Load(ctx, s.dictionary.Name, set.OriginalSetIndex)

	s.logger.Debug("set selected",
		slog.String("set", set.Name),
		slog.Int("due_words", len(due)),
		slog.Int("unknown_words", len(s.unknownWords)))
	return nil
}

// StartTraining enters the isolated sub-loop over the unknown-word
// queue of the selected set. The queue is reloaded, shuffled, and
// becomes the working queue.
func (s *Session) StartTraining(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dictionary == nil {
		return ErrNoDictionary
	}
	if s.selectedSet < 0 {
		return ErrNoSetSelected
	}

	set := &s.dictionary.Sets[s.selectedSet]
	unknowns := s.unknowns.Load(ctx, s.dictionary.Name, set.OriginalSetIndex)
	if len(unknowns) == 0 {
		return ErrNoUnknownWords
	}

	s.shuffle(unknowns)
	s.unknownWords = unknowns
	s.sessionWords = append([]domain.Word(nil), unknowns...)
	s.isTraining = true
	s.currentIndex = 0
	s.history = nil
	s.isSetFinished = false
	s.revealed = false
	s.processing = false
	s.settleTail = nil

	s.logger.Debug("training started", slog.Int("unknown_words", len(unknowns)))
	return nil
}

// Know records a successful answer for the current word: its SRS stage
// advances and the next review moves out per the interval table. The
// deferred tail advances the cursor (or, in training, removes the word
// from the queue under the cursor).
func (s *Session) Know(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.beginDecision()
	if err != nil {
		return err
	}

	set := &s.dictionary.Sets[s.selectedSet]
	prev := s.srsProgress[word.Translation] // zero value: stage 0
	s.srsProgress[word.Translation] = prev.Advance(s.now())
	if err := s.srs.Save(ctx, s.dictionary.Name, set.OriginalSetIndex, s.srsProgress); err != nil {
		s.logger.Error("failed to persist srs progress", slog.String("error", err.Error()))
	}

	s.history = append(s.history, s.currentIndex)
	s.revealed = false

	w := word
	s.settleTail = func(ctx context.Context) {
		if s.isTraining {
			s.unknownWords = progress.RemoveUnknown(s.unknownWords, w)
			if err := s.unknowns.Save(ctx, s.dictionary.Name, set.OriginalSetIndex, s.unknownWords); err != nil {
				s.logger.Error("failed to persist unknown words", slog.String("error", err.Error()))
			}
			// The queue shrinks under the player: removal shifts
			// subsequent words into the current slot, so the cursor
			// stays put.
			s.sessionWords = progress.RemoveUnknown(s.sessionWords, w)
			if len(s.unknownWords) == 0 {
				s.isSetFinished = true
				return
			}
			s.refreshFinished()
			return
		}
		s.currentIndex++
		s.refreshFinished()
	}
	return nil
}

// DontKnow records a failed answer for the current word: an existing
// SRS record resets to stage 0 (a never-seen word gets no record), and
// outside training the word joins the unknown queue. The deferred tail
// always advances the cursor, so during training the word simply recurs
// on the next pass.
func (s *Session) DontKnow(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word, err := s.beginDecision()
	if err != nil {
		return err
	}

	set := &s.dictionary.Sets[s.selectedSet]
	if prev, ok := s.srsProgress[word.Translation]; ok {
		s.srsProgress[word.Translation] = prev.Reset(s.now())
		if err := s.srs.Save(ctx, s.dictionary.Name, set.OriginalSetIndex, s.srsProgress); err != nil {
			s.logger.Error("failed to persist srs progress", slog.String("error", err.Error()))
		}
	}

	s.history = append(s.history, s.currentIndex)
	s.revealed = false

	if !s.isTraining {
		if updated, added := progress.AddUnknown(s.unknownWords, word); added {
			s.unknownWords = updated
			if err := s.unknowns.Save(ctx, s.dictionary.Name, set.OriginalSetIndex, s.unknownWords); err != nil {
				s.logger.Error("failed to persist unknown words", slog.String("error", err.Error()))
			}
		}
	}

	s.settleTail = func(ctx context.Context) {
		s.currentIndex++
		s.refreshFinished()
	}
	return nil
}

// Settle runs the deferred tail of the last decision and lowers the
// processing flag. Calling it with no decision in flight is a no-op.
// The renderer invokes it once its card animation completes; callers
// without animation invoke it immediately.
func (s *Session) Settle(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.processing {
		return
	}
	if s.settleTail != nil {
		s.settleTail(ctx)
		s.settleTail = nil
	}
	s.processing = false
}

// Previous rewinds the cursor to the position before the last decision.
// It does not reverse SRS or unknown-queue mutations: only the display
// cursor moves back. No-op when the history is empty or a decision is
// in flight.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processing {
		return ErrDecisionInFlight
	}
	if len(s.history) == 0 {
		return nil
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.currentIndex = last
	s.revealed = false
	s.refreshFinished()
	return nil
}

// Shuffle re-permutes the working queue and restarts the pass: cursor
// to zero, history cleared. No-op when fewer than two words remain or a
// decision is in flight. Persisted state is untouched.
func (s *Session) Shuffle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processing {
		return ErrDecisionInFlight
	}
	if len(s.sessionWords) < 2 {
		return nil
	}

	s.shuffle(s.sessionWords)
	s.currentIndex = 0
	s.history = nil
	s.isSetFinished = false
	s.revealed = false
	return nil
}

// ToggleReveal flips the card's reveal state. Purely presentational.
func (s *Session) ToggleReveal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revealed = !s.revealed
}

// ResetAllProgress destructively clears every persisted SRS and
// unknown-word entry of the loaded dictionary, across all of its sets.
// If a set is active, the working queue is reseeded with ALL of that
// set's words, freshly shuffled. Irreversible; the boundary must gate
// it behind an explicit confirmation.
func (s *Session) ResetAllProgress(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dictionary == nil {
		return ErrNoDictionary
	}
	if s.processing {
		return ErrDecisionInFlight
	}

	if err := s.srs.RemoveAll(ctx, s.dictionary.Name); err != nil {
		return err
	}
	if err := s.unknowns.RemoveAll(ctx, s.dictionary.Name); err != nil {
		return err
	}

	s.srsProgress = map[string]domain.WordProgress{}
	s.unknownWords = nil
	s.history = nil
	s.isTraining = false
	s.isSetFinished = false
	s.revealed = false
	s.currentIndex = 0

	if s.selectedSet >= 0 {
		set := &s.dictionary.Sets[s.selectedSet]
		words := append([]domain.Word(nil), set.Words...)
		s.shuffle(words)
		s.sessionWords = words
	} else {
		s.sessionWords = nil
	}

	s.logger.Info("all progress reset", slog.String("dictionary", s.dictionary.Name))
	return nil
}

// beginDecision runs the shared entry guards of Know and DontKnow and
// raises the processing flag. Callers hold s.mu.
func (s *Session) beginDecision() (domain.Word, error) {
	if s.processing {
		return domain.Word{}, ErrDecisionInFlight
	}
	if s.dictionary == nil || s.selectedSet < 0 {
		return domain.Word{}, ErrNoSetSelected
	}
	if s.currentIndex >= len(s.sessionWords) {
		return domain.Word{}, ErrNoCurrentWord
	}

	s.processing = true
	return s.sessionWords[s.currentIndex], nil
}

// refreshFinished re-derives the finished flag after a cursor change.
func (s *Session) refreshFinished() {
	s.isSetFinished = len(s.sessionWords) > 0 && s.currentIndex >= len(s.sessionWords)
}
