package domain

import (
	"errors"
	"time"
)

// ReviewIntervals is the fixed schedule, in days, governing how far in
// the future a word's next review lands after each successful answer.
// Index n-1 holds the interval applied when a word reaches stage n.
// The table is intentionally fixed rather than adaptive.
var ReviewIntervals = []int{1, 3, 7, 14, 30, 60, 90, 180, 365}

// MaxStage is the highest SRS stage a word can reach; stages clamp here.
var MaxStage = len(ReviewIntervals)

// Progress-specific validation errors
var (
	// ErrInvalidStage is returned when a stage is negative or above MaxStage.
	ErrInvalidStage = errors.New("srs stage must be between 0 and the interval table length")
)

// WordProgress tracks the spaced repetition state of a single word.
// Stage 0 means never successfully reviewed, or just reset by a
// "don't know" answer. One instance exists per translation string per
// (dictionary, original set index) pair.
type WordProgress struct {
	SrsStage       int       `json:"srsStage"`
	NextReviewDate time.Time `json:"nextReviewDate"`
}

// Validate checks if the WordProgress has valid data.
func (p WordProgress) Validate() error {
	if p.SrsStage < 0 || p.SrsStage > MaxStage {
		return ErrInvalidStage
	}
	return nil
}

// Advance returns the progress after a successful review at the given
// time: the stage climbs by one (clamped at MaxStage) and the next
// review is scheduled the table interval out from now.
func (p WordProgress) Advance(now time.Time) WordProgress {
	stage := p.SrsStage + 1
	if stage > MaxStage {
		stage = MaxStage
	}
	return WordProgress{
		SrsStage:       stage,
		NextReviewDate: now.AddDate(0, 0, ReviewIntervals[stage-1]),
	}
}

// Reset returns the progress after a failed review: stage 0, due now.
func (p WordProgress) Reset(now time.Time) WordProgress {
	return WordProgress{SrsStage: 0, NextReviewDate: now}
}

// IsDue reports whether the word should appear in a review pass at the
// given time. Comparison is by calendar day: the time-of-day component
// of both dates is ignored, so a word scheduled for any moment today is
// already due this morning.
func (p WordProgress) IsDue(now time.Time) bool {
	next := truncateToDay(p.NextReviewDate)
	today := truncateToDay(now)
	return !next.After(today)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
