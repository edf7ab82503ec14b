package api

import (
	"github.com/okravchuk/worddrill/internal/service"
	"github.com/okravchuk/worddrill/internal/session"
)

// ImportDictionaryRequest is the body of POST /api/dictionaries. Sheets
// carry the already-decoded cell grids, one per worksheet; decoding the
// underlying file format is the uploader's responsibility.
type ImportDictionaryRequest struct {
	Name   string       `json:"name"   validate:"required"`
	Sheets [][][]string `json:"sheets" validate:"required,min=1"`
}

// DictionaryResponse describes the loaded dictionary and its sets.
type DictionaryResponse struct {
	Name string               `json:"name"`
	Sets []service.SetSummary `json:"sets"`
}

// ImportSentencesRequest is the body of POST /api/sentences. Exactly
// one of Entries (flat headword→sentence map) or Grid (two-column
// rows) should be supplied.
type ImportSentencesRequest struct {
	Entries map[string]string `json:"entries,omitempty"`
	Grid    [][]string        `json:"grid,omitempty"`
}

// SelectSetRequest is the body of POST /api/session/select-set.
type SelectSetRequest struct {
	SetIndex *int `json:"set_index" validate:"required"`
}

// ResetProgressRequest is the body of POST /api/session/reset-progress.
// The reset is destructive and irreversible, so the caller must confirm
// explicitly.
type ResetProgressRequest struct {
	Confirm bool `json:"confirm"`
}

// WordResponse is the rendered view of the current word.
type WordResponse struct {
	Native      string `json:"native"`
	Translation string `json:"translation"`
	Sentence    string `json:"sentence,omitempty"`
}

// SessionResponse is the per-render session view for the external
// renderer: current word, counters, control enablement, and which
// terminal screen to show once a pass completes.
type SessionResponse struct {
	SetSelected  bool          `json:"set_selected"`
	SetName      string        `json:"set_name,omitempty"`
	CurrentWord  *WordResponse `json:"current_word,omitempty"`
	Revealed     bool          `json:"revealed"`
	Position     int           `json:"position"`
	Total        int           `json:"total"`
	IsTraining   bool          `json:"is_training"`
	UnknownCount int           `json:"unknown_count"`
	CanUndo      bool          `json:"can_undo"`
	CanShuffle   bool          `json:"can_shuffle"`
	Finished     string        `json:"finished,omitempty"`
}

// snapshotToResponse converts a session snapshot to its wire form,
// attaching the indexed example sentence when one exists.
func snapshotToResponse(snap session.Snapshot, lookup func(string) (string, bool)) SessionResponse {
	resp := SessionResponse{
		SetSelected:  snap.SetSelected,
		SetName:      snap.SetName,
		Revealed:     snap.Revealed,
		Position:     snap.Position,
		Total:        snap.Total,
		IsTraining:   snap.IsTraining,
		UnknownCount: snap.UnknownCount,
		CanUndo:      snap.CanUndo,
		CanShuffle:   snap.CanShuffle,
		Finished:     string(snap.Finished),
	}
	if snap.CurrentWord != nil {
		word := &WordResponse{
			Native:      snap.CurrentWord.Native,
			Translation: snap.CurrentWord.Translation,
		}
		if lookup != nil {
			if s, ok := lookup(snap.CurrentWord.Translation); ok {
				word.Sentence = s
			}
		}
		resp.CurrentWord = word
	}
	return resp
}
