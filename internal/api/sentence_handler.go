package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/okravchuk/worddrill/internal/api/shared"
	"github.com/okravchuk/worddrill/internal/platform/logger"
	"github.com/okravchuk/worddrill/internal/service"
)

// SentenceHandler handles example-sentence import and clearing.
type SentenceHandler struct {
	dictService *service.DictionaryService
	logger      *slog.Logger
}

// NewSentenceHandler creates a new SentenceHandler.
func NewSentenceHandler(dictService *service.DictionaryService, logger *slog.Logger) *SentenceHandler {
	if dictService == nil {
		panic("dictService cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil for SentenceHandler")
	}

	return &SentenceHandler{
		dictService: dictService,
		logger:      logger.With(slog.String("component", "sentence_handler")),
	}
}

// ImportSentences handles POST /api/sentences requests. The body
// carries either a flat headword→sentence map or a two-column grid;
// the new source merges into the index, winning on key collisions.
func (h *SentenceHandler) ImportSentences(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ImportSentencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid sentence import body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Entries) == 0 && len(req.Grid) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Either entries or grid is required")
		return
	}

	var err error
	if len(req.Entries) > 0 {
		err = h.dictService.ImportSentenceEntries(r.Context(), req.Entries)
	} else {
		err = h.dictService.ImportSentenceGrid(r.Context(), req.Grid)
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearSentences handles DELETE /api/sentences requests.
func (h *SentenceHandler) ClearSentences(w http.ResponseWriter, r *http.Request) {
	if err := h.dictService.ClearSentences(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
