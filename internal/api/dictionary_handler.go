package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/okravchuk/worddrill/internal/api/shared"
	"github.com/okravchuk/worddrill/internal/parser"
	"github.com/okravchuk/worddrill/internal/platform/logger"
	"github.com/okravchuk/worddrill/internal/service"
)

// DictionaryHandler handles dictionary ingestion and listing requests.
type DictionaryHandler struct {
	dictService *service.DictionaryService
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewDictionaryHandler creates a new DictionaryHandler.
func NewDictionaryHandler(dictService *service.DictionaryService, logger *slog.Logger) *DictionaryHandler {
	if dictService == nil {
		panic("dictService cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil for DictionaryHandler")
	}

	return &DictionaryHandler{
		dictService: dictService,
		validate:    validator.New(),
		logger:      logger.With(slog.String("component", "dictionary_handler")),
	}
}

// ImportDictionary handles POST /api/dictionaries requests.
// It parses the uploaded sheet grids into a new dictionary and, on
// success, replaces the loaded one wholesale.
func (h *DictionaryHandler) ImportDictionary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ImportDictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid import request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and at least one sheet are required")
		return
	}

	grids := make([]parser.Grid, len(req.Sheets))
	for i, sheet := range req.Sheets {
		grids[i] = parser.Grid(sheet)
	}

	dict, err := h.dictService.ImportDictionary(r.Context(), req.Name, grids)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	summaries, err := h.dictService.SetSummaries(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("dictionary imported",
		slog.String("name", dict.Name),
		slog.Int("sets", len(dict.Sets)))
	shared.RespondWithJSON(w, r, http.StatusCreated, DictionaryResponse{
		Name: dict.Name,
		Sets: summaries,
	})
}

// GetCurrentDictionary handles GET /api/dictionaries/current requests.
func (h *DictionaryHandler) GetCurrentDictionary(w http.ResponseWriter, r *http.Request) {
	dict, err := h.dictService.CurrentDictionary()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	summaries, err := h.dictService.SetSummaries(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DictionaryResponse{
		Name: dict.Name,
		Sets: summaries,
	})
}
