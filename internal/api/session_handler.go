package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/okravchuk/worddrill/internal/api/shared"
	"github.com/okravchuk/worddrill/internal/platform/logger"
	"github.com/okravchuk/worddrill/internal/sentence"
	"github.com/okravchuk/worddrill/internal/session"
)

// SessionHandler handles review-session requests: set selection,
// decisions, undo, shuffle, and the session snapshot.
type SessionHandler struct {
	session   *session.Session
	sentences *sentence.Index
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sess *session.Session, sentences *sentence.Index, logger *slog.Logger) *SessionHandler {
	if sess == nil {
		panic("session cannot be nil")
	}
	if sentences == nil {
		panic("sentences cannot be nil for SessionHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		session:   sess,
		sentences: sentences,
		validate:  validator.New(),
		logger:    logger.With(slog.String("component", "session_handler")),
	}
}

// GetSession handles GET /api/session requests.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// SelectSet handles POST /api/session/select-set requests. Selecting a
// set builds its due queue and resets the cursor, history, and reveal
// state.
func (h *SessionHandler) SelectSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SelectSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid select-set body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "set_index is required")
		return
	}

	if err := h.session.SelectSet(r.Context(), *req.SetIndex); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("set selected", slog.Int("set_index", *req.SetIndex))
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// StartTraining handles POST /api/session/training requests, starting a
// pass over the unknown-word queue of the selected set.
func (h *SessionHandler) StartTraining(w http.ResponseWriter, r *http.Request) {
	if err := h.session.StartTraining(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// Know handles POST /api/session/know requests. The decision and its
// settle run back to back; the transition delay, if any, belongs to the
// renderer.
func (h *SessionHandler) Know(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Know(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	h.session.Settle(r.Context())
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// DontKnow handles POST /api/session/dont-know requests.
func (h *SessionHandler) DontKnow(w http.ResponseWriter, r *http.Request) {
	if err := h.session.DontKnow(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	h.session.Settle(r.Context())
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// Previous handles POST /api/session/previous requests. Undo rewinds
// the cursor only; persisted progress from the undone decision stands.
func (h *SessionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Previous(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// Shuffle handles POST /api/session/shuffle requests.
func (h *SessionHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Shuffle(); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// ToggleReveal handles POST /api/session/reveal requests.
func (h *SessionHandler) ToggleReveal(w http.ResponseWriter, r *http.Request) {
	h.session.ToggleReveal()
	h.respondWithSnapshot(w, r, http.StatusOK)
}

// ResetProgress handles POST /api/session/reset-progress requests. The
// wipe covers every set of the dictionary, so the body must carry an
// explicit confirmation.
func (h *SessionHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ResetProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid reset-progress body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.Confirm {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Reset requires confirm: true")
		return
	}

	if err := h.session.ResetAllProgress(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("all progress reset")
	h.respondWithSnapshot(w, r, http.StatusOK)
}

func (h *SessionHandler) respondWithSnapshot(w http.ResponseWriter, r *http.Request, status int) {
	snap := h.session.Snapshot()
	shared.RespondWithJSON(w, r, status, snapshotToResponse(snap, h.sentences.Lookup))
}
