package api

import (
	"errors"
	"net/http"

	"github.com/okravchuk/worddrill/internal/parser"
	"github.com/okravchuk/worddrill/internal/service"
	"github.com/okravchuk/worddrill/internal/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Ingestion errors: the upload was readable but yielded nothing usable.
	case errors.Is(err, parser.ErrEmptySource),
		errors.Is(err, parser.ErrNoValidWords):
		return http.StatusUnprocessableEntity

	// Missing prerequisites.
	case errors.Is(err, service.ErrNoDictionaryLoaded),
		errors.Is(err, session.ErrNoDictionary),
		errors.Is(err, session.ErrNoSetSelected),
		errors.Is(err, session.ErrInvalidSetIndex),
		errors.Is(err, session.ErrNoUnknownWords):
		return http.StatusNotFound

	// A decision raced another decision's settle tail.
	case errors.Is(err, session.ErrDecisionInFlight):
		return http.StatusConflict

	// Acting with no word under the cursor.
	case errors.Is(err, session.ErrNoCurrentWord):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, parser.ErrEmptySource):
		return "The uploaded source contains no rows"
	case errors.Is(err, parser.ErrNoValidWords):
		return "No valid words were found in the uploaded source"
	case errors.Is(err, service.ErrNoDictionaryLoaded),
		errors.Is(err, session.ErrNoDictionary):
		return "No dictionary is loaded"
	case errors.Is(err, session.ErrNoSetSelected):
		return "No set is selected"
	case errors.Is(err, session.ErrInvalidSetIndex):
		return "Set index is out of range"
	case errors.Is(err, session.ErrNoUnknownWords):
		return "There are no unknown words to train"
	case errors.Is(err, session.ErrDecisionInFlight):
		return "A decision is already being processed"
	case errors.Is(err, session.ErrNoCurrentWord):
		return "There is no current word"
	default:
		return "An unexpected error occurred"
	}
}
