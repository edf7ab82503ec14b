package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/okravchuk/worddrill/internal/api"
	apiMiddleware "github.com/okravchuk/worddrill/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	dictionaryHandler := api.NewDictionaryHandler(app.dictService, app.logger)
	sentenceHandler := api.NewSentenceHandler(app.dictService, app.logger)
	sessionHandler := api.NewSessionHandler(app.session, app.sentences, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/dictionaries", dictionaryHandler.ImportDictionary)
		r.Get("/dictionaries/current", dictionaryHandler.GetCurrentDictionary)

		r.Post("/sentences", sentenceHandler.ImportSentences)
		r.Delete("/sentences", sentenceHandler.ClearSentences)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Post("/select-set", sessionHandler.SelectSet)
			r.Post("/training", sessionHandler.StartTraining)
			r.Post("/know", sessionHandler.Know)
			r.Post("/dont-know", sessionHandler.DontKnow)
			r.Post("/previous", sessionHandler.Previous)
			r.Post("/shuffle", sessionHandler.Shuffle)
			r.Post("/reveal", sessionHandler.ToggleReveal)
			r.Post("/reset-progress", sessionHandler.ResetProgress)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
