package http

import (
	"net/http"

	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/shared/metrics"
	"dns-query-collector/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the router of the local collector serving collectorID.
func NewRouter(collectorID, key string, submissionStore stores.SubmissionStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	submitQueriesHandler := NewSubmitQueriesHandler(collectorID, key, submissionStore)
	getSubmissionHandler := NewGetSubmissionHandler(collectorID, key, submissionStore)

	// Routes
	router.Post("/collectors/{collectorID}/dns/queries", errorHandlingAdapter(submitQueriesHandler))
	router.Get("/collectors/{collectorID}/dns/queries/{submissionID}", errorHandlingAdapter(getSubmissionHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
