package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	internalhttp "dns-query-collector/internal/http"
	"dns-query-collector/internal/shared/configs"
	"dns-query-collector/internal/shared/filestorages"
	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/stores"
)

// CollectorServer is the local stand-in for the remote collector endpoint.
type CollectorServer struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// NewCollectorServer creates a server accepting submissions for sink.collector_id with sink.key.
func NewCollectorServer(config *configs.Config) (*CollectorServer, error) {
	if config.Sink.CollectorID == "" || config.Sink.Key == "" {
		return nil, errors.New("sink.collector_id and sink.key are required to serve submissions")
	}

	appLogger, err := loggers.New(config.Log.Level, loggers.WithFormat(config.Log.Format))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "mockcollector").
		Logger()

	// Initialize submission store
	fileStorage, err := filestorages.NewFileStorage(config.Collector.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	submissionStore := stores.NewSubmissionStore(fileStorage)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(config.Sink.CollectorID, config.Sink.Key, submissionStore, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Collector.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Collector.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Collector.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Collector.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Collector.IdleTimeout) * time.Second,
	}

	return &CollectorServer{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Handler exposes the router, mostly for tests.
func (s *CollectorServer) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (s *CollectorServer) Start() error {
	s.appLogger.Info().
		Str(loggers.FieldCollectorID, s.config.Sink.CollectorID).
		Msgf("Starting local collector on port %d (log_level=%s, root_dir=%s)",
			s.config.Collector.Port,
			s.config.Log.Level,
			s.config.Collector.RootDir)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *CollectorServer) Shutdown(ctx context.Context) error {
	s.appLogger.Info().Msg("Shutting down server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.appLogger.Info().Msg("Server stopped")
	return nil
}
