package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dns-query-collector/internal/aggregators"
	"dns-query-collector/internal/batchers"
	"dns-query-collector/internal/ingestors"
	"dns-query-collector/internal/models"
	"dns-query-collector/internal/parsers"
	"dns-query-collector/internal/reporters"
	"dns-query-collector/internal/shared/configs"
	"dns-query-collector/internal/shared/filestorages"
	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/shared/metrics"
	"dns-query-collector/internal/shared/ulid"
	"dns-query-collector/internal/sinks"
	"dns-query-collector/internal/stores"
)

// App runs the collector pipeline over one log file per Run call.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	ingestionService  ingestors.IngestionService
	sinkClient        sinks.SinkClient        // nil when sink.enabled is false
	parseFailureStore stores.ParseFailureStore // nil when rejects.root_dir is empty
}

type Option func(*App)

// WithLogger replaces the logger built from log.level.
func WithLogger(logger loggers.Logger) Option {
	return func(app *App) {
		app.appLogger = logger
	}
}

// WithSinkClient replaces the collector client built from the sink section.
func WithSinkClient(sinkClient sinks.SinkClient) Option {
	return func(app *App) {
		app.sinkClient = sinkClient
	}
}

// WithParseFailureStore replaces the store built from rejects.root_dir.
func WithParseFailureStore(parseFailureStore stores.ParseFailureStore) Option {
	return func(app *App) {
		app.parseFailureStore = parseFailureStore
	}
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts ...Option) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, loggers.WithFormat(config.Log.Format))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &App{
		config:    config,
		appLogger: appLogger.With().Str(loggers.FieldApp, "dnsqc").Logger(),
	}
	for _, opt := range opts {
		opt(app)
	}

	// Initialize ingestion
	app.ingestionService = ingestors.NewIngestionService(parsers.NewRecordParser())

	// Initialize sink client
	if config.Sink.Enabled && app.sinkClient == nil {
		app.sinkClient, err = sinks.NewCollectorClient(config.Sink)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sink client: %w", err)
		}
	}
	if !config.Sink.Enabled {
		app.sinkClient = nil
	}

	// Initialize parse failure store
	if config.Rejects.RootDir != "" && app.parseFailureStore == nil {
		fileStorage, err := filestorages.NewFileStorage(config.Rejects.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rejects storage: %w", err)
		}
		app.parseFailureStore = stores.NewParseFailureStore(fileStorage)
	}

	return app, nil
}

// Run ingests filePath, submits its records, and writes the rank report to out.
// Only an unreadable file or a failing out is fatal. Rejected lines and failed chunks are
// part of the returned report.
func (app *App) Run(ctx context.Context, filePath string, out io.Writer) (*models.RunReport, error) {
	runID := ulid.NewULID()
	logger := app.appLogger.With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().
		Str(loggers.FieldFilePath, filePath).
		Bool("sink_enabled", app.sinkClient != nil).
		Msg("Run started")

	result, err := app.ingestionService.IngestFile(ctx, filePath)
	if err != nil {
		return nil, err
	}

	report := &models.RunReport{
		RunID:         runID,
		TotalRecords:  result.TotalLines,
		ParsedRecords: len(result.Records),
		ParseFailures: len(result.Failures),
		SinkEnabled:   app.sinkClient != nil,
	}

	app.storeParseFailures(ctx, runID, result.Failures)

	if app.sinkClient != nil {
		chunks := batchers.Partition(result.Records, app.config.Sink.ChunkSize)
		report.Chunks = app.sinkClient.Send(ctx, chunks)
		if failed := report.FailedChunks(); failed > 0 {
			logger.Warn().Int("failed_chunks", failed).Int("chunks", len(chunks)).Msg("Some chunks were not accepted")
		}
	}

	aggregateOpts := aggregators.Options{ScalePercent: app.config.Report.ScalePercent}
	rank := func(keyFn aggregators.KeyFunc) []*models.GroupStat {
		stats := aggregators.AggregateWithOptions(result.Records, keyFn, result.TotalLines, aggregateOpts)
		return reporters.Rank(stats, app.config.Report.TopN)
	}
	report.ClientRank = rank(aggregators.ByClientIP)
	report.HostRank = rank(aggregators.ByName)
	report.TypeRank = rank(aggregators.ByType)

	if err := reporters.Report(out, report); err != nil {
		return report, fmt.Errorf("failed to write report: %w", err)
	}

	app.writeMetrics(ctx, report)

	logger.Info().
		Int("total_lines", report.TotalRecords).
		Int("parse_failures", report.ParseFailures).
		Int("chunks", len(report.Chunks)).
		Msg("Run finished")
	return report, nil
}

func (app *App) storeParseFailures(ctx context.Context, runID string, failures []*models.ParseFailure) {
	if app.parseFailureStore == nil || len(failures) == 0 {
		return
	}

	logger := loggers.Ctx(ctx)
	path, err := app.parseFailureStore.Put(ctx, runID, failures)
	if err != nil {
		if errors.Is(err, stores.ErrParseFailuresAlreadyStored) {
			logger.Warn().Msg("Parse failures already stored for this run")
			return
		}
		logger.Error().Err(err).Msg("Failed to store parse failures")
		return
	}
	logger.Info().Str(loggers.FieldFilePath, path).Int("failures", len(failures)).Msg("Parse failures stored")
}

func (app *App) writeMetrics(ctx context.Context, report *models.RunReport) {
	metricRunLines.WithLabelValues("parsed").Set(float64(report.ParsedRecords))
	metricRunLines.WithLabelValues("failed").Set(float64(report.ParseFailures))
	failed := report.FailedChunks()
	metricRunChunks.WithLabelValues("sent").Set(float64(len(report.Chunks) - failed))
	metricRunChunks.WithLabelValues("failed").Set(float64(failed))
	metricRunLastCompletion.SetToCurrentTime()

	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldFilePath, path).Msg("Failed to write metrics textfile")
	}
}
