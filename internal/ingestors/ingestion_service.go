package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"dns-query-collector/internal/models"
	"dns-query-collector/internal/parsers"
	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/shared/metrics"
	"dns-query-collector/internal/shared/svcerrors"
)

// ctxCheckInterval is how many lines are parsed between two context checks.
const ctxCheckInterval = 1024

// IngestResult holds the outcome of reading one log input.
type IngestResult struct {
	TotalLines int // lines read, malformed ones included
	Records    []*models.ParsedRecord
	Failures   []*models.ParseFailure
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestFile reads the log file at path and parses each of its lines.
	IngestFile(ctx context.Context, path string) (*IngestResult, error)
	// Ingest reads r to the end and parses each of its lines.
	// A malformed line becomes a ParseFailure; only I/O failures are returned as errors.
	Ingest(ctx context.Context, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	parser parsers.RecordParser
}

func NewIngestionService(parser parsers.RecordParser) IngestionService {
	return &ingestionService{parser: parser}
}

func (s *ingestionService) IngestFile(ctx context.Context, path string) (*IngestResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errOpenFailed(path, err)
	}
	defer file.Close()

	logger := loggers.Ctx(ctx).With().Str(loggers.FieldFilePath, path).Logger()
	result, err := s.Ingest(logger.WithContext(ctx), file)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("total_lines", result.TotalLines).
		Int("records", len(result.Records)).
		Int("failures", len(result.Failures)).
		Msg("Log file ingested")
	return result, nil
}

func (s *ingestionService) Ingest(ctx context.Context, r io.Reader) (*IngestResult, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, errReadFailed(err)
	}

	logger := loggers.Ctx(ctx)
	result := &IngestResult{
		TotalLines: len(lines),
		Records:    make([]*models.ParsedRecord, 0, len(lines)),
	}
	for i, line := range lines {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := s.parser.Parse(line)
		if err != nil {
			failure := newParseFailure(i+1, line, err)
			metricLineParsedTotal.WithLabelValues(failure.Code).Inc()
			logger.Debug().
				Int(loggers.FieldLineNumber, failure.LineNumber).
				Str(loggers.FieldErrorCode, failure.Code).
				Msg(failure.Message)
			result.Failures = append(result.Failures, failure)
			continue
		}

		metricLineParsedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// readLines returns every line of r with its trailing newline.
// A last line without newline is returned as is; an empty input yields no lines.
func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func newParseFailure(lineNumber int, line string, err error) *models.ParseFailure {
	failure := &models.ParseFailure{
		LineNumber: lineNumber,
		Line:       strings.TrimSuffix(line, "\n"),
		Code:       svcerrors.CodeOf(err),
		Message:    err.Error(),
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		failure.Message = svcErr.Message
	}
	return failure
}
