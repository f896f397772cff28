package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/configs"
	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/shared/metrics"
	"dns-query-collector/internal/shared/svcerrors"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTimeout = 120 * time.Second

	maxDrainBytes = 64 << 10
)

//go:generate mockgen -source=collector_client.go -destination=./mocks/collector_client_mock.go -package=mocks
type SinkClient interface {
	// Send posts every chunk to the collector and returns one result per chunk,
	// in chunk order. Failures are carried by the results; nothing is retried.
	Send(ctx context.Context, chunks [][]*models.ParsedRecord) []*models.ChunkResult
}

type collectorClient struct {
	endpoint    string
	httpClient  *http.Client
	concurrency int
}

type CollectorClientOption func(*collectorClient)

// WithHTTPClient replaces the default client. Its Timeout is overwritten by the configured one.
func WithHTTPClient(httpClient *http.Client) CollectorClientOption {
	return func(c *collectorClient) {
		c.httpClient = httpClient
	}
}

// NewCollectorClient builds a client posting to
// <base_url>/collectors/<collector_id>/dns/queries?key=<key>.
func NewCollectorClient(cfg configs.SinkConfig, opts ...CollectorClientOption) (SinkClient, error) {
	endpoint, err := QueriesEndpoint(cfg.BaseURL, cfg.CollectorID, cfg.Key)
	if err != nil {
		return nil, err
	}

	c := &collectorClient{
		endpoint:    endpoint,
		httpClient:  &http.Client{},
		concurrency: max(cfg.Concurrency, 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Timeout = DefaultTimeout
	if cfg.Timeout > 0 {
		c.httpClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return c, nil
}

// QueriesEndpoint returns the submission URL of a collector.
func QueriesEndpoint(baseURL, collectorID, key string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", errInvalidEndpoint(baseURL, err)
	}

	endpoint := base.JoinPath("collectors", collectorID, "dns", "queries")
	endpoint.RawQuery = url.Values{"key": []string{key}}.Encode()
	return endpoint.String(), nil
}

func (c *collectorClient) Send(ctx context.Context, chunks [][]*models.ParsedRecord) []*models.ChunkResult {
	results := make([]*models.ChunkResult, len(chunks))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = c.sendChunk(ctx, i, chunk)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (c *collectorClient) sendChunk(ctx context.Context, index int, chunk []*models.ParsedRecord) *models.ChunkResult {
	logger := loggers.Ctx(ctx).With().
		Int(loggers.FieldChunkIndex, index).
		Int(loggers.FieldChunkSize, len(chunk)).
		Logger()

	result := &models.ChunkResult{Index: index, Records: len(chunk)}
	start := time.Now()
	result.StatusCode, result.Err = c.post(ctx, chunk)
	result.Duration = time.Since(start)

	code := metrics.ValueNoError
	if result.Err != nil {
		code = svcerrors.CodeOf(result.Err)
	}
	metricChunkSentTotal.WithLabelValues(code).Inc()
	metricChunkSendDuration.WithLabelValues(code).Observe(result.Duration.Seconds())

	if result.Err != nil {
		logger.Error().
			Err(result.Err).
			Str(loggers.FieldErrorCode, code).
			Int(loggers.FieldHttpStatus, result.StatusCode).
			Dur(loggers.FieldDuration, result.Duration).
			Msg("Chunk submission failed")
		return result
	}

	logger.Debug().
		Int(loggers.FieldHttpStatus, result.StatusCode).
		Dur(loggers.FieldDuration, result.Duration).
		Msg("Chunk submitted")
	return result
}

func (c *collectorClient) post(ctx context.Context, chunk []*models.ParsedRecord) (int, error) {
	if chunk == nil {
		chunk = []*models.ParsedRecord{}
	}
	body, err := json.Marshal(chunk)
	if err != nil {
		return 0, errMarshal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errTransport(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errTransport(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, errUnexpectedStatus(resp.StatusCode)
	}
	return resp.StatusCode, nil
}
