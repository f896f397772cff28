package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	internalhttp "dns-query-collector/internal/http"
	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/configs"
	"dns-query-collector/internal/shared/loggers"
	"dns-query-collector/internal/shared/svcerrors"
	"dns-query-collector/internal/stores"
	sinkmocks "dns-query-collector/internal/sinks/mocks"
	storemocks "dns-query-collector/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCollectorID = "5ab55d08-ae72-4017-a41c-d9d735360288"
	testKey         = "secret-key"
)

// recordingStore keeps every submission accepted by the collector router in memory.
type recordingStore struct {
	mu          sync.Mutex
	submissions []*models.Submission
}

func (s *recordingStore) Put(_ context.Context, submission *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, submission)
	return nil
}

func (s *recordingStore) Get(context.Context, string, string) (*models.Submission, error) {
	return nil, stores.ErrSubmissionNotFound
}

func (s *recordingStore) recordCounts() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make([]int, 0, len(s.submissions))
	for _, submission := range s.submissions {
		counts = append(counts, len(submission.Records))
	}
	return counts
}

func queryLine(clientIP, name string, hit bool) string {
	flags := "-E(0)K"
	if hit {
		flags = "+E(0)K"
	}
	return fmt.Sprintf("14-Feb-2024 10:15:32.123 queries: info: client @0xdeadbeef %s#53 (%s): query: %s IN A %s (10.0.0.1)\n",
		clientIP, name, name, flags)
}

func writeLogFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queries.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "")), 0o644))
	return path
}

func testConfig(baseURL string) *configs.Config {
	return &configs.Config{
		Log: configs.LogConfig{Level: "debug"},
		Sink: configs.SinkConfig{
			Enabled:     baseURL != "",
			BaseURL:     baseURL,
			CollectorID: testCollectorID,
			Key:         testKey,
			Timeout:     5,
			ChunkSize:   500,
			Concurrency: 1,
		},
		Report: configs.ReportConfig{TopN: 5},
	}
}

func startCollector(t *testing.T, store stores.SubmissionStore) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(internalhttp.NewRouter(testCollectorID, testKey, store, loggers.Nop()))
	t.Cleanup(server.Close)
	return server
}

func TestRun_ThousandLinesAreSentInTwoChunks(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	collector := startCollector(t, store)

	lines := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, queryLine(fmt.Sprintf("10.0.%d.%d", i/250, i%250), "example.com", i%2 == 0))
	}
	path := writeLogFile(t, lines...)

	app, err := New(testConfig(collector.URL), WithLogger(loggers.Nop()))
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := app.Run(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, []int{500, 500}, store.recordCounts())
	require.Len(t, report.Chunks, 2)
	for i, chunk := range report.Chunks {
		assert.Equal(t, i, chunk.Index)
		assert.Equal(t, 500, chunk.Records)
		assert.Equal(t, 200, chunk.StatusCode)
		assert.NoError(t, chunk.Err)
	}
	assert.Equal(t, 1000, report.TotalRecords)
	assert.Contains(t, out.String(), "Chunks sent 2, failed 0\n")
	require.Len(t, report.HostRank, 1)
	assert.Equal(t, &models.GroupStat{Key: "example.com", Total: 500, AvgPercent: "0.5%"}, report.HostRank[0])
}

func TestRun_HitRatioOverEveryLine(t *testing.T) {
	t.Parallel()

	lines := []string{
		queryLine("1.1.1.1", "a.test", true),
		queryLine("1.1.1.1", "a.test", true),
		queryLine("1.1.1.1", "b.test", true),
		queryLine("1.1.1.1", "b.test", false),
	}
	for i := 0; i < 6; i++ {
		lines = append(lines, queryLine("2.2.2.2", "c.test", false))
	}
	path := writeLogFile(t, lines...)

	app, err := New(testConfig(""), WithLogger(loggers.Nop()))
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := app.Run(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, []*models.GroupStat{
		{Key: "1.1.1.1", Total: 3, AvgPercent: "0.3%"},
		{Key: "2.2.2.2", Total: 0, AvgPercent: "0.0%"},
	}, report.ClientRank)
	assert.Equal(t, "a.test", report.HostRank[0].Key)
	assert.Equal(t, "0.2%", report.HostRank[0].AvgPercent)
	assert.Equal(t, []*models.GroupStat{{Key: "A", Total: 3, AvgPercent: "0.3%"}}, report.TypeRank)

	assert.False(t, report.SinkEnabled)
	assert.Empty(t, report.Chunks)
	assert.True(t, strings.HasPrefix(out.String(), "Total records 10\nParse errors 0\nChunks not sent (sink disabled)\n\nClient IPs Rank\n"))
	assert.Contains(t, out.String(), "1.1.1.1"+strings.Repeat(" ", 38)+" 3      0.3%  \n")
}

func TestRun_MalformedLinesAreReportedAndStored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failureStore := storemocks.NewMockParseFailureStore(ctrl)
	failureStore.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, runID string, failures []*models.ParseFailure) (string, error) {
			assert.Len(t, runID, 26)
			require.Len(t, failures, 2)
			assert.Equal(t, 2, failures[0].LineNumber)
			assert.Equal(t, "PRS_1000", failures[0].Code)
			assert.Equal(t, 4, failures[1].LineNumber)
			return "/tmp/parse-failures/" + runID + ".json", nil
		})

	path := writeLogFile(t,
		queryLine("1.1.1.1", "a.test", true),
		"garbage\n",
		queryLine("1.1.1.1", "a.test", true),
		"14-Feb-2024 10:15 not a query\n",
	)

	app, err := New(testConfig(""), WithLogger(loggers.Nop()), WithParseFailureStore(failureStore))
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := app.Run(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalRecords)
	assert.Equal(t, 2, report.ParsedRecords)
	assert.Equal(t, 2, report.ParseFailures)
	assert.Equal(t, "0.5%", report.ClientRank[0].AvgPercent)
	assert.Contains(t, out.String(), "Parse errors 2\n")
}

func TestRun_RejectsWrittenToRootDir(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.Rejects.RootDir = t.TempDir()
	path := writeLogFile(t, "garbage\n")

	app, err := New(cfg, WithLogger(loggers.Nop()))
	require.NoError(t, err)

	report, err := app.Run(context.Background(), path, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Rejects.RootDir, "parse-failures", report.RunID+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"line":"garbage"`)
}

func TestRun_SinkFailuresAreNotFatal(t *testing.T) {
	t.Parallel()

	collector := startCollector(t, &recordingStore{})

	cfg := testConfig(collector.URL)
	cfg.Sink.Key = "wrong-key"
	cfg.Sink.ChunkSize = 2
	cfg.Sink.Concurrency = 2
	path := writeLogFile(t,
		queryLine("1.1.1.1", "a.test", true),
		queryLine("1.1.1.1", "a.test", true),
		queryLine("1.1.1.1", "a.test", true),
	)

	app, err := New(cfg, WithLogger(loggers.Nop()))
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := app.Run(context.Background(), path, &out)
	require.NoError(t, err)

	require.Len(t, report.Chunks, 2)
	assert.Equal(t, 2, report.FailedChunks())
	assert.Equal(t, 401, report.Chunks[0].StatusCode)
	assert.Equal(t, "SNK_1000", svcerrors.CodeOf(report.Chunks[1].Err))
	assert.Equal(t, 1, report.Chunks[1].Records)
	assert.Contains(t, out.String(), "Chunks sent 0, failed 2\n")
	assert.Equal(t, 3, report.ClientRank[0].Total)
}

func TestRun_PartitionsParsedRecordsForSink(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sinkClient := sinkmocks.NewMockSinkClient(ctrl)
	sinkClient.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chunks [][]*models.ParsedRecord) []*models.ChunkResult {
			require.Len(t, chunks, 3)
			assert.Len(t, chunks[0], 2)
			assert.Len(t, chunks[2], 1)
			assert.Equal(t, "10.0.0.1", chunks[0][0].ClientIP)
			assert.Equal(t, "10.0.0.5", chunks[2][0].ClientIP)
			results := make([]*models.ChunkResult, 0, len(chunks))
			for i, chunk := range chunks {
				results = append(results, &models.ChunkResult{Index: i, Records: len(chunk), StatusCode: 200})
			}
			return results
		})

	cfg := testConfig("https://collector.invalid")
	cfg.Sink.ChunkSize = 2
	path := writeLogFile(t,
		queryLine("10.0.0.1", "a.test", true),
		queryLine("10.0.0.2", "a.test", true),
		"not a query\n",
		queryLine("10.0.0.3", "a.test", true),
		queryLine("10.0.0.4", "a.test", true),
		queryLine("10.0.0.5", "a.test", true),
	)

	app, err := New(cfg, WithLogger(loggers.Nop()), WithSinkClient(sinkClient))
	require.NoError(t, err)

	report, err := app.Run(context.Background(), path, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Len(t, report.Chunks, 3)
	assert.Equal(t, 0, report.FailedChunks())
}

func TestRun_MissingFileIsFatal(t *testing.T) {
	t.Parallel()

	app, err := New(testConfig(""), WithLogger(loggers.Nop()))
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := app.Run(context.Background(), filepath.Join(t.TempDir(), "missing.log"), &out)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Equal(t, "ING_9000", svcerrors.CodeOf(err))
	assert.Empty(t, out.String())
}

func TestRun_EmptyFile(t *testing.T) {
	t.Parallel()

	store := &recordingStore{}
	collector := startCollector(t, store)
	path := writeLogFile(t)

	app, err := New(testConfig(collector.URL), WithLogger(loggers.Nop()))
	require.NoError(t, err)

	var out bytes.Buffer
	report, err := app.Run(context.Background(), path, &out)
	require.NoError(t, err)

	assert.Empty(t, store.recordCounts(), "no chunk means no request")
	assert.Empty(t, report.Chunks)
	assert.Equal(t,
		"Total records 0\nParse errors 0\nChunks sent 0, failed 0\n\nClient IPs Rank\n\nHost Rank\n\nQuery Type Rank\n",
		out.String())
}

func TestRun_WritesMetricsTextfile(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.Metrics.TextfilePath = filepath.Join(t.TempDir(), "dnsqc.prom")
	path := writeLogFile(t, queryLine("1.1.1.1", "a.test", true))

	app, err := New(cfg, WithLogger(loggers.Nop()))
	require.NoError(t, err)

	_, err = app.Run(context.Background(), path, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dns_query_collector_ingestion_line_parsed_total")
	assert.Contains(t, string(data), "dns_query_collector_run_last_completion_timestamp_seconds")
	assert.Contains(t, string(data), `dns_query_collector_run_chunks{outcome="sent"}`)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.Log.Level = "loud"

	app, err := New(cfg)
	assert.Nil(t, app)
	assert.ErrorContains(t, err, "failed to initialize logger")
}

func TestNew_OptionalComponentsDisabled(t *testing.T) {
	t.Parallel()

	app, err := New(testConfig(""), WithLogger(loggers.Nop()))
	require.NoError(t, err)
	assert.Nil(t, app.sinkClient)
	assert.Nil(t, app.parseFailureStore)
}
