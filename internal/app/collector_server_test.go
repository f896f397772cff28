package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dns-query-collector/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectorConfig(t *testing.T) *configs.Config {
	t.Helper()
	cfg := testConfig("")
	cfg.Log.Level = "error"
	cfg.Collector = configs.CollectorConfig{
		Port:              8080,
		ReadHeaderTimeout: 5,
		ReadTimeout:       30,
		WriteTimeout:      30,
		IdleTimeout:       60,
		RootDir:           t.TempDir(),
	}
	return cfg
}

func TestCollectorServer_StoresSubmissions(t *testing.T) {
	t.Parallel()

	cfg := collectorConfig(t)
	server, err := NewCollectorServer(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	base := ts.URL + "/collectors/" + testCollectorID + "/dns/queries"
	resp, err := http.Post(base+"?key="+testKey, "application/json", strings.NewReader(`[{"client_ip":"10.0.0.5","hit":true}]`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		SubmissionID string `json:"submissionId"`
		Accepted     int    `json:"accepted"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Accepted)

	got, err := http.Get(base + "/" + body.SubmissionID + "?key=" + testKey)
	require.NoError(t, err)
	defer got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)
}

func TestCollectorServer_InvalidRootDir(t *testing.T) {
	t.Parallel()

	cfg := collectorConfig(t)
	cfg.Collector.RootDir = ""

	server, err := NewCollectorServer(cfg)
	assert.Nil(t, server)
	assert.ErrorContains(t, err, "failed to initialize storage")
}

func TestCollectorServer_RequiresCredentials(t *testing.T) {
	t.Parallel()

	cfg := collectorConfig(t)
	cfg.Sink.Key = ""

	server, err := NewCollectorServer(cfg)
	assert.Nil(t, server)
	assert.ErrorContains(t, err, "sink.key")
}

func TestCollectorServer_ShutdownBeforeStart(t *testing.T) {
	t.Parallel()

	server, err := NewCollectorServer(collectorConfig(t))
	require.NoError(t, err)

	assert.NoError(t, server.Shutdown(context.Background()))
}
