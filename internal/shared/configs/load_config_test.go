package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: debug
sink:
  enabled: true
  base_url: https://collector.example.com
  collector_id: 5ab55d08-ae72-4017-a41c-d9d735360288
  key: secret-key
  timeout: 30
  chunk_size: 250
  concurrency: 4
report:
  top_n: 10
  scale_percent: true
rejects:
  root_dir: ./rejects
metrics:
  textfile_path: ./dnsqc.prom
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Sink.Enabled)
	assert.Equal(t, "https://collector.example.com", cfg.Sink.BaseURL)
	assert.Equal(t, "5ab55d08-ae72-4017-a41c-d9d735360288", cfg.Sink.CollectorID)
	assert.Equal(t, "secret-key", cfg.Sink.Key)
	assert.Equal(t, 30, cfg.Sink.Timeout)
	assert.Equal(t, 250, cfg.Sink.ChunkSize)
	assert.Equal(t, 4, cfg.Sink.Concurrency)
	assert.Equal(t, 10, cfg.Report.TopN)
	assert.True(t, cfg.Report.ScalePercent)
	assert.Equal(t, "./rejects", cfg.Rejects.RootDir)
	assert.Equal(t, "./dnsqc.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeTempConfig(t, `sink:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Sink.Enabled)
	assert.Equal(t, "https://api.lumu.io", cfg.Sink.BaseURL)
	assert.Equal(t, 120, cfg.Sink.Timeout)
	assert.Equal(t, 500, cfg.Sink.ChunkSize)
	assert.Equal(t, 1, cfg.Sink.Concurrency)
	assert.Equal(t, 5, cfg.Report.TopN)
	assert.False(t, cfg.Report.ScalePercent)
	assert.Empty(t, cfg.Rejects.RootDir)
	assert.Equal(t, 8080, cfg.Collector.Port)
	assert.Equal(t, 5, cfg.Collector.ReadHeaderTimeout)
	assert.Equal(t, "./data/collector", cfg.Collector.RootDir)
}

func TestLoadConfig_EnvOverridesKey(t *testing.T) {
	t.Setenv("DNSQC_SINK_KEY", "from-env")
	t.Setenv("DNSQC_SINK_COLLECTOR_ID", "collector-from-env")

	path := writeTempConfig(t, `sink:
  enabled: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Sink.Key)
	assert.Equal(t, "collector-from-env", cfg.Sink.CollectorID)
}

func TestLoadConfig_MissingKeyWhenSinkEnabled(t *testing.T) {
	path := writeTempConfig(t, `sink:
  enabled: true
  collector_id: abc
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "sink.key")
}

func TestLoadConfig_InvalidChunkSize(t *testing.T) {
	path := writeTempConfig(t, `sink:
  enabled: false
  chunk_size: -1
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "sink.chunksize")
}

func TestLoadConfig_ConcurrencyOutOfRange(t *testing.T) {
	path := writeTempConfig(t, `sink:
  enabled: false
  concurrency: 64
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sink.concurrency (max=32)")
}

func TestLoadConfig_InvalidBaseURL(t *testing.T) {
	path := writeTempConfig(t, `sink:
  enabled: false
  base_url: not a url
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sink.baseurl (http or https url)")
}

func TestLoadConfig_UnknownLogLevel(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: verbose
sink:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log.level (unknown log level)")
}

func TestLoadConfig_UnknownLogFormat(t *testing.T) {
	path := writeTempConfig(t, `log:
  format: xml
sink:
  enabled: false
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log.format (oneof=json console)")
}

func TestLoadConfig_CollectorPortOutOfRange(t *testing.T) {
	path := writeTempConfig(t, `sink:
  enabled: false
collector:
  port: 70000
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "collector.port (max=65535)")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
