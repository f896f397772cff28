package configs

// Config holds all configuration for the collector CLI and the local collector.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Sink    SinkConfig    `mapstructure:"sink" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Rejects RejectsConfig `mapstructure:"rejects"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	// Collector configures the local collector stand-in (cmd/mockcollector).
	Collector CollectorConfig `mapstructure:"collector" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,loglevel"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// SinkConfig holds the remote collector endpoint configuration.
type SinkConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	BaseURL     string `mapstructure:"base_url" validate:"required,httpurl"`
	CollectorID string `mapstructure:"collector_id" validate:"required_if=Enabled true"`
	Key         string `mapstructure:"key" validate:"required_if=Enabled true"`
	Timeout     int    `mapstructure:"timeout" validate:"required,min=1"` // seconds, per request
	ChunkSize   int    `mapstructure:"chunk_size" validate:"required,min=1"`
	Concurrency int    `mapstructure:"concurrency" validate:"required,min=1,max=32"`
}

// ReportConfig holds console report configuration.
type ReportConfig struct {
	TopN int `mapstructure:"top_n" validate:"required,min=1"`
	// ScalePercent multiplies hit ratios by 100 before printing them.
	ScalePercent bool `mapstructure:"scale_percent"`
}

// RejectsConfig holds configuration of the parse failure report. Empty RootDir disables it.
type RejectsConfig struct {
	RootDir string `mapstructure:"root_dir"`
}

// MetricsConfig holds configuration of the metrics dump. Empty TextfilePath disables it.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// CollectorConfig holds the local collector server configuration.
// It serves sink.collector_id and accepts sink.key.
type CollectorConfig struct {
	Port              int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int    `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int    `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int    `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int    `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	RootDir           string `mapstructure:"root_dir" validate:"required"`                  // accepted submissions
}
