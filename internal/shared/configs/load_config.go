package configs

import (
	"fmt"
	"strings"

	"dns-query-collector/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DNSQC_SINK_KEY overrides sink.key.
const EnvPrefix = "DNSQC"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setDefaults registers the built-in values of every key.
// Registering every key also lets AutomaticEnv override keys absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("sink.enabled", true)
	v.SetDefault("sink.base_url", "https://api.lumu.io")
	v.SetDefault("sink.collector_id", "")
	v.SetDefault("sink.key", "")
	v.SetDefault("sink.timeout", 120)
	v.SetDefault("sink.chunk_size", 500)
	v.SetDefault("sink.concurrency", 1)
	v.SetDefault("report.top_n", 5)
	v.SetDefault("report.scale_percent", false)
	v.SetDefault("rejects.root_dir", "")
	v.SetDefault("metrics.textfile_path", "")
	v.SetDefault("collector.port", 8080)
	v.SetDefault("collector.read_header_timeout", 5)
	v.SetDefault("collector.read_timeout", 30)
	v.SetDefault("collector.write_timeout", 30)
	v.SetDefault("collector.idle_timeout", 60)
	v.SetDefault("collector.root_dir", "./data/collector")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "sink.chunksize")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Sink.ChunkSize" -> "sink.chunksize")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "loglevel":
		msg = fmt.Sprintf("%s (unknown log level)", field)
	case "httpurl":
		msg = fmt.Sprintf("%s (http or https url)", field)
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
