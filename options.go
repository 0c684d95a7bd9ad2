package textstats

// Option is a function type that can be used to configure a `Config`.
type Option func(*Config)

// ApplyOptions applies the given options to the given config.
func ApplyOptions(cfg *Config, options ...Option) {
	for _, option := range options {
		option(cfg)
	}
}

// WithOutputFile sets the report file. An empty name keeps the current one.
func WithOutputFile(path string) Option {
	return func(cfg *Config) {
		if path != "" {
			cfg.OutputFile = path
		}
	}
}

// WithRecordFile enables structured run records appended to path.
func WithRecordFile(path string) Option {
	return func(cfg *Config) {
		cfg.RecordFile = path
	}
}

// WithRecordFormat sets the serializer name used for run records:
//   - "json" (goccy/go-json, one record per line)
//   - "msgpack"
//   - "cbor"
func WithRecordFormat(format string) Option {
	return func(cfg *Config) {
		if format != "" {
			cfg.RecordFormat = format
		}
	}
}

// WithLogLevel sets the log level name.
func WithLogLevel(level string) Option {
	return func(cfg *Config) {
		if level != "" {
			cfg.LogLevel = level
		}
	}
}
