package textstats

import (
	"github.com/hyp3rd/textstats/internal/constants"
)

// Tool identifies one of the report tools.
type Tool string

const (
	// ToolStatistics computes descriptive statistics.
	ToolStatistics Tool = "compute-statistics"
	// ToolConversion converts numbers to binary and hexadecimal.
	ToolConversion Tool = "convert-numbers"
	// ToolWordCount counts word frequencies.
	ToolWordCount Tool = "word-count"
)

// DefaultOutputFile returns the report file the tool appends to by default.
func (t Tool) DefaultOutputFile() string {
	switch t {
	case ToolStatistics:
		return constants.StatisticsOutputFile
	case ToolConversion:
		return constants.ConversionOutputFile
	case ToolWordCount:
		return constants.WordCountOutputFile
	default:
		return ""
	}
}

// Config is a struct that wraps all the configuration of a tool run.
type Config struct {
	// Tool selects the computation and the report layout.
	Tool Tool
	// OutputFile is the report file the formatted block is appended to.
	OutputFile string
	// RecordFile, when set, receives a structured record of every run.
	RecordFile string
	// RecordFormat names the serializer used for RecordFile.
	RecordFormat string
	// LogLevel is the zap level name used by the command-line front ends.
	LogLevel string
}

// NewConfig returns a new `Config` for tool with default values:
//   - `OutputFile` is the tool's default report file
//   - `RecordFile` is empty, records are disabled
//   - `RecordFormat` is "json"
//   - `LogLevel` is "warn"
//
// Each of the above can be overridden by passing options.
func NewConfig(tool Tool, options ...Option) *Config {
	cfg := &Config{
		Tool:         tool,
		OutputFile:   tool.DefaultOutputFile(),
		RecordFormat: constants.DefaultRecordFormat,
		LogLevel:     constants.DefaultLogLevel,
	}

	ApplyOptions(cfg, options...)

	return cfg
}
