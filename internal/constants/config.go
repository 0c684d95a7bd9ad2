// Package constants defines default configuration values for the textstats tools.
// It provides the report file names, the table layout widths and the conversion
// precision shared by the command-line front ends and the report sink.
package constants

const (
	// StatisticsOutputFile is the default report file of the compute-statistics tool.
	StatisticsOutputFile = "StatisticsResults.txt"
	// ConversionOutputFile is the default report file of the convert-numbers tool.
	// The spelling matches the historical report name so existing reports keep growing.
	ConversionOutputFile = "ConvertionResults.txt"
	// WordCountOutputFile is the default report file of the word-count tool.
	WordCountOutputFile = "WordCountResults.txt"

	// MaxFractionDigits is the number of fractional digits produced by the base converter
	// for non-terminating fractions, whatever the base.
	MaxFractionDigits = 10

	// RealFractionDigits is the number of fractional digits of a real in the conversion table.
	RealFractionDigits = 6

	// DecimalColumnWidth is the width of the decimal column of the conversion table.
	DecimalColumnWidth = 15
	// BinaryColumnWidth is the width of the binary column of the conversion table.
	BinaryColumnWidth = 30
	// HexColumnWidth is the width of the hexadecimal column of the conversion table.
	HexColumnWidth = 12

	// WordColumnWidth is the width of the word column of the word-count table.
	WordColumnWidth = 26
	// FrequencyColumnWidth is the width of the frequency column of the word-count table.
	FrequencyColumnWidth = 10

	// DefaultRecordFormat is the serializer used for run records when none is configured.
	DefaultRecordFormat = "json"
	// DefaultLogLevel is the zap level used when none is configured.
	DefaultLogLevel = "warn"
	// EnvPrefix is the prefix of the environment variables resolved by viper.
	EnvPrefix = "TEXTSTATS"

	// ReportFileMode is the permission used when a report or record file is created.
	ReportFileMode = 0o644
)
