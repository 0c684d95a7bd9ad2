package report

import (
	"os"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/constants"
	"github.com/hyp3rd/textstats/internal/libs/serializer"
	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// Record is the structured form of one tool run.
type Record struct {
	Tool     string  `json:"tool"`
	Input    string  `json:"input"`
	Digest   string  `json:"digest"`   // xxhash64 of the input content
	Time     string  `json:"time"`     // RFC 3339 start time
	Seconds  float64 `json:"seconds"`  // execution time
	Rejected int     `json:"rejected"` // lines or tokens excluded from the results
	Results  any     `json:"results"`
}

// NewRecord fills the run metadata of a record.
func NewRecord(tool, input, digest string, start time.Time, elapsed time.Duration, rejected int, results any) Record {
	return Record{
		Tool:     tool,
		Input:    input,
		Digest:   digest,
		Time:     start.UTC().Format(time.RFC3339),
		Seconds:  elapsed.Seconds(),
		Rejected: rejected,
		Results:  results,
	}
}

// StatisticsResults maps a summary to plain values. The mode is nil when absent.
func StatisticsResults(summary stats.Summary) map[string]any {
	var mode any
	if summary.HasMode {
		mode = summary.Mode.Value()
	}

	return map[string]any{
		"count":    summary.Count,
		"mean":     summary.Mean.Value(),
		"median":   summary.Median.Value(),
		"mode":     mode,
		"variance": summary.Variance.Value(),
		"stddev":   summary.StdDev.Value(),
	}
}

// ConversionResults maps conversion rows to plain values.
func ConversionResults(rows []convert.Row) []map[string]any {
	results := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		results = append(results, map[string]any{
			"decimal": row.Value.Value(),
			"binary":  row.Binary,
			"hex":     row.Hex,
		})
	}

	return results
}

// WordCountResults maps a tally to plain values.
func WordCountResults(tally words.Tally) []map[string]any {
	results := make([]map[string]any, 0, len(tally.Entries))
	for _, entry := range tally.Entries {
		results = append(results, map[string]any{
			"word":  entry.Word,
			"count": entry.Count,
		})
	}

	return results
}

// RecordWriter appends encoded records to a file.
type RecordWriter struct {
	path       string
	format     string
	serializer serializer.ISerializer
}

// NewRecordWriter resolves format in the default serializer registry.
func NewRecordWriter(path, format string) (*RecordWriter, error) {
	s, err := serializer.New(format)
	if err != nil {
		return nil, err
	}

	return &RecordWriter{path: path, format: format, serializer: s}, nil
}

// Write appends record to the file. JSON records are newline delimited; binary
// formats are self-delimiting and written back to back.
func (w *RecordWriter) Write(record Record) error {
	data, err := w.serializer.Marshal(record)
	if err != nil {
		return err
	}

	if w.format == "json" {
		data = append(data, '\n')
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.ReportFileMode)
	if err != nil {
		return ewrap.Wrapf(err, "open record %s", w.path)
	}

	_, err = file.Write(data)
	if err != nil {
		_ = file.Close()

		return ewrap.Wrap(err, "write record")
	}

	return file.Close()
}
