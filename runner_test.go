package textstats

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/textstats/internal/sentinel"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
}

type harness struct {
	dir     string
	console bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	return &harness{dir: t.TempDir()}
}

func (h *harness) input(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(h.dir, "input.txt")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (h *harness) output() string {
	return filepath.Join(h.dir, "report.txt")
}

func (h *harness) run(t *testing.T, tool Tool, path string, options ...Option) error {
	t.Helper()

	cfg := NewConfig(tool, append([]Option{WithOutputFile(h.output())}, options...)...)

	return NewRunner(cfg, WithConsole(&h.console), WithClock(fixedClock)).Run(context.Background(), path)
}

func (h *harness) report(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(h.output())
	assert.Nil(t, err)

	return string(data)
}

func TestRunner_Statistics(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, ToolStatistics, h.input(t, "10\nabc\n20\n30\n"))
	assert.Nil(t, err)

	block := strings.Join([]string{
		"Mean: 20",
		"Median: 20",
		"Mode: none",
		"Variance: 66.66666666666667",
		"Standard Deviation: 8.16496580927726",
		"Execution time: 0.00000 seconds",
		"",
		"",
	}, "\n")

	assert.Equal(t, "Line 2 is not a valid number: abc\n"+block, h.console.String())
	assert.Equal(t, block, h.report(t))
}

func TestRunner_StatisticsAppends(t *testing.T) {
	h := newHarness(t)
	path := h.input(t, "1\n1\n2\n2\n3\n")

	assert.Nil(t, h.run(t, ToolStatistics, path))
	assert.Nil(t, h.run(t, ToolStatistics, path))

	report := h.report(t)
	assert.Equal(t, 2, strings.Count(report, "Mode: 1\n"))
	assert.True(t, strings.HasSuffix(report, "seconds\n\n"))
}

func TestRunner_StatisticsInsufficientData(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
		message  string
	}{
		{name: "no valid numbers", content: "x\ny\n", expected: sentinel.ErrNoValidNumbers, message: msgNoValidNumbers},
		{name: "empty file", content: "", expected: sentinel.ErrNoValidNumbers, message: msgNoValidNumbers},
		{name: "single number", content: "42\nnope\n", expected: sentinel.ErrSingleSample, message: msgSingleSample},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newHarness(t)

			err := h.run(t, ToolStatistics, h.input(t, test.content))
			assert.True(t, errors.Is(err, test.expected))
			assert.Contains(t, h.console.String(), test.message)

			_, statErr := os.Stat(h.output())
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRunner_TerminatorOnlyFile(t *testing.T) {
	for _, content := range []string{"\n", "\r\n", "\r"} {
		h := newHarness(t)

		err := h.run(t, ToolStatistics, h.input(t, content))
		assert.True(t, errors.Is(err, sentinel.ErrNoValidNumbers))
		assert.Equal(t, "Line 1 is not a valid number: \n"+msgNoValidNumbers+"\n", h.console.String())
	}
}

func TestRunner_SeparatorWhitespace(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, ToolStatistics, h.input(t, "10\x1f\n\x1c20\n30\n"))
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(h.console.String(), "Mean: 20\n"))
}

func TestRunner_InputAccess(t *testing.T) {
	h := newHarness(t)
	missing := filepath.Join(h.dir, "missing.txt")

	err := h.run(t, ToolWordCount, missing)
	assert.True(t, errors.Is(err, sentinel.ErrInputAccess))
	assert.Equal(t, "Unable to open input file: "+missing+"\n", h.console.String())

	err = h.run(t, ToolConversion, h.input(t, "1\n\xff\n"))
	assert.True(t, errors.Is(err, sentinel.ErrInputAccess))

	_, statErr := os.Stat(h.output())
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_Conversion(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, ToolConversion, h.input(t, "255\n-5.5\nten\n0\n"))
	assert.Nil(t, err)

	report := h.report(t)
	lines := strings.Split(report, "\n")
	assert.Equal(t, "        Decimal                          Binary   Hexadecimal", lines[0])
	assert.Equal(t, "            255                        11111111            FF", lines[2])
	assert.Equal(t, "      -5.500000                          -101.1          -5.8", lines[3])
	assert.Equal(t, "              0                               0             0", lines[4])
	assert.Equal(t, "Execution time: 0.00000 seconds", lines[5])

	assert.True(t, strings.HasPrefix(h.console.String(), "Line 3 is not a valid number: ten\n"))
}

func TestRunner_ConversionNoValidNumbers(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, ToolConversion, h.input(t, "a\nb\n"))
	assert.True(t, errors.Is(err, sentinel.ErrNoValidNumbers))
	assert.Contains(t, h.console.String(), msgNoValidNumbers)
}

func TestRunner_WordCount(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, ToolWordCount, h.input(t, "The cat\nthe well-known CAT don't\n"))
	assert.Nil(t, err)

	assert.Contains(t, h.console.String(), "Invalid data: don't is not a valid word\n")

	lines := strings.Split(h.report(t), "\n")
	assert.Equal(t, "                       the           2", lines[2])
	assert.Equal(t, "                       cat           2", lines[3])
	assert.Equal(t, "                well-known           1", lines[4])
	assert.Equal(t, "Execution time: 0.00000 seconds", lines[5])
}

func TestRunner_Record(t *testing.T) {
	h := newHarness(t)
	records := filepath.Join(h.dir, "records.jsonl")

	err := h.run(t, ToolStatistics, h.input(t, "1\n2\nx\n"), WithRecordFile(records))
	assert.Nil(t, err)

	data, err := os.ReadFile(records)
	assert.Nil(t, err)

	var record map[string]any
	assert.Nil(t, json.Unmarshal(data, &record))
	assert.Equal(t, "compute-statistics", record["tool"])
	assert.Equal(t, float64(1), record["rejected"])
	assert.NotEqual(t, "", record["digest"])
}

func TestRunner_UnknownRecordFormat(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, ToolStatistics, h.input(t, "1\n2\n"),
		WithRecordFile(filepath.Join(h.dir, "records")), WithRecordFormat("xml"))
	assert.True(t, errors.Is(err, sentinel.ErrSerializerNotFound))

	_, statErr := os.Stat(h.output())
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(ToolConversion)
	assert.Equal(t, "ConvertionResults.txt", cfg.OutputFile)
	assert.Equal(t, "json", cfg.RecordFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "", cfg.RecordFile)

	cfg = NewConfig(ToolWordCount, WithOutputFile(""), WithLogLevel("debug"), WithRecordFormat("cbor"))
	assert.Equal(t, "WordCountResults.txt", cfg.OutputFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cbor", cfg.RecordFormat)

	assert.Equal(t, "StatisticsResults.txt", ToolStatistics.DefaultOutputFile())
	assert.Equal(t, "", Tool("other").DefaultOutputFile())
}
