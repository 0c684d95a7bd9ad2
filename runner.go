package textstats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hyp3rd/ewrap"
	"go.uber.org/zap"

	"github.com/hyp3rd/textstats/internal/sentinel"
	"github.com/hyp3rd/textstats/pkg/input"
	"github.com/hyp3rd/textstats/pkg/report"
	"github.com/hyp3rd/textstats/pkg/words"
)

// Console messages of the fatal errors.
const (
	msgInputAccess    = "Unable to open input file: %s"
	msgNoValidNumbers = "Error: No valid numbers found in the input file."
	msgSingleSample   = "Only one number provided. Variance and standard deviation cannot be calculated."
	msgInvalidWord    = "Invalid data: %s is not a valid word"
)

// Runner drives a single run of a tool: read, validate, compute, report.
type Runner struct {
	cfg     *Config
	svc     Service
	console io.Writer
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithService sets the service computing the results, usually a decorated Analyzer.
func WithService(svc Service) RunnerOption {
	return func(r *Runner) { r.svc = svc }
}

// WithConsole sets the writer receiving diagnostics and the report echo.
func WithConsole(w io.Writer) RunnerOption {
	return func(r *Runner) { r.console = w }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.SugaredLogger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithClock sets the time source used to measure the execution time.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// NewRunner returns a Runner for cfg. By default it computes with a bare Analyzer,
// prints to os.Stdout and does not log.
func NewRunner(cfg *Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:     cfg,
		svc:     NewAnalyzer(),
		console: os.Stdout,
		logger:  zap.NewNop().Sugar(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// outcome is what a tool hands back to the common reporting path.
type outcome struct {
	block    func(elapsed time.Duration) []string
	rejected int
	results  any
}

// Run processes the input file at path and appends the report block.
// Rejected lines and tokens are printed and skipped. Fatal errors are printed
// and returned before anything is written to the report.
func (r *Runner) Run(ctx context.Context, path string) error {
	start := r.now()

	var records *report.RecordWriter
	if r.cfg.RecordFile != "" {
		var err error

		records, err = report.NewRecordWriter(r.cfg.RecordFile, r.cfg.RecordFormat)
		if err != nil {
			r.println(fmt.Sprintf("Unknown record format: %s", r.cfg.RecordFormat))

			return err
		}
	}

	file, err := input.Open(path)
	if err != nil {
		r.logger.Debugw("input rejected", "path", path, "error", err)
		r.println(fmt.Sprintf(msgInputAccess, path))

		return err
	}

	r.logger.Debugw("input loaded", "path", path, "lines", len(file.Lines))

	var out outcome

	switch r.cfg.Tool {
	case ToolStatistics:
		out, err = r.statistics(ctx, file)
	case ToolConversion:
		out, err = r.conversion(ctx, file)
	case ToolWordCount:
		out, err = r.wordCount(ctx, file)
	default:
		err = ewrap.Newf("unknown tool %q", r.cfg.Tool)
	}

	if err != nil {
		r.fatal(err)

		return err
	}

	elapsed := r.now().Sub(start)

	err = report.Append(r.cfg.OutputFile, r.console, out.block(elapsed))
	if err != nil {
		return err
	}

	if records == nil {
		return nil
	}

	return records.Write(report.NewRecord(
		string(r.cfg.Tool), path, file.Digest(), start, elapsed, out.rejected, out.results))
}

func (r *Runner) statistics(ctx context.Context, file *input.File) (outcome, error) {
	values, rejected := r.numbers(file)

	summary, err := r.svc.Describe(ctx, values)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		block:    func(elapsed time.Duration) []string { return report.StatisticsBlock(summary, elapsed) },
		rejected: rejected,
		results:  report.StatisticsResults(summary),
	}, nil
}

func (r *Runner) conversion(ctx context.Context, file *input.File) (outcome, error) {
	values, rejected := r.numbers(file)

	rows, err := r.svc.Convert(ctx, values)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		block:    func(elapsed time.Duration) []string { return report.ConversionBlock(rows, elapsed) },
		rejected: rejected,
		results:  report.ConversionResults(rows),
	}, nil
}

func (r *Runner) wordCount(ctx context.Context, file *input.File) (outcome, error) {
	var tokens []string
	for _, line := range file.Lines {
		tokens = append(tokens, words.Tokenize(line)...)
	}

	tally, err := r.svc.CountWords(ctx, tokens)
	if err != nil {
		return outcome{}, err
	}

	for _, token := range tally.Rejected {
		r.println(fmt.Sprintf(msgInvalidWord, token))
	}

	return outcome{
		block:    func(elapsed time.Duration) []string { return report.WordCountBlock(tally, elapsed) },
		rejected: len(tally.Rejected),
		results:  report.WordCountResults(tally),
	}, nil
}

// numbers parses the file lines, printing one diagnostic per rejected line.
func (r *Runner) numbers(file *input.File) ([]float64, int) {
	values, rejected := input.ParseNumbers(file.Lines)
	for _, lineErr := range rejected {
		r.logger.Debugw("line rejected", "line", lineErr.Line, "text", lineErr.Text)
		r.println(lineErr.Error())
	}

	return values, len(rejected)
}

func (r *Runner) fatal(err error) {
	r.logger.Debugw("run aborted", "tool", r.cfg.Tool, "error", err)

	switch {
	case errors.Is(err, sentinel.ErrNoValidNumbers):
		r.println(msgNoValidNumbers)
	case errors.Is(err, sentinel.ErrSingleSample):
		r.println(msgSingleSample)
	default:
		r.println(err.Error())
	}
}

func (r *Runner) println(line string) {
	_, _ = io.WriteString(r.console, line+"\n")
}
