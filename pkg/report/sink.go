// Package report formats tool results and appends them to report files.
//
// Every line written to a report is echoed to the console. Report files are
// opened in append mode, created when absent, and closed within the same call.
package report

import (
	"bufio"
	"io"
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/constants"
)

// Sink writes report lines to a file and to the console.
type Sink struct {
	console io.Writer
	file    *os.File
	buf     *bufio.Writer
}

// Open opens path for appending. A nil console discards the echo.
func Open(path string, console io.Writer) (*Sink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.ReportFileMode)
	if err != nil {
		return nil, ewrap.Wrapf(err, "open report %s", path)
	}

	if console == nil {
		console = io.Discard
	}

	return &Sink{console: console, file: file, buf: bufio.NewWriter(file)}, nil
}

// Println writes line followed by a newline to the console and the report.
func (s *Sink) Println(line string) error {
	_, err := io.WriteString(s.console, line+"\n")
	if err != nil {
		return ewrap.Wrap(err, "write console")
	}

	_, err = s.buf.WriteString(line + "\n")
	if err != nil {
		return ewrap.Wrap(err, "write report")
	}

	return nil
}

// Close flushes and closes the report file.
func (s *Sink) Close() error {
	flushErr := s.buf.Flush()
	closeErr := s.file.Close()

	if flushErr != nil {
		return ewrap.Wrap(flushErr, "flush report")
	}

	if closeErr != nil {
		return ewrap.Wrap(closeErr, "close report")
	}

	return nil
}

// Append writes lines to the report at path and the console in one scoped call.
func Append(path string, console io.Writer, lines []string) error {
	sink, err := Open(path, console)
	if err != nil {
		return err
	}

	for _, line := range lines {
		err = sink.Println(line)
		if err != nil {
			_ = sink.Close()

			return err
		}
	}

	return sink.Close()
}
