// Package input reads ASCII text files and turns their lines into numbers.
//
// Files are materialized whole before any processing; the tools never stream.
package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/ascii"
	"github.com/hyp3rd/textstats/internal/sentinel"
	"github.com/hyp3rd/textstats/pkg/numeric"
)

// File is the materialized content of an input file.
type File struct {
	Path  string
	Lines []string
	data  []byte
}

// Digest returns the xxhash64 of the file content as a hexadecimal string.
func (f *File) Digest() string {
	return strconv.FormatUint(xxhash.Sum64(f.data), 16)
}

// Open reads the whole file at path. It fails with sentinel.ErrInputAccess when the
// file cannot be read or holds a byte outside the ASCII range.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ewrap.Wrap(sentinel.ErrInputAccess, err.Error())
	}

	for offset, b := range data {
		if b > 0x7f {
			return nil, ewrap.Wrapf(sentinel.ErrInputAccess, "%s: non-ASCII byte at offset %d", path, offset)
		}
	}

	return &File{Path: path, Lines: SplitLines(string(data)), data: data}, nil
}

// ReadLines reads the lines of the file at path. See Open.
func ReadLines(path string) ([]string, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}

	return file.Lines, nil
}

// SplitLines splits text on "\n", "\r\n" and "\r". A final line terminator does not
// start an extra empty line, and empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}

// LineError describes an input line that was excluded from the dataset.
type LineError struct {
	Line int    // 1-based line number
	Text string // the trimmed line
}

// Error implements error.
func (e LineError) Error() string {
	return fmt.Sprintf("Line %d is not a valid number: %s", e.Line, e.Text)
}

// Unwrap lets errors.Is match sentinel.ErrInvalidNumber.
func (LineError) Unwrap() error { return sentinel.ErrInvalidNumber }

// ParseNumbers parses every line with numeric.Parse. Valid numbers are returned in
// line order; every other line is reported as a LineError and skipped.
func ParseNumbers(lines []string) ([]float64, []LineError) {
	values := make([]float64, 0, len(lines))

	var rejected []LineError
	for i, line := range lines {
		value, err := numeric.Parse(line)
		if err != nil {
			rejected = append(rejected, LineError{Line: i + 1, Text: ascii.TrimSpace(line)})

			continue
		}

		values = append(values, value)
	}

	return values, rejected
}
