package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hyp3rd/textstats/internal/constants"
	"github.com/hyp3rd/textstats/pkg/convert"
	"github.com/hyp3rd/textstats/pkg/numeric"
	"github.com/hyp3rd/textstats/pkg/stats"
	"github.com/hyp3rd/textstats/pkg/words"
)

// NoMode is printed in place of the mode when every value is unique.
const NoMode = "none"

// ElapsedLine is the closing line of every block.
func ElapsedLine(elapsed time.Duration) string {
	return fmt.Sprintf("Execution time: %.5f seconds", elapsed.Seconds())
}

// StatisticsBlock lays out a statistics summary.
func StatisticsBlock(summary stats.Summary, elapsed time.Duration) []string {
	mode := NoMode
	if summary.HasMode {
		mode = summary.Mode.String()
	}

	return []string{
		"Mean: " + summary.Mean.String(),
		"Median: " + summary.Median.String(),
		"Mode: " + mode,
		"Variance: " + summary.Variance.String(),
		"Standard Deviation: " + summary.StdDev.String(),
		ElapsedLine(elapsed),
		"",
	}
}

// ConversionBlock lays out a conversion table, one row per converted number.
func ConversionBlock(rows []convert.Row, elapsed time.Duration) []string {
	lines := make([]string, 0, len(rows)+4)
	lines = append(lines,
		conversionLine("Decimal", "Binary", "Hexadecimal"),
		conversionLine(
			strings.Repeat("-", constants.DecimalColumnWidth),
			strings.Repeat("-", constants.BinaryColumnWidth),
			strings.Repeat("-", constants.HexColumnWidth)),
	)

	for _, row := range rows {
		lines = append(lines, conversionLine(FormatDecimal(row.Value), row.Binary, row.Hex))
	}

	return append(lines, ElapsedLine(elapsed), "")
}

// WordCountBlock lays out a word frequency table in first-seen order.
func WordCountBlock(tally words.Tally, elapsed time.Duration) []string {
	lines := make([]string, 0, len(tally.Entries)+4)
	lines = append(lines,
		wordCountLine("Word", "Frequency"),
		wordCountLine(
			strings.Repeat("-", constants.WordColumnWidth),
			strings.Repeat("-", constants.FrequencyColumnWidth)),
	)

	for _, entry := range tally.Entries {
		lines = append(lines, wordCountLine(entry.Word, fmt.Sprint(entry.Count)))
	}

	return append(lines, ElapsedLine(elapsed), "")
}

// FormatDecimal renders n with thousands separators: integers as 1,234 and
// reals with six fractional digits, as 1,234.500000.
func FormatDecimal(n numeric.Number) string {
	if n.IsInteger() {
		return humanize.BigComma(n.BigInt())
	}

	return formatReal(n.Float64())
}

// formatReal rounds v to six fractional digits from its exact binary value and
// groups the integer digits. Reals are below 2^52 in magnitude, so the integer
// part fits an int64.
func formatReal(v float64) string {
	digits := strconv.FormatFloat(math.Abs(v), 'f', constants.RealFractionDigits, 64)
	whole, fraction, _ := strings.Cut(digits, ".")

	integer, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return digits
	}

	grouped := humanize.Comma(integer) + "." + fraction
	if math.Signbit(v) {
		return "-" + grouped
	}

	return grouped
}

func conversionLine(decimal, binary, hex string) string {
	return fmt.Sprintf("%*s  %*s  %*s",
		constants.DecimalColumnWidth, decimal,
		constants.BinaryColumnWidth, binary,
		constants.HexColumnWidth, hex)
}

func wordCountLine(word, frequency string) string {
	return fmt.Sprintf("%*s  %*s",
		constants.WordColumnWidth, word,
		constants.FrequencyColumnWidth, frequency)
}
