package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/ascii"
	"github.com/hyp3rd/textstats/internal/sentinel"
)

// Parse trims surrounding whitespace from text and parses it as a finite real number.
// It fails with sentinel.ErrInvalidNumber when the text is empty, is not a decimal
// literal, or denotes NaN or an infinity.
//
// Decimal literals take an optional sign, digits with an optional fraction and
// exponent, and may separate digits with single underscores. Hexadecimal literals
// are not accepted.
func Parse(text string) (float64, error) {
	trimmed := ascii.TrimSpace(text)
	if trimmed == "" {
		return 0, ewrap.Wrap(sentinel.ErrInvalidNumber, "empty line")
	}

	literal, ok := decimalLiteral(trimmed)
	if !ok {
		return 0, ewrap.Wrapf(sentinel.ErrInvalidNumber, "%q", trimmed)
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, ewrap.Wrapf(sentinel.ErrInvalidNumber, "%q", trimmed)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ewrap.Wrapf(sentinel.ErrInvalidNumber, "%q is not finite", trimmed)
	}

	return v, nil
}

// decimalLiteral rejects hexadecimal literals and strips digit separators, which
// are only valid between two digits.
func decimalLiteral(s string) (string, bool) {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", false
	}

	if !strings.Contains(s, "_") {
		return s, true
	}

	for i := range len(s) {
		if s[i] != '_' {
			continue
		}

		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}

	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
