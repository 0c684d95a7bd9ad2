// Package convert renders signed reals in binary and hexadecimal.
//
// Conversion is done digit by digit: the integer part by repeated division by
// the base, the fractional part by repeated multiplication, capped at
// constants.MaxFractionDigits digits. Non-terminating fractions are truncated,
// not rounded.
package convert

import (
	"math"
	"math/big"
	"slices"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/constants"
	"github.com/hyp3rd/textstats/internal/sentinel"
	"github.com/hyp3rd/textstats/pkg/numeric"
)

const digits = "0123456789ABCDEF"

// Row is one line of a conversion table.
type Row struct {
	Value  numeric.Number
	Binary string
	Hex    string
}

// ToBinary returns the base 2 representation of x.
func ToBinary(x float64) string {
	return toBase(x, 2)
}

// ToHex returns the base 16 representation of x, with upper-case digits.
func ToHex(x float64) string {
	return toBase(x, 16)
}

// ToBase returns the representation of x in base, which must be within [2, 16].
func ToBase(x float64, base int) (string, error) {
	if base < 2 || base > len(digits) {
		return "", ewrap.Wrapf(sentinel.ErrInvalidBase, "%d", base)
	}

	return toBase(x, base), nil
}

// Convert builds one row per value, preserving order.
func Convert(values []float64) []Row {
	rows := make([]Row, 0, len(values))
	for _, value := range values {
		rows = append(rows, Row{
			Value:  numeric.Canonicalize(value),
			Binary: ToBinary(value),
			Hex:    ToHex(value),
		})
	}

	return rows
}

func toBase(x float64, base int) string {
	if x == 0 {
		return "0"
	}

	negative := x < 0
	magnitude := math.Abs(x)
	whole := math.Trunc(magnitude)

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}

	sb.WriteString(integerDigits(whole, base))

	if fraction := fractionDigits(magnitude-whole, base); fraction != "" {
		sb.WriteByte('.')
		sb.WriteString(fraction)
	}

	return sb.String()
}

// integerDigits converts a non-negative whole value. big.Int keeps the quotient
// loop exact for magnitudes beyond uint64.
func integerDigits(whole float64, base int) string {
	n, _ := new(big.Float).SetFloat64(whole).Int(nil)
	if n.Sign() == 0 {
		return "0"
	}

	divisor := big.NewInt(int64(base))
	remainder := new(big.Int)

	var out []byte
	for n.Sign() > 0 {
		n.QuoRem(n, divisor, remainder)
		out = append(out, digits[remainder.Int64()])
	}

	slices.Reverse(out)

	return string(out)
}

func fractionDigits(fraction float64, base int) string {
	var out []byte
	for fraction > 0 && len(out) < constants.MaxFractionDigits {
		fraction *= float64(base)
		digit := int(fraction)
		out = append(out, digits[digit])
		fraction -= float64(digit)
	}

	return string(out)
}
