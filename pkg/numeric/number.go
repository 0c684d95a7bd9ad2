// Package numeric provides the numeric value model shared by the statistics and
// conversion tools: a parser producing finite reals out of text lines, and a
// canonical tagged representation that distinguishes whole values from reals.
package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind tags the representation of a canonical Number.
type Kind uint8

const (
	// Integer marks a value with no fractional part.
	Integer Kind = iota
	// Real marks a value with a non-zero fractional part.
	Real
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	default:
		return "unknown"
	}
}

// int64 bounds as exactly representable float64 values.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0 // exclusive
)

// Number is a canonical numeric value, either an Integer or a Real.
// The zero value is the integer 0. Numbers are produced by Canonicalize.
type Number struct {
	kind  Kind
	value float64
}

// Canonicalize maps v to an Integer when it has no fractional part and keeps it
// as a Real otherwise. Detection is exact, 3.0 becomes 3 while 3.5 stays 3.5.
// Negative zero canonicalizes to the integer 0.
func Canonicalize(v float64) Number {
	if IsWhole(v) {
		if v == 0 {
			v = 0
		}

		return Number{kind: Integer, value: v}
	}

	return Number{kind: Real, value: v}
}

// IsWhole reports whether v is finite and has a zero fractional part.
func IsWhole(v float64) bool {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}

	return math.Trunc(v) == v
}

// Kind returns the representation tag of n.
func (n Number) Kind() Kind { return n.kind }

// IsInteger reports whether n is an Integer.
func (n Number) IsInteger() bool { return n.kind == Integer }

// Float64 returns the numeric value of n.
func (n Number) Float64() float64 { return n.value }

// Int64 returns n as an int64. The boolean is false when n is a Real or does not fit.
func (n Number) Int64() (int64, bool) {
	if n.kind != Integer || n.value < minInt64Float || n.value >= maxInt64Float {
		return 0, false
	}

	return int64(n.value), true
}

// BigInt returns the exact integer value of n, or nil when n is a Real.
func (n Number) BigInt() *big.Int {
	if n.kind != Integer {
		return nil
	}

	i, _ := new(big.Float).SetFloat64(n.value).Int(nil)

	return i
}

// Value returns n as an int64 when it is an Integer that fits, and as a float64 otherwise.
// It is meant for encoders that need a plain Go value.
func (n Number) Value() any {
	if i, ok := n.Int64(); ok {
		return i
	}

	return n.value
}

// String formats n. Integers print all their decimal digits; reals print the
// shortest decimal that round-trips, in exponent form when the decimal exponent
// is below -4 or at least 16.
func (n Number) String() string {
	if n.kind == Integer {
		if i, ok := n.Int64(); ok {
			return strconv.FormatInt(i, 10)
		}

		return n.BigInt().String()
	}

	return formatReal(n.value)
}

func formatReal(v float64) string {
	sci := strconv.FormatFloat(v, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
