// Package sentinel provides standardized error definitions for the textstats tools.
// This package centralizes all error types used across the parsers, the statistics
// engine, the base converter and the command-line front ends, so that every
// component reports failures the same way.
//
// The errors defined here cover:
// - Usage and input access failures (wrong argument count, unreadable or non-ASCII files)
// - Per-line validation failures (numbers and words), which are recoverable
// - Insufficient data for the requested computation, which is fatal
// - Component lookup failures (serializers, bases)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities. Callers match them with errors.Is.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrUsage is returned when a tool is invoked with the wrong number of arguments.
	ErrUsage = ewrap.New("invalid usage")

	// ErrInputAccess is returned when the input file is missing, unreadable, or not ASCII encoded.
	ErrInputAccess = ewrap.New("unable to open input file")

	// ErrInvalidNumber is returned when a line does not hold a finite real number.
	ErrInvalidNumber = ewrap.New("invalid number")

	// ErrInvalidWord is returned when a token is not an alphanumeric, optionally hyphenated, word.
	ErrInvalidWord = ewrap.New("invalid word")

	// ErrNoValidNumbers is returned when no line of the input holds a valid number.
	ErrNoValidNumbers = ewrap.New("no valid numbers found")

	// ErrSingleSample is returned when statistics are requested over exactly one number.
	// Variance and standard deviation are undefined for a single sample.
	ErrSingleSample = ewrap.New("variance and standard deviation require at least two numbers")

	// ErrInvalidBase is returned when a conversion base outside [2, 16] is requested.
	ErrInvalidBase = ewrap.New("invalid base")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")
)
