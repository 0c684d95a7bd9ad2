// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrValuesCount is the number of numbers handed to a computation.
	AttrValuesCount = "values.count"
	// AttrTokensCount is the number of tokens handed to the word counter.
	AttrTokensCount = "tokens.count"
	// AttrRowsCount is the number of conversion rows produced.
	AttrRowsCount = "rows.count"
	// AttrWordsCount is the number of distinct valid words counted.
	AttrWordsCount = "words.count"
	// AttrRejectedCount is the number of tokens rejected by the word validator.
	AttrRejectedCount = "rejected.count"
	// AttrHasMode reports whether a statistics summary found a mode.
	AttrHasMode = "stats.has_mode"
	// AttrMethod is the service method name.
	AttrMethod = "method"
)
