package numeric

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/textstats/internal/sentinel"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		valid    bool
	}{
		{name: "integer", text: "10", expected: 10, valid: true},
		{name: "surrounding whitespace", text: "  -2.5\t\n", expected: -2.5, valid: true},
		{name: "exponent", text: "1e3", expected: 1000, valid: true},
		{name: "leading dot", text: ".5", expected: 0.5, valid: true},
		{name: "trailing dot", text: "7.", expected: 7, valid: true},
		{name: "explicit plus", text: "+3", expected: 3, valid: true},
		{name: "digit separators", text: "1_000.5", expected: 1000.5, valid: true},
		{name: "underflow to zero", text: "1e-400", expected: 0, valid: true},
		{name: "unit separator", text: "10\x1f", expected: 10, valid: true},
		{name: "file separator", text: "\x1c-4\x1d", expected: -4, valid: true},
		{name: "empty line", text: "", valid: false},
		{name: "blank line", text: "   ", valid: false},
		{name: "word", text: "abc", valid: false},
		{name: "nan", text: "nan", valid: false},
		{name: "infinity", text: "-inf", valid: false},
		{name: "spelled infinity", text: "Infinity", valid: false},
		{name: "overflow", text: "1e400", valid: false},
		{name: "hexadecimal", text: "0x10", valid: false},
		{name: "hexadecimal float", text: "-0x1p4", valid: false},
		{name: "leading separator", text: "_1", valid: false},
		{name: "doubled separator", text: "1__0", valid: false},
		{name: "separator before dot", text: "1_.5", valid: false},
		{name: "two numbers", text: "1 2", valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := Parse(test.text)
			if !test.valid {
				assert.True(t, errors.Is(err, sentinel.ErrInvalidNumber))

				return
			}

			assert.Nil(t, err)
			assert.Equal(t, test.expected, v)
		})
	}
}
