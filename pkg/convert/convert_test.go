package convert

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/textstats/internal/sentinel"
)

func TestToBinary(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "0"},
		{value: 1, expected: "1"},
		{value: 10, expected: "1010"},
		{value: -5.5, expected: "-101.1"},
		{value: 0.25, expected: "0.01"},
		{value: 0.1, expected: "0.0001100110"},
		{value: -0.75, expected: "-0.11"},
		{value: 1 << 40, expected: "1" + strings.Repeat("0", 40)},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, ToBinary(test.value))
		})
	}
}

func TestToHex(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "0"},
		{value: 255, expected: "FF"},
		{value: 0.5, expected: "0.8"},
		{value: -26.75, expected: "-1A.C"},
		{value: 4096, expected: "1000"},
		{value: 0.1, expected: "0.1999999999"},
		{value: 1e20, expected: "56BC75E2D63100000"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, ToHex(test.value))
		})
	}
}

func TestToBinary_RoundTrip(t *testing.T) {
	for n := int64(-1024); n <= 1024; n++ {
		parsed, err := strconv.ParseInt(ToBinary(float64(n)), 2, 64)
		assert.Nil(t, err)
		assert.Equal(t, n, parsed)
	}

	for _, n := range []int64{1 << 52, 1<<53 - 1, -(1 << 50) + 3} {
		parsed, err := strconv.ParseInt(ToBinary(float64(n)), 2, 64)
		assert.Nil(t, err)
		assert.Equal(t, n, parsed)

		parsed, err = strconv.ParseInt(ToHex(float64(n)), 16, 64)
		assert.Nil(t, err)
		assert.Equal(t, n, parsed)
	}
}

func TestToBase(t *testing.T) {
	s, err := ToBase(8.5, 8)
	assert.Nil(t, err)
	assert.Equal(t, "10.4", s)

	_, err = ToBase(1, 1)
	assert.True(t, errors.Is(err, sentinel.ErrInvalidBase))

	_, err = ToBase(1, 17)
	assert.True(t, errors.Is(err, sentinel.ErrInvalidBase))
}

func TestConvert(t *testing.T) {
	rows := Convert([]float64{3, -5.5, 255})
	assert.Len(t, rows, 3)

	assert.Equal(t, "3", rows[0].Value.String())
	assert.True(t, rows[0].Value.IsInteger())
	assert.Equal(t, "11", rows[0].Binary)
	assert.Equal(t, "3", rows[0].Hex)

	assert.Equal(t, "-5.5", rows[1].Value.String())
	assert.Equal(t, "-101.1", rows[1].Binary)
	assert.Equal(t, "-5.8", rows[1].Hex)

	assert.Equal(t, "11111111", rows[2].Binary)
	assert.Equal(t, "FF", rows[2].Hex)
}
