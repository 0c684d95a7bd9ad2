// Package words validates and counts whitespace-delimited words.
//
// A valid word is one or more ASCII letters or digits, optionally followed by
// groups of a single hyphen and one or more letters or digits. Leading,
// trailing and doubled hyphens are rejected.
package words

import (
	"regexp"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/textstats/internal/ascii"
	"github.com/hyp3rd/textstats/internal/sentinel"
)

var wordPattern = regexp.MustCompile(`^[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`)

// IsValid reports whether token is a valid word.
func IsValid(token string) bool {
	return wordPattern.MatchString(token)
}

// Validate returns sentinel.ErrInvalidWord when token is not a valid word.
func Validate(token string) error {
	if !IsValid(token) {
		return ewrap.Wrapf(sentinel.ErrInvalidWord, "%q", token)
	}

	return nil
}

// Tokenize lower-cases line and splits it on whitespace.
func Tokenize(line string) []string {
	return ascii.Fields(strings.ToLower(line))
}

// Entry is the frequency of one word.
type Entry struct {
	Word  string
	Count int
}

// Tally is a word frequency table. Entries keep the order in which words were
// first seen; Rejected keeps invalid tokens in input order.
type Tally struct {
	Entries  []Entry
	Rejected []string
}

// Total returns the number of valid tokens counted.
func (t Tally) Total() int {
	total := 0
	for _, entry := range t.Entries {
		total += entry.Count
	}

	return total
}

// Count validates tokens and tallies the valid ones.
func Count(tokens []string) Tally {
	var tally Tally

	index := make(map[string]int)
	for _, token := range tokens {
		if !IsValid(token) {
			tally.Rejected = append(tally.Rejected, token)

			continue
		}

		if i, ok := index[token]; ok {
			tally.Entries[i].Count++

			continue
		}

		index[token] = len(tally.Entries)
		tally.Entries = append(tally.Entries, Entry{Word: token, Count: 1})
	}

	return tally
}
