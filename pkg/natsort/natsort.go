// Package natsort orders identifiers the way humans expect: runs of digits
// compare by their numeric value, everything else compares byte-wise. With
// this ordering "frame1", "frame2", "frame10" sort in that order instead of
// the lexicographic "frame1", "frame10", "frame2".
package natsort

import (
	"errors"
	"sort"
	"strings"
)

// ErrIncomparable is returned by Compare when a numeric token meets a
// non-numeric token at the same position. The tokenizer emits text runs at
// even positions and digit runs at odd positions, so identifiers tokenized
// by this package are always comparable.
var ErrIncomparable = errors.New("natsort: cannot compare numeric and non-numeric tokens")

// token is a single run of an identifier. Numeric tokens hold the digit
// run with leading zeros stripped.
type token struct {
	numeric bool
	text    string
}

// tokenize splits s into alternating text and digit runs. A text token is
// always emitted before each digit run and after the final one, so the
// token list alternates text, digits, text, digits, ... text.
func tokenize(s string) []token {
	var tokens []token
	start := 0
	inDigits := false
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		if isDigit == inDigits {
			continue
		}
		tokens = append(tokens, makeToken(inDigits, s[start:i]))
		start = i
		inDigits = isDigit
	}
	tokens = append(tokens, makeToken(inDigits, s[start:]))
	if inDigits {
		// Keep the text/digits alternation intact after a trailing digit run.
		tokens = append(tokens, token{text: ""})
	}
	return tokens
}

func makeToken(numeric bool, text string) token {
	if !numeric {
		return token{text: text}
	}
	trimmed := strings.TrimLeft(text, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return token{numeric: true, text: trimmed}
}

// compareTokens compares two tokens of the same kind. Numeric tokens are
// compared by value: a shorter zero-stripped digit run is always smaller.
func compareTokens(a, b token) (int, error) {
	if a.numeric != b.numeric {
		return 0, ErrIncomparable
	}
	if a.numeric && len(a.text) != len(b.text) {
		if len(a.text) < len(b.text) {
			return -1, nil
		}
		return 1, nil
	}
	return strings.Compare(a.text, b.text), nil
}

// Compare returns -1, 0 or 1 ordering a against b naturally. It fails with
// ErrIncomparable only for token sequences that mix kinds at the same
// position, which cannot be produced by tokenizing ordinary strings.
func Compare(a, b string) (int, error) {
	ta, tb := tokenize(a), tokenize(b)
	n := len(ta)
	if len(tb) < n {
		n = len(tb)
	}
	for i := 0; i < n; i++ {
		c, err := compareTokens(ta[i], tb[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1, nil
	case len(ta) > len(tb):
		return 1, nil
	}
	return 0, nil
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	c, _ := Compare(a, b)
	return c < 0
}

// Sort sorts items in place into natural order.
func Sort(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i], items[j])
	})
}
