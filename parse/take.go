package parse

import (
	"strings"
	"unicode/utf8"
)

// TakeWhile splits s at the first rune accept rejects.
// match is the longest accepted prefix, rest is everything after it.
func TakeWhile(accept func(r rune) bool, s string) (rest, match string) {
	i := strings.IndexFunc(s, func(r rune) bool { return !accept(r) })
	if i < 0 {
		i = len(s)
	}

	return s[i:], s[:i]
}

func ExtractDigits(s string) (rest, digits string) {
	return TakeWhile(isDigit, s)
}

func ExtractSpaces(s string) (rest, spaces string) {
	return Space.Extract(s)
}

// ExtractOperator takes the first character of s whatever it is.
func ExtractOperator(s string) (rest, op string, err error) {
	if s == "" {
		return s, "", ErrEmptyInput
	}

	_, w := utf8.DecodeRuneInString(s)

	return s[w:], s[:w], nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
