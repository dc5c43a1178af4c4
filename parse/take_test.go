package parse

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeWhile(t *testing.T) {
	isA := func(r rune) bool { return r == 'a' }

	for _, tc := range []struct {
		In, Rest, Match string
	}{
		{"", "", ""},
		{"aaa", "", "aaa"},
		{"aab", "b", "aa"},
		{"baa", "baa", ""},
		{"aé", "é", "a"},
	} {
		rest, match := TakeWhile(isA, tc.In)
		assert.Equal(t, tc.Rest, rest, "%q", tc.In)
		assert.Equal(t, tc.Match, match, "%q", tc.In)
	}
}

func TestExtractDigits(t *testing.T) {
	for _, tc := range []struct {
		In, Rest, Digits string
	}{
		{"1+2", "+2", "1"},
		{"10+2", "+2", "10"},
		{"100", "", "100"},
		{"", "", ""},
		{"+2", "+2", ""},
		{"12 3", " 3", "12"},
		{"٣4", "٣4", ""}, // non-ascii digit
	} {
		rest, digits := ExtractDigits(tc.In)
		assert.Equal(t, tc.Rest, rest, "%q", tc.In)
		assert.Equal(t, tc.Digits, digits, "%q", tc.In)
	}
}

func TestExtractDigitsNumbers(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 42, 1000, 65535, math.MaxInt32, math.MaxInt64} {
		s := strconv.FormatInt(n, 10)

		rest, digits := ExtractDigits(s)
		assert.Equal(t, "", rest)
		assert.Equal(t, s, digits)
	}
}

func TestExtractDigitsRepeat(t *testing.T) {
	in := "123+456"

	rest1, d1 := ExtractDigits(in)
	rest2, d2 := ExtractDigits(in)

	assert.Equal(t, rest1, rest2)
	assert.Equal(t, d1, d2)

	// nothing left to take at the same position
	rest3, d3 := ExtractDigits(rest1)
	assert.Equal(t, rest1, rest3)
	assert.Equal(t, "", d3)
}

func TestExtractSpaces(t *testing.T) {
	rest, spaces := ExtractSpaces("   1 1 11")
	assert.Equal(t, "1 1 11", rest)
	assert.Equal(t, "   ", spaces)

	rest, spaces = ExtractSpaces("\t 1")
	assert.Equal(t, "\t 1", rest)
	assert.Equal(t, "", spaces)

	rest, spaces = ExtractSpaces("  \n")
	assert.Equal(t, "\n", rest)
	assert.Equal(t, "  ", spaces)
}

func TestExtractOperator(t *testing.T) {
	rest, op, err := ExtractOperator("+2")
	require.NoError(t, err)
	assert.Equal(t, "2", rest)
	assert.Equal(t, "+", op)

	rest, op, err = ExtractOperator("?")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, "?", op)

	rest, op, err = ExtractOperator("×3")
	require.NoError(t, err)
	assert.Equal(t, "3", rest)
	assert.Equal(t, "×", op)

	rest, op, err = ExtractOperator("")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, "", rest)
	assert.Equal(t, "", op)
}

func TestSpaces(t *testing.T) {
	assert.True(t, Space.Is(' '))
	assert.False(t, Space.Is('\t'))
	assert.True(t, SpaceTab.Is('\t'))
	assert.True(t, SpaceAll.Is('\n'))
	assert.False(t, SpaceAll.Is('a'))
	assert.False(t, SpaceAll.Is('€'))

	assert.Panics(t, func() { NewSpaces('a') })

	rest, match := SpaceTab.Extract(" \t x")
	assert.Equal(t, "x", rest)
	assert.Equal(t, " \t ", match)
}
