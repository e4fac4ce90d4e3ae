package maskid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabets(t *testing.T) {
	requireT := require.New(t)

	requireT.Len(letters, 13)
	requireT.Len(digits, 10)
	requireT.Equal(strings.ToUpper(letters), letters)
	requireT.Equal(byte(padLetter), letters[0])

	// mask characters must never appear among generated symbols
	requireT.False(strings.ContainsRune(letters, markerLetter))
	requireT.False(strings.ContainsRune(letters, markerDigit))
	requireT.False(strings.ContainsRune(letters, markerSeparator))

	for i := 0; i < len(letters); i++ {
		requireT.True(isLetter(letters[i]))
		requireT.False(isDigit(letters[i]))
	}
	for i := 0; i < len(digits); i++ {
		requireT.True(isDigit(digits[i]))
		requireT.False(isLetter(digits[i]))
	}
}
