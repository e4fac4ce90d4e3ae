package maskid

import "strings"

// letters is the alphabet behind X slots. A is the zero letter used to pad
// timestamp fields. The set omits vowels (no accidental words), digit
// lookalikes (B G I L O Q S Z), the easily confused U V Y group and X itself,
// which marks a letter slot in masks.
const letters = "ACDFHJKMNPRTW"

// digits is the alphabet behind 9 slots.
const digits = "0123456789"

// padLetter left-pads timestamp fields, playing the role 0 plays for numbers.
// It is the first letter of the alphabet.
const padLetter = 'A'

func isLetter(c byte) bool {
	return strings.IndexByte(letters, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
