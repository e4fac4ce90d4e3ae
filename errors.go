package maskid

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyMask is returned by Compile when the mask contains no characters
	// after trimming surrounding whitespace.
	ErrEmptyMask = errors.New("mask must be non-empty")

	// ErrStartNotPast is returned by Compile when the timestamp start date does
	// not lie more than one minute in the past.
	ErrStartNotPast = errors.New("timestamp start date must be in the past")

	// ErrRandomnessUnavailable is returned by Generate when the secure random
	// source cannot deliver bytes.
	ErrRandomnessUnavailable = errors.New("secure random source unavailable")

	// ErrTimestampRange is returned by Generate when the minutes elapsed since
	// the spec's start date do not fit the timestamp field.
	ErrTimestampRange = errors.New("elapsed minutes do not fit timestamp field")
)

// MaskCharacterError reports a mask character outside the X, 9, - grammar.
type MaskCharacterError struct {
	Character rune
	Position  int
}

func (e *MaskCharacterError) Error() string {
	return fmt.Sprintf("invalid mask character %q at position %d", e.Character, e.Position)
}

// EntropyError reports a mask with too little entropy for cryptographically
// secure identifiers.
type EntropyError struct {
	Mask     string
	Bits     int
	Required int
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("mask %q yields %d bits of entropy, at least %d required for secure identifiers",
		e.Mask, e.Bits, e.Required)
}
