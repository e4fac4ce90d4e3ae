package maskid

import "github.com/pkg/errors"

// Mask characters.
const (
	markerLetter    = 'X'
	markerDigit     = '9'
	markerSeparator = '-'
)

type tokenKind int

const (
	letterSlot tokenKind = iota
	digitSlot
	literal
)

// token is one element of a compiled mask: a slot consuming one random or
// parsed symbol, or a literal separator reproduced verbatim.
type token struct {
	kind tokenKind
	lit  byte
}

// tokenize converts a canonical mask into its token sequence. Positions
// reported in errors are zero-based rune positions within the canonical mask.
func tokenize(mask string) ([]token, error) {
	tokens := make([]token, 0, len(mask))
	pos := 0
	for _, r := range mask {
		switch r {
		case markerLetter:
			tokens = append(tokens, token{kind: letterSlot})
		case markerDigit:
			tokens = append(tokens, token{kind: digitSlot})
		case markerSeparator:
			tokens = append(tokens, token{kind: literal, lit: markerSeparator})
		default:
			return nil, errors.WithStack(&MaskCharacterError{Character: r, Position: pos})
		}
		pos++
	}
	return tokens, nil
}
