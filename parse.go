package maskid

import (
	"fmt"
	"strings"
)

// Parse validates a candidate identifier against the spec and returns its
// canonical form: uppercase, with literal separators at their mask positions
// and, for timestamped specs, the timestamp field up front.
//
// Input that does not match the spec is a normal outcome reported as
// ok=false, never an error. Matching is forgiving about presentation: case
// and surrounding whitespace are ignored, and any character outside the
// letter and digit alphabets, such as a separator typed in the wrong place,
// is discarded before the symbols are checked against the mask slots.
// Non-string input is rendered with fmt.Sprint first, so Parse(1234) matches
// the mask "99-99".
func (s *Spec) Parse(input any) (string, bool) {
	var text string
	switch v := input.(type) {
	case string:
		text = v
	default:
		text = fmt.Sprint(input)
	}
	text = strings.ToUpper(strings.TrimSpace(text))

	var field string
	if s.prefixed {
		if len(text) < timestampWidth {
			return "", false
		}
		if _, ok := decodeTimestampField(text[:timestampWidth]); !ok {
			return "", false
		}
		field = text[:timestampWidth]
		text = text[timestampWidth:]
	}

	symbols := make([]byte, 0, s.slots)
	for i := 0; i < len(text); i++ {
		if c := text[i]; isLetter(c) || isDigit(c) {
			symbols = append(symbols, c)
		}
	}
	if len(symbols) != s.slots {
		return "", false
	}

	var sb strings.Builder
	sb.Grow(len(field) + 1 + len(s.tokens))
	if s.prefixed {
		sb.WriteString(field)
		sb.WriteByte(markerSeparator)
	}

	next := 0
	for _, t := range s.tokens {
		switch t.kind {
		case letterSlot:
			if !isLetter(symbols[next]) {
				return "", false
			}
			sb.WriteByte(symbols[next])
			next++
		case digitSlot:
			if !isDigit(symbols[next]) {
				return "", false
			}
			sb.WriteByte(symbols[next])
			next++
		case literal:
			sb.WriteByte(t.lit)
		}
	}

	return sb.String(), true
}
