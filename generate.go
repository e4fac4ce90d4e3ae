package maskid

import (
	"strings"
	"time"
)

// Generate produces one random identifier conforming to the spec.
//
// Identifiers of timestamped specs start with the current timestamp field and
// a separator. Generation fails only when the secure source cannot deliver
// bytes or the elapsed minutes no longer fit the timestamp field.
func (s *Spec) Generate() (string, error) {
	b := make([]byte, s.slots)
	if err := s.source.Draw(b); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(s.tokens) + timestampWidth + 1)

	if s.prefixed {
		field, err := s.timestampField(time.Now())
		if err != nil {
			return "", err
		}
		sb.WriteString(field)
		sb.WriteByte(markerSeparator)
	}

	next := 0
	for _, t := range s.tokens {
		switch t.kind {
		case letterSlot:
			// modulo mapping is slightly biased towards low indices; existing
			// identifiers depend on it, do not replace with unbiased sampling
			sb.WriteByte(letters[int(b[next])%len(letters)])
			next++
		case digitSlot:
			sb.WriteByte(digits[int(b[next])%len(digits)])
			next++
		case literal:
			sb.WriteByte(t.lit)
		}
	}

	return sb.String(), nil
}
