package maskid

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// timestampWidth is the exact width of the timestamp field.
const timestampWidth = 10

// epochMinutesOf converts a point in time to whole minutes since the Unix
// epoch, rounding down.
func epochMinutesOf(t time.Time) int64 {
	return t.Truncate(time.Minute).Unix() / 60
}

// timestampField encodes the minutes elapsed between the spec's start date
// and now as a decimal number left-padded with the pad letter to exactly
// timestampWidth characters.
func (s *Spec) timestampField(now time.Time) (string, error) {
	elapsed := epochMinutesOf(now) - s.epochMinutes
	if elapsed < 0 {
		return "", errors.Wrapf(ErrTimestampRange, "%d minutes", elapsed)
	}
	field := strconv.FormatInt(elapsed, 10)
	if len(field) > timestampWidth {
		return "", errors.Wrapf(ErrTimestampRange, "%d minutes", elapsed)
	}
	return strings.Repeat(string(padLetter), timestampWidth-len(field)) + field, nil
}

// decodeTimestampField validates a candidate timestamp field and returns the
// elapsed minutes it carries. Among letters only the pad letter may appear,
// and the field must re-encode to exactly itself, which rejects embedded
// padding, leading zeros and signs.
func decodeTimestampField(field string) (int64, bool) {
	if len(field) != timestampWidth {
		return 0, false
	}
	for i := 0; i < len(field); i++ {
		if c := field[i]; c >= 'A' && c <= 'Z' && c != padLetter {
			return 0, false
		}
	}
	trimmed := strings.ReplaceAll(field, string(padLetter), "")
	elapsed, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, false
	}
	rendered := strconv.FormatUint(elapsed, 10)
	if strings.Repeat(string(padLetter), timestampWidth-len(rendered))+rendered != field {
		return 0, false
	}
	return int64(elapsed), true
}

// DecodeTimestamp extracts the generation time carried by an identifier of a
// timestamped spec, at minute resolution in UTC. The input may be a full
// identifier, only its first 10 characters are inspected. It reports false
// when the spec carries no timestamps or the field does not decode; a missing
// timestamp is a normal outcome, not an error.
func (s *Spec) DecodeTimestamp(input string) (time.Time, bool) {
	if !s.prefixed {
		return time.Time{}, false
	}
	text := strings.ToUpper(strings.TrimSpace(input))
	if len(text) < timestampWidth {
		return time.Time{}, false
	}
	elapsed, ok := decodeTimestampField(text[:timestampWidth])
	if !ok {
		return time.Time{}, false
	}
	return time.Unix((s.epochMinutes+elapsed)*60, 0).UTC(), true
}
