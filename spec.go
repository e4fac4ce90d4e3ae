package maskid

import (
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// entropyFloor is the minimum entropy accepted for cryptographically secure
// specs.
const entropyFloor = 128

// Spec is a compiled mask: an immutable description of one identifier format.
// A Spec is safe for concurrent use and may be shared freely.
type Spec struct {
	mask   string
	tokens []token
	slots  int
	unique *big.Int
	bits   int
	crypto bool
	source Source

	prefixed     bool
	epochMinutes int64
}

// Option adjusts how a mask is compiled.
type Option func(c *compileConfig)

type compileConfig struct {
	crypto   bool
	prefixed bool
	start    time.Time
	source   Source
}

// WithCryptoRandomness makes the spec draw from a cryptographically secure
// source and requires the mask to carry at least 128 bits of entropy.
func WithCryptoRandomness() Option {
	return func(c *compileConfig) {
		c.crypto = true
	}
}

// WithTimestamp prefixes generated identifiers with the number of minutes
// elapsed since start, encoded as a 10-character field followed by a
// separator. Parse then requires the prefix. The start date must lie more
// than one minute in the past.
func WithTimestamp(start time.Time) Option {
	return func(c *compileConfig) {
		c.prefixed = true
		c.start = start
	}
}

// WithSource overrides the source of random bytes, typically with a
// deterministic one. The entropy requirement of WithCryptoRandomness still
// applies, only the drawing strategy changes.
func WithSource(source Source) Option {
	return func(c *compileConfig) {
		c.source = source
	}
}

// Compile validates a mask and freezes it into a Spec.
//
// The mask is uppercased and trimmed first, so "xx-99" and "XX-99" compile to
// the same spec. X marks a letter slot and 9 a digit slot, while - is kept as
// a literal separator. Any other character fails compilation with
// MaskCharacterError.
func Compile(mask string, opts ...Option) (*Spec, error) {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	canonical := strings.ToUpper(strings.TrimSpace(mask))
	if canonical == "" {
		return nil, errors.WithStack(ErrEmptyMask)
	}

	tokens, err := tokenize(canonical)
	if err != nil {
		return nil, err
	}

	slots := 0
	unique := big.NewInt(1)
	for _, t := range tokens {
		switch t.kind {
		case letterSlot:
			slots++
			unique.Mul(unique, big.NewInt(int64(len(letters))))
		case digitSlot:
			slots++
			unique.Mul(unique, big.NewInt(int64(len(digits))))
		}
	}
	bits := ceilLog2(unique)

	if cfg.crypto && bits < entropyFloor {
		return nil, errors.WithStack(&EntropyError{
			Mask:     canonical,
			Bits:     bits,
			Required: entropyFloor,
		})
	}

	spec := &Spec{
		mask:   canonical,
		tokens: tokens,
		slots:  slots,
		unique: unique,
		bits:   bits,
		crypto: cfg.crypto,
	}

	if cfg.prefixed {
		if !cfg.start.Before(time.Now().Add(-time.Minute)) {
			return nil, errors.WithStack(ErrStartNotPast)
		}
		spec.prefixed = true
		spec.epochMinutes = epochMinutesOf(cfg.start)
	}

	spec.source = cfg.source
	if spec.source == nil {
		if cfg.crypto {
			spec.source = secureSource{}
		} else {
			spec.source = fastSource{}
		}
	}

	return spec, nil
}

// Mask returns the canonical mask text.
func (s *Spec) Mask() string {
	return s.mask
}

// Crypto reports whether identifiers are drawn from a cryptographically
// secure source.
func (s *Spec) Crypto() bool {
	return s.crypto
}

// Timestamped reports whether identifiers carry the timestamp prefix.
func (s *Spec) Timestamped() bool {
	return s.prefixed
}

// SlotCount returns the number of random symbols in one identifier.
func (s *Spec) SlotCount() int {
	return s.slots
}

// UniqueCount returns the number of distinct identifiers the spec can
// produce, not counting the timestamp prefix.
func (s *Spec) UniqueCount() *big.Int {
	return new(big.Int).Set(s.unique)
}

// EntropyBits returns ceil(log2(UniqueCount())), or 0 for a slotless mask.
func (s *Spec) EntropyBits() int {
	return s.bits
}

func ceilLog2(n *big.Int) int {
	one := big.NewInt(1)
	if n.Cmp(one) <= 0 {
		return 0
	}
	m := new(big.Int).Sub(n, one)
	if m.And(m, n).Sign() == 0 {
		return n.BitLen() - 1
	}
	return n.BitLen()
}
