package maskid

import (
	cryptorand "crypto/rand"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Source delivers the random bytes consumed during generation, one byte per
// mask slot. Implementations must be safe for concurrent use so a compiled
// Spec can be shared between goroutines.
type Source interface {
	// Draw fills b with random bytes.
	Draw(b []byte) error
}

// secureSource draws from the operating system CSPRNG.
type secureSource struct{}

func (secureSource) Draw(b []byte) error {
	if _, err := cryptorand.Read(b); err != nil {
		return errors.Wrap(ErrRandomnessUnavailable, err.Error())
	}
	return nil
}

// fastSource draws from the shared math/rand/v2 generator. It never fails.
type fastSource struct{}

func (fastSource) Draw(b []byte) error {
	for i := range b {
		b[i] = byte(rand.Uint64())
	}
	return nil
}
