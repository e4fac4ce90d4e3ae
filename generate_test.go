package maskid

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/maskid/pkg/test"
)

func TestGenerateMatchesMask(t *testing.T) {
	requireT := require.New(t)

	spec, err := Compile("XX-9999")
	requireT.NoError(err)

	re := regexp.MustCompile(`^[` + letters + `]{2}-[0-9]{4}$`)
	for range 1000 {
		id, err := spec.Generate()
		requireT.NoError(err)
		requireT.Regexp(re, id)
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	requireT := require.New(t)

	specs := []*Spec{
		lo.Must(Compile("X9-9X")),
		lo.Must(Compile("XXXX")),
		lo.Must(Compile("999")),
		lo.Must(Compile("XXXXXXXXXXXXXXXXXXXX-99999999999999999999", WithCryptoRandomness())),
		lo.Must(Compile("X9-9X", WithTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))),
	}

	for _, spec := range specs {
		for range 1000 {
			id, err := spec.Generate()
			requireT.NoError(err)
			canonical, ok := spec.Parse(id)
			requireT.True(ok, "mask %q id %q", spec.Mask(), id)
			requireT.Equal(id, canonical)
		}
	}
}

func TestGenerateDeterministicSource(t *testing.T) {
	requireT := require.New(t)

	foo1, err := Compile("XXXXXXXX-99999999", WithSource(NewDeterministic("foo")))
	requireT.NoError(err)
	foo2, err := Compile("XXXXXXXX-99999999", WithSource(NewDeterministic("foo")))
	requireT.NoError(err)
	bar, err := Compile("XXXXXXXX-99999999", WithSource(NewDeterministic("bar")))
	requireT.NoError(err)

	for range 10 {
		foo1id := lo.Must(foo1.Generate())
		foo2id := lo.Must(foo2.Generate())
		barid := lo.Must(bar.Generate())
		requireT.Equal(foo1id, foo2id)
		requireT.NotEqual(foo1id, barid)
	}
}

type failingSource struct {
	err error
}

func (fs failingSource) Draw([]byte) error {
	return fs.err
}

func TestGenerateSourceFailure(t *testing.T) {
	requireT := require.New(t)

	boom := errors.New("boom")
	spec, err := Compile("XXXX", WithSource(failingSource{err: boom}))
	requireT.NoError(err)

	_, err = spec.Generate()
	requireT.ErrorIs(err, boom)
}

func TestGenerateTimestampOverflow(t *testing.T) {
	requireT := require.New(t)

	// about 22000 years of minutes, one digit too many for the field
	spec, err := Compile("X9", WithTimestamp(time.Date(-20000, 1, 1, 0, 0, 0, 0, time.UTC)))
	requireT.NoError(err)

	_, err = spec.Generate()
	requireT.ErrorIs(err, ErrTimestampRange)
}

func TestSpecSharedAcrossGoroutines(t *testing.T) {
	requireT := require.New(t)
	ctx := test.Context(t)

	spec, err := Compile("XXXX-9999", WithTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	requireT.NoError(err)

	requireT.NoError(parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := range 8 {
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(_ context.Context) error {
				for range 500 {
					id, err := spec.Generate()
					if err != nil {
						return err
					}
					canonical, ok := spec.Parse(id)
					if !ok {
						return errors.Errorf("generated identifier %q does not parse", id)
					}
					if canonical != id {
						return errors.Errorf("parse changed canonical identifier %q to %q", id, canonical)
					}
				}
				return nil
			})
		}
		return nil
	}))
}
