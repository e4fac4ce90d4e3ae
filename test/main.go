package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/outofforest/run"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/outofforest/maskid"
)

const (
	workers      = 4
	idsPerWorker = 25000
)

func main() {
	run.New().Run(context.Background(), "maskid", demo)
}

func demo(ctx context.Context) error {
	log := logger.Get(ctx)

	plain := lo.Must(maskid.Compile("XXXX-9999"))
	secure := lo.Must(maskid.Compile("XXXXXXX-XXXXXXX-XXXXXXX-XXXXXXX-XXXXXXX",
		maskid.WithCryptoRandomness()))
	stamped := lo.Must(maskid.Compile("XX-9999",
		maskid.WithTimestamp(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))))

	for _, spec := range []*maskid.Spec{plain, secure, stamped} {
		sample, err := spec.Generate()
		if err != nil {
			return err
		}
		log.Info("Compiled spec",
			zap.String("mask", spec.Mask()),
			zap.Bool("crypto", spec.Crypto()),
			zap.Int("entropyBits", spec.EntropyBits()),
			zap.String("uniqueIdentifiers", spec.UniqueCount().String()),
			zap.String("sample", sample))
	}

	if when, ok := stamped.DecodeTimestamp(lo.Must(stamped.Generate())); ok {
		log.Info("Timestamp prefix decodes", zap.Time("mintedAt", when))
	}

	seen := make(map[string]struct{}, workers*idsPerWorker)
	var mu sync.Mutex
	var collisions int

	err := parallel.Run(maskid.WithSpec(ctx, plain), func(ctx context.Context, spawn parallel.SpawnFn) error {
		for i := range workers {
			spawn(fmt.Sprintf("hammer-%d", i), parallel.Continue, func(ctx context.Context) error {
				for range idsPerWorker {
					id, err := maskid.Generate(ctx)
					if err != nil {
						return err
					}
					canonical, ok := maskid.FromContext(ctx).Parse(id)
					if !ok || canonical != id {
						return errors.Errorf("identifier %q does not round-trip", id)
					}
					mu.Lock()
					if _, dup := seen[id]; dup {
						collisions++
					}
					seen[id] = struct{}{}
					mu.Unlock()
				}
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("Hammer finished",
		zap.Int("generated", workers*idsPerWorker),
		zap.Int("unique", len(seen)),
		zap.Int("collisions", collisions))

	return nil
}
