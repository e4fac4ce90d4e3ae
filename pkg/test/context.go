package test

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
)

// Context returns a context for testing purposes, with logging configured and
// cancellation wired to test cleanup.
func Context(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	t.Cleanup(cancel)
	return ctx
}
