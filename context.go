package maskid

import "context"

type specKeyType int

const specKey specKeyType = iota

// WithSpec returns a cloned context.Context with the given spec injected into
// it.
func WithSpec(ctx context.Context, spec *Spec) context.Context {
	return context.WithValue(ctx, specKey, spec)
}

// FromContext returns the spec injected into the given context. It panics
// when no spec has been injected.
func FromContext(ctx context.Context) *Spec {
	return ctx.Value(specKey).(*Spec)
}

// Generate produces an identifier using the spec from the given context.
func Generate(ctx context.Context) (string, error) {
	return FromContext(ctx).Generate()
}
