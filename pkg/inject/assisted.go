package inject

import "context"

// InjectorHandle is the type dependents should hold when all they need is
// to resolve further dependencies of their own — a plain alias, not a
// distinct wrapper, since Injector has no actor mailbox to hide behind.
type InjectorHandle = *Injector

// Instantiate builds a fresh, uncached V on every call using ctor, which
// may itself call Get/GetNamed against inj to pull in container-managed
// dependencies. Unlike Provide, the result is never memoized: Instantiate
// is for values that need a per-call argument the container doesn't have
// (a request ID, a user-supplied parameter) alongside their injected
// dependencies.
func Instantiate[V any](ctx context.Context, inj *Injector, ctor func(ctx context.Context, inj *Injector) (V, error)) (V, error) {
	return ctor(ctx, inj)
}
