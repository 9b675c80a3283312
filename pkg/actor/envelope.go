package actor

import "context"

// envelope is the type-erased unit of work delivered through a mailbox: a
// payload (the resolver, carrying the message by value) paired with a
// dispatcher that knows how to decode it and invoke the right handler.
//
// The source this runtime is modeled on keeps payload and dispatcher as two
// separate fields — an opaque pointer plus a bare function pointer — so the
// mailbox can stay a single concrete channel element type while still
// carrying an arbitrary message type per send. Go closures capture both
// roles in one value; run below is exactly that fused (payload, dispatch-fn)
// pair, monomorphized per (U, M, A) at the call site that builds it.
type envelope[U any] struct {
	run func(u *U)
	// fail resolves this envelope's waiting caller with err without ever
	// invoking the handler — used to drain envelopes still queued behind
	// one whose handler panicked, so they don't hang their caller forever.
	fail func(err error)
}

// buildEnvelope constructs the envelope for one (U, M, A) triple: it
// restores the message from the resolver, invokes handle, and resolves the
// answer. A handler panic is caught, turned into a HandlerPanicError
// delivered to the waiting resolvable, and re-raised so the runner can
// terminate the actor instead of silently continuing. The resolver is split
// eagerly, outside run, so fail can deliver to the same ThinResolver
// without ever calling handle.
func buildEnvelope[U any, M any, A any](
	ctx context.Context,
	resolver Resolver[M, A],
	actorType string,
	handle func(u *U, ctx context.Context, m M) A,
) envelope[U] {
	thin, m := resolver.Split()
	return envelope[U]{
		run: func(u *U) {
			defer func() {
				if r := recover(); r != nil {
					thin.Fail(&HandlerPanicError{ActorType: actorType, Recovered: r})
					panic(r)
				}
			}()
			answer := handle(u, ctx, m)
			thin.Resolve(answer)
		},
		fail: thin.Fail,
	}
}
