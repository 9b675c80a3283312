package actor

import (
	"context"
	"time"
)

// sender is the minimal surface Dispatch needs from either Handle[U] or
// UniqueHandle[U], so the same free functions serve both.
type sender[U any] interface {
	send(e envelope[U]) error
}

// Dispatch enqueues msg on h's mailbox and awaits the reply, honoring ctx
// cancellation. handle is the per-(actor,message) invocation generated
// (hand-written here, code-generated in the source this mirrors) for each
// exposed method: it destructures the message and calls the actor's real
// method body.
func Dispatch[U any, M any, A any](ctx context.Context, h sender[U], handle func(*U, context.Context, M) A, msg M) (A, error) {
	start := time.Now()
	ch := make(chan result[A], 1)
	resolver := newResolver[M, A](msg, ch)
	env := buildEnvelope(ctx, resolver, typeName[U](), handle)

	if err := h.send(env); err != nil {
		var zero A
		observe(ctx, typeName[U](), typeName[M](), start, err)
		return zero, err
	}

	a, err := (AsyncResolvable[A]{ch: ch}).Await(ctx)
	observe(ctx, typeName[U](), typeName[M](), start, err)
	return a, err
}

// DispatchSync enqueues msg and blocks the calling goroutine until the
// reply arrives, with no cancellation path — the blocking counterpart to
// Dispatch.
func DispatchSync[U any, M any, A any](h sender[U], handle func(*U, context.Context, M) A, msg M) (A, error) {
	start := time.Now()
	ch := make(chan result[A], 1)
	resolver := newResolver[M, A](msg, ch)
	env := buildEnvelope(context.Background(), resolver, typeName[U](), handle)

	if err := h.send(env); err != nil {
		var zero A
		observe(context.Background(), typeName[U](), typeName[M](), start, err)
		return zero, err
	}

	a, err := (BlockingResolvable[A]{ch: ch}).Wait()
	observe(context.Background(), typeName[U](), typeName[M](), start, err)
	return a, err
}

// DispatchSyncNoWait enqueues msg with a noop resolver: it never blocks the
// caller and never produces a reply, even if the handler runs and returns
// an answer — that answer is simply discarded.
func DispatchSyncNoWait[U any, M any, A any](h sender[U], handle func(*U, context.Context, M) A, msg M) error {
	resolver := noopResolver[M, A](msg)
	env := buildEnvelope(context.Background(), resolver, typeName[U](), handle)
	return h.send(env)
}
