package actor

import "context"

// MessageSender is a pre-bound dispatch bundle for one (message type,
// actor) pair: three closures already specialized to a single handle, so
// callers downstream of MakeSender never need to see the actor's concrete
// type again. Cloning a MessageSender is just copying the struct — the
// closures themselves close over the handle, which is itself cheap to
// duplicate.
type MessageSender[M any, A any] struct {
	dispatch       func(ctx context.Context, msg M) (A, error)
	dispatchNoWait func(msg M) error
	dispatchSync   func(msg M) (A, error)
}

func (s MessageSender[M, A]) Dispatch(ctx context.Context, msg M) (A, error) {
	return s.dispatch(ctx, msg)
}

func (s MessageSender[M, A]) DispatchSyncNoWait(msg M) error {
	return s.dispatchNoWait(msg)
}

func (s MessageSender[M, A]) DispatchSync(msg M) (A, error) {
	return s.dispatchSync(msg)
}

// MakeSender pre-binds a sender for one actor handle and message type.
func MakeSender[U any, M any, A any](h Handle[U], handle func(*U, context.Context, M) A) MessageSender[M, A] {
	return MessageSender[M, A]{
		dispatch: func(ctx context.Context, msg M) (A, error) {
			return Dispatch(ctx, h, handle, msg)
		},
		dispatchNoWait: func(msg M) error {
			return DispatchSyncNoWait(h, handle, msg)
		},
		dispatchSync: func(msg M) (A, error) {
			return DispatchSync(h, handle, msg)
		},
	}
}

// MakeTransformingSender is MakeSender with an input transformer T: M -> N
// applied before enqueue, letting a sender built for message type N be
// exposed to callers as if it accepted M instead.
func MakeTransformingSender[U any, M any, N any, A any](
	h Handle[U],
	handle func(*U, context.Context, N) A,
	transform func(M) N,
) MessageSender[M, A] {
	return MessageSender[M, A]{
		dispatch: func(ctx context.Context, msg M) (A, error) {
			return Dispatch(ctx, h, handle, transform(msg))
		},
		dispatchNoWait: func(msg M) error {
			return DispatchSyncNoWait(h, handle, transform(msg))
		},
		dispatchSync: func(msg M) (A, error) {
			return DispatchSync(h, handle, transform(msg))
		},
	}
}
