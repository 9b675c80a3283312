package actor

import "sync"

// result is the payload carried over the one-shot reply channel shared by
// a Resolver/ThinResolver and its paired Resolvable.
type result[A any] struct {
	value A
	err   error
}

// ThinResolver is the meta-less half of a split Resolver: the dispatcher
// holds onto this after extracting the message, and resolves it exactly
// once with the handler's answer.
type ThinResolver[A any] struct {
	ch   chan<- result[A]
	once *sync.Once
}

// Resolve delivers the answer. Safe to call on a noop resolver (no-op) and
// safe to call after the Resolvable side has already been abandoned (the
// send completes against a buffered channel nobody reads from again).
func (t ThinResolver[A]) Resolve(a A) {
	if t.ch == nil {
		return
	}
	t.once.Do(func() {
		t.ch <- result[A]{value: a}
	})
}

// Fail delivers an error instead of an answer, used when a handler panics.
func (t ThinResolver[A]) Fail(err error) {
	if t.ch == nil {
		return
	}
	t.once.Do(func() {
		t.ch <- result[A]{err: err}
	})
}

// Resolver is a single-use reply channel carrying a meta value M (the
// message itself, by value — this is how M survives the envelope's type
// erasure to reach the handler) alongside the machinery to deliver an
// answer of type A exactly once.
type Resolver[M any, A any] struct {
	meta M
	thin ThinResolver[A]
}

func newResolver[M any, A any](meta M, ch chan<- result[A]) Resolver[M, A] {
	return Resolver[M, A]{meta: meta, thin: ThinResolver[A]{ch: ch, once: &sync.Once{}}}
}

// noopResolver builds a resolver whose answer is always discarded, backing
// fire-and-forget dispatch.
func noopResolver[M any, A any](meta M) Resolver[M, A] {
	return Resolver[M, A]{meta: meta, thin: ThinResolver[A]{once: &sync.Once{}}}
}

// Split decomposes the resolver into its meta value and the meta-less
// ThinResolver handed to the dispatcher.
func (r Resolver[M, A]) Split() (ThinResolver[A], M) {
	return r.thin, r.meta
}
