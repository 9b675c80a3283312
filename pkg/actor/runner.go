package actor

import "runtime/debug"

// run is the per-actor task loop: receive an envelope, invoke its
// dispatcher, loop. One handler runs to completion before the next starts —
// the runner is the sole `&u` owner, so no two handlers for the same
// instance ever race. A handler panic terminates the loop (and therefore
// the actor); u is dropped once the mailbox closes or the loop is broken
// out of by a panic.
func run[U any](u U, id string, mb *mailbox[U]) {
	for {
		env, ok := mb.recv()
		if !ok {
			return
		}
		if !runOne(env, &u, id) {
			// The handler panicked: terminate the actor. Close the
			// mailbox so sends racing with this exit fail fast with
			// ErrMailboxClosed, then drain whatever was already queued
			// behind the panicking envelope — each one is failed with
			// ErrActorTerminated instead of silently abandoned, so no
			// caller blocked in DispatchSync/Wait/Await hangs forever.
			mb.close()
			drainAfterPanic(mb)
			return
		}
	}
}

func drainAfterPanic[U any](mb *mailbox[U]) {
	for {
		env, ok := mb.recv()
		if !ok {
			return
		}
		env.fail(ErrActorTerminated)
	}
}

// runOne invokes the envelope's dispatcher, catching a second-level panic
// as a backstop: buildEnvelope already resolves the caller with a
// HandlerPanicError and re-panics, so this recover only exists to stop the
// loop cleanly, report it to the panic observer with a stack trace, and
// avoid taking the whole process down with it.
func runOne[U any](env envelope[U], u *U, id string) (ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			ok = false
			observePanic(typeName[U](), id, r, debug.Stack())
		}
	}()
	env.run(u)
	return
}
