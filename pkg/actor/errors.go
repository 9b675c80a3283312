package actor

import (
	"errors"
	"fmt"
)

// ErrMailboxClosed is returned by Dispatch, DispatchSync and
// DispatchSyncNoWait when the target actor's mailbox has already closed:
// either every handle referencing it has been released, or a handler panic
// terminated the actor.
var ErrMailboxClosed = errors.New("actorcell/actor: mailbox closed")

// ErrActorTerminated resolves any envelope still queued behind one whose
// handler panicked: the runner drains the rest of the mailbox after a
// panic instead of abandoning it, failing each remaining envelope with
// this error so no caller blocked in DispatchSync/Wait/Await hangs forever.
var ErrActorTerminated = errors.New("actorcell/actor: actor terminated by a prior handler panic")

// HandlerPanicError is delivered to the waiting Resolvable when a handler
// panics mid-execution. The actor's runner terminates immediately after;
// no further messages in its mailbox are processed.
type HandlerPanicError struct {
	ActorType string
	Recovered any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("actorcell/actor: handler panicked in %s: %v", e.ActorType, e.Recovered)
}
