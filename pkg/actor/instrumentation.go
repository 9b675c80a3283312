package actor

import (
	"context"
	"sync/atomic"
	"time"
)

// DispatchObserver is notified after every Dispatch/DispatchSync completes.
// It is the seam pkg/obsmetrics and pkg/obstrace hook into; the core never
// imports either package directly.
type DispatchObserver interface {
	ObserveDispatch(ctx context.Context, actorType, messageType string, dur time.Duration, err error)
}

var observer atomic.Pointer[DispatchObserver]

// SetDispatchObserver installs a process-wide observer. Passing nil clears
// it. Intended to be called once at startup, before any actor is started.
func SetDispatchObserver(o DispatchObserver) {
	if o == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&o)
}

func currentObserver() DispatchObserver {
	if p := observer.Load(); p != nil {
		return *p
	}
	return nil
}

func observe(ctx context.Context, actorType, messageType string, start time.Time, err error) {
	if o := currentObserver(); o != nil {
		o.ObserveDispatch(ctx, actorType, messageType, time.Since(start), err)
	}
}

// fanoutObserver dispatches to every wrapped observer in order, letting a
// caller install metrics and tracing simultaneously even though only one
// observer pointer is ever stored.
type fanoutObserver struct {
	observers []DispatchObserver
}

func (f fanoutObserver) ObserveDispatch(ctx context.Context, actorType, messageType string, dur time.Duration, err error) {
	for _, o := range f.observers {
		o.ObserveDispatch(ctx, actorType, messageType, dur, err)
	}
}

// CombineObservers merges multiple observers into the single observer
// SetDispatchObserver accepts. Nil observers are skipped.
func CombineObservers(observers ...DispatchObserver) DispatchObserver {
	nonNil := make([]DispatchObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			nonNil = append(nonNil, o)
		}
	}
	return fanoutObserver{observers: nonNil}
}

// PanicObserver is notified whenever a handler panics and its actor
// terminates. pkg/obslog's RegisterPanicObserver hooks in here so the core never imports
// a logging package directly.
type PanicObserver interface {
	ObservePanic(actorType, actorID string, recovered any, stack []byte)
}

var panicObserver atomic.Pointer[PanicObserver]

// SetPanicObserver installs a process-wide panic observer. Passing nil
// clears it. Intended to be called once at startup, before any actor is
// started.
func SetPanicObserver(o PanicObserver) {
	if o == nil {
		panicObserver.Store(nil)
		return
	}
	panicObserver.Store(&o)
}

func observePanic(actorType, actorID string, recovered any, stack []byte) {
	if p := panicObserver.Load(); p != nil {
		(*p).ObservePanic(actorType, actorID, recovered, stack)
	}
}
