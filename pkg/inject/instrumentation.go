package inject

import (
	"context"
	"sync/atomic"
	"time"
)

// ResolveObserver is notified after every Get/GetNamed resolution completes.
// pkg/obstrace hooks in here to record an inject.resolve span; this package
// never imports a tracing library directly.
type ResolveObserver interface {
	ObserveResolve(ctx context.Context, bindingType, bindingName string, cacheHit bool, dur time.Duration, err error)
}

var resolveObserver atomic.Pointer[ResolveObserver]

// SetResolveObserver installs a process-wide observer. Passing nil clears
// it. Intended to be called once at startup.
func SetResolveObserver(o ResolveObserver) {
	if o == nil {
		resolveObserver.Store(nil)
		return
	}
	resolveObserver.Store(&o)
}

func observeResolve(ctx context.Context, b Binding, cacheHit bool, start time.Time, err error) {
	if p := resolveObserver.Load(); p != nil {
		(*p).ObserveResolve(ctx, b.Type.String(), b.Name, cacheHit, time.Since(start), err)
	}
}
