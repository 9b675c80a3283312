package actor

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Handle is a cloneable, send-safe endpoint of one actor's mailbox — the
// "shared" component handle. Go has no destructor to close the mailbox
// automatically once the last clone is garbage collected, so closing is
// explicit: every Clone must be paired with a Close, the same discipline as
// io.Closer. The mailbox closes once the reference count returned to zero,
// at which point the runner drains whatever is left in the queue and exits.
type Handle[U any] struct {
	id       string
	mailbox  *mailbox[U]
	refcount *int64
}

func newHandle[U any](mb *mailbox[U]) Handle[U] {
	rc := int64(1)
	return Handle[U]{id: uuid.NewString(), mailbox: mb, refcount: &rc}
}

// ID is this actor instance's identity, assigned once at Start and shared
// by every clone of the handle — stable for the actor's whole lifetime,
// useful as a log/trace correlation key when many instances of the same
// actor type are running.
func (h Handle[U]) ID() string {
	return h.id
}

func (h Handle[U]) send(e envelope[U]) error {
	return h.mailbox.send(e)
}

// Clone duplicates the handle, incrementing the shared reference count.
func (h Handle[U]) Clone() Handle[U] {
	atomic.AddInt64(h.refcount, 1)
	return h
}

// Close releases this clone. Once every clone has been closed the mailbox
// closes and the actor's runner exits after draining pending messages.
func (h Handle[U]) Close() {
	if atomic.AddInt64(h.refcount, -1) == 0 {
		h.mailbox.close()
	}
}

// UniqueHandle is the non-clonable component handle variant: it exists to
// express "keep this actor alive for at least D" without offering up
// additional shared ownership. It wraps the same underlying mailbox as a
// Handle but does not expose Clone, so callers cannot accidentally fan it
// out the way they could a shared Handle.
type UniqueHandle[U any] struct {
	inner Handle[U]
}

// ToUnique converts a shared handle into a unique one. The original handle
// is consumed by convention — callers should not continue using it after
// conversion, mirroring the source's From<ComponentHandle<C>> conversion.
func ToUnique[U any](h Handle[U]) UniqueHandle[U] {
	return UniqueHandle[U]{inner: h}
}

func (h UniqueHandle[U]) send(e envelope[U]) error {
	return h.inner.send(e)
}

// KeepAliveFor starts a background goroutine holding a clone of the actor's
// handle until d elapses or the returned cancel function is invoked,
// whichever comes first, then releases it. This is the mechanism by which a
// UniqueHandle guarantees "do not deallocate this actor for at least D"
// without itself being clonable.
func (h UniqueHandle[U]) KeepAliveFor(d time.Duration) (cancel func()) {
	clone := h.inner.Clone()
	done := make(chan struct{})
	var closeOnce int32

	cancel = func() {
		if atomic.CompareAndSwapInt32(&closeOnce, 0, 1) {
			close(done)
		}
	}

	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-done:
		}
		clone.Close()
	}()

	return cancel
}
