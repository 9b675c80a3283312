package actor

import (
	"context"
	"sync"
	"testing"
	"time"
)

// Counter is a minimal actor: add(delta) -> running total.
type Counter struct {
	n int64
}

type addParams struct {
	Delta int64
}

func (c *Counter) handleAdd(_ context.Context, m addParams) int64 {
	c.n += m.Delta
	return c.n
}

func TestCounterRoundTrip(t *testing.T) {
	h := Start(Counter{})
	defer h.Close()

	got1, err := Dispatch(context.Background(), h, (*Counter).handleAdd, addParams{Delta: 1})
	if err != nil || got1 != 1 {
		t.Fatalf("add(1) = %d, %v, want 1, nil", got1, err)
	}
	got2, err := Dispatch(context.Background(), h, (*Counter).handleAdd, addParams{Delta: 2})
	if err != nil || got2 != 3 {
		t.Fatalf("add(2) = %d, %v, want 3, nil", got2, err)
	}
	got3, err := Dispatch(context.Background(), h, (*Counter).handleAdd, addParams{Delta: -1})
	if err != nil || got3 != 2 {
		t.Fatalf("add(-1) = %d, %v, want 2, nil", got3, err)
	}
}

// Slow is an actor whose work(d) asserts no two invocations ever overlap,
// proving at-most-one-handler-in-flight per actor.
type Slow struct {
	mu   sync.Mutex
	busy bool
}

type workParams struct {
	d time.Duration
}

func (s *Slow) handleWork(_ context.Context, m workParams) struct{} {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		panic("overlapping handler execution")
	}
	s.busy = true
	s.mu.Unlock()

	time.Sleep(m.d)

	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
	return struct{}{}
}

func TestSerialHandlerExecution(t *testing.T) {
	h := Start(Slow{})
	defer h.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			if _, err := Dispatch(context.Background(), h, (*Slow).handleWork, workParams{d: 30 * time.Millisecond}); err != nil {
				t.Errorf("work() error = %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestFIFOOrderingPerHandle(t *testing.T) {
	h := Start(Counter{})
	defer h.Close()

	results := make([]int64, 5)
	for i := 0; i < 5; i++ {
		v, err := Dispatch(context.Background(), h, (*Counter).handleAdd, addParams{Delta: 1})
		if err != nil {
			t.Fatalf("add() error = %v", err)
		}
		results[i] = v
	}
	for i, v := range results {
		if v != int64(i+1) {
			t.Fatalf("results[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestDispatchSyncNoWaitNeverBlocks(t *testing.T) {
	h := Start(Slow{})
	defer h.Close()

	done := make(chan struct{})
	go func() {
		if err := DispatchSyncNoWait(h, (*Slow).handleWork, workParams{d: 200 * time.Millisecond}); err != nil {
			t.Errorf("DispatchSyncNoWait() error = %v", err)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(50 * time.Millisecond):
		t.Fatal("DispatchSyncNoWait blocked the caller")
	}
}

func TestDispatchSyncBlocksForReply(t *testing.T) {
	h := Start(Counter{})
	defer h.Close()

	v, err := DispatchSync(h, (*Counter).handleAdd, addParams{Delta: 7})
	if err != nil || v != 7 {
		t.Fatalf("DispatchSync() = %d, %v, want 7, nil", v, err)
	}
}

func TestMailboxClosedAfterLastHandleDropped(t *testing.T) {
	h := Start(Counter{})
	clone := h.Clone()

	h.Close()
	// Start's reference plus clone's made two; releasing h leaves one
	// reference (clone) still outstanding.
	if _, err := Dispatch(context.Background(), clone, (*Counter).handleAdd, addParams{Delta: 1}); err != nil {
		t.Fatalf("dispatch on remaining clone failed: %v", err)
	}

	clone.Close()
	time.Sleep(10 * time.Millisecond)

	if _, err := DispatchSync(clone, (*Counter).handleAdd, addParams{Delta: 1}); err != ErrMailboxClosed {
		t.Fatalf("dispatch after close = %v, want ErrMailboxClosed", err)
	}
}

type Panicky struct{}

type panicParams struct{}

func (p *Panicky) handleBoom(_ context.Context, _ panicParams) struct{} {
	panic("boom")
}

func TestHandlerPanicTerminatesActor(t *testing.T) {
	h := Start(Panicky{})
	defer h.Close()

	_, err := Dispatch(context.Background(), h, (*Panicky).handleBoom, panicParams{})
	var panicErr *HandlerPanicError
	if err == nil {
		t.Fatal("expected HandlerPanicError, got nil")
	}
	if !asHandlerPanicError(err, &panicErr) {
		t.Fatalf("expected *HandlerPanicError, got %T: %v", err, err)
	}

	// The actor's runner has exited: further dispatches see a closed
	// mailbox once the queue (now empty) is drained.
	time.Sleep(10 * time.Millisecond)
	if _, err := Dispatch(context.Background(), h, (*Panicky).handleBoom, panicParams{}); err != ErrMailboxClosed {
		t.Fatalf("dispatch after panic = %v, want ErrMailboxClosed", err)
	}
}

func asHandlerPanicError(err error, target **HandlerPanicError) bool {
	if e, ok := err.(*HandlerPanicError); ok {
		*target = e
		return true
	}
	return false
}

func TestHandleIDStableAcrossClonesDistinctAcrossActors(t *testing.T) {
	h1 := Start(Counter{})
	defer h1.Close()
	h2 := Start(Counter{})
	defer h2.Close()

	if h1.ID() == "" {
		t.Fatal("ID() returned empty string")
	}
	if h1.ID() == h2.ID() {
		t.Fatalf("two distinct actors got the same ID %q", h1.ID())
	}

	clone := h1.Clone()
	defer clone.Close()
	if clone.ID() != h1.ID() {
		t.Fatalf("clone.ID() = %q, want %q", clone.ID(), h1.ID())
	}
}

type Blocking struct{}

type blockParams struct {
	started chan struct{}
	proceed chan struct{}
}

func (b *Blocking) handleBlock(_ context.Context, m blockParams) struct{} {
	close(m.started)
	<-m.proceed
	panic("boom-after-block")
}

type noopParams struct{}

func (b *Blocking) handleNoop(_ context.Context, _ noopParams) struct{} {
	return struct{}{}
}

func TestPanicDrainsQueuedEnvelopesWithActorTerminated(t *testing.T) {
	h := Start(Blocking{})
	defer h.Close()

	started := make(chan struct{})
	proceed := make(chan struct{})

	firstDone := make(chan struct{})
	go func() {
		_, _ = Dispatch(context.Background(), h, (*Blocking).handleBlock, blockParams{started: started, proceed: proceed})
		close(firstDone)
	}()
	<-started // first handler is now running, blocked on proceed

	secondErrCh := make(chan error, 1)
	go func() {
		_, err := Dispatch(context.Background(), h, (*Blocking).handleNoop, noopParams{})
		secondErrCh <- err
	}()
	// Give the second dispatch time to actually enqueue behind the first,
	// still-running handler before that handler panics.
	time.Sleep(10 * time.Millisecond)
	close(proceed)
	<-firstDone

	select {
	case err := <-secondErrCh:
		if err != ErrActorTerminated {
			t.Fatalf("second dispatch error = %v, want ErrActorTerminated", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second dispatch hung instead of failing with ErrActorTerminated")
	}
}

type panicObserverFunc func(actorType, actorID string, recovered any, stack []byte)

func (f panicObserverFunc) ObservePanic(actorType, actorID string, recovered any, stack []byte) {
	f(actorType, actorID, recovered, stack)
}

func TestHandlerPanicNotifiesPanicObserver(t *testing.T) {
	type observed struct {
		actorType string
		actorID   string
		recovered any
	}
	seen := make(chan observed, 1)
	SetPanicObserver(panicObserverFunc(func(actorType, actorID string, recovered any, stack []byte) {
		if len(stack) == 0 {
			t.Error("ObservePanic called with empty stack trace")
		}
		seen <- observed{actorType, actorID, recovered}
	}))
	defer SetPanicObserver(nil)

	h := Start(Panicky{})
	defer h.Close()

	_, _ = Dispatch(context.Background(), h, (*Panicky).handleBoom, panicParams{})

	select {
	case got := <-seen:
		if got.actorID != h.ID() {
			t.Fatalf("ObservePanic actorID = %q, want %q", got.actorID, h.ID())
		}
		if got.recovered != "boom" {
			t.Fatalf("ObservePanic recovered = %v, want %q", got.recovered, "boom")
		}
	case <-time.After(time.Second):
		t.Fatal("ObservePanic was never called")
	}
}
