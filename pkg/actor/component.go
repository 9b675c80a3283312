package actor

// Start spawns u's runner on its own goroutine and returns a shared handle
// to it. u's value from this point on is exclusively owned by the runner
// goroutine — nothing outside this package touches it again.
func Start[U any](u U) Handle[U] {
	mb := newMailbox[U]()
	h := newHandle(mb)
	go run(u, h.ID(), mb)
	return h
}

// StartComponent spawns u and wraps the resulting handle with createWrapper,
// mirroring the source's `Component::start`, where create_wrapper produces
// the user-facing, code-generated handle type (e.g. CounterHandle) from the
// raw ComponentHandle. Hand-written "generated" wrapper constructors call
// this once per concrete actor type.
func StartComponent[U any, W any](u U, createWrapper func(Handle[U]) W) W {
	return createWrapper(Start(u))
}
