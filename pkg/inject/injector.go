// Package inject is a small, concurrency-safe dependency-injection
// container: keyed lazy singletons, interface-to-implementation alias
// redirection, and uncached assisted instantiation for values that need a
// per-call parameter the container itself doesn't have.
package inject

import (
	"context"
	"reflect"
	"sync"
	"time"
)

type chainKey struct{}

// chainFor returns the resolution chain carried on ctx, or nil if this is
// the root call. The chain is scoped to a single Get/Instantiate call tree,
// not to the injector: unrelated concurrent resolutions of the same
// binding never see each other's chains, so legitimate concurrent reuse of
// a singleton never misreports as a cycle.
func chainFor(ctx context.Context) []Binding {
	chain, _ := ctx.Value(chainKey{}).([]Binding)
	return chain
}

func withChainEntry(ctx context.Context, b Binding) (context.Context, error) {
	chain := chainFor(ctx)
	for _, seen := range chain {
		if seen == b {
			full := append(append([]Binding{}, chain...), b)
			return ctx, &CircularDependencyError{Chain: bindingChain(full)}
		}
	}
	next := append(append([]Binding{}, chain...), b)
	return context.WithValue(ctx, chainKey{}, next), nil
}

type cellEntry struct {
	get func(ctx context.Context) (any, error)
	// ready reports whether get would return the cached value without
	// driving a constructor — the "cache.hit" attribute on resolve spans.
	ready func() bool
}

// Injector is the container: a registry of constructors and pre-built
// values, plus a cache of the singletons already built from them. It is a
// plain mutex-protected value, not an actor — an actor dispatching to
// itself while resolving one of its own dependencies would deadlock on its
// own mailbox, and every Get call here is exactly that kind of
// self-referential, synchronous-from-the-caller's-view operation.
type Injector struct {
	mu      sync.Mutex
	cells   map[Binding]cellEntry
	aliases map[Binding]Binding
}

// New returns an empty container.
func New() *Injector {
	return &Injector{
		cells:   make(map[Binding]cellEntry),
		aliases: make(map[Binding]Binding),
	}
}

func registerCell[V any](inj *Injector, b Binding, ctor func(ctx context.Context, inj *Injector) (V, error)) {
	cell := NewLazyCell(func(ctx context.Context) (V, error) {
		return ctor(ctx, inj)
	})

	inj.mu.Lock()
	defer inj.mu.Unlock()
	inj.cells[b] = cellEntry{
		get: func(ctx context.Context) (any, error) {
			return cell.Get(ctx)
		},
		ready: cell.Ready,
	}
}

// Provide registers a lazily-constructed singleton for V. ctor runs at
// most once, the first time V (or whatever it's aliased from) is resolved.
func Provide[V any](inj *Injector, ctor func(ctx context.Context, inj *Injector) (V, error)) {
	registerCell(inj, unnamed(reflect.TypeFor[V]()), ctor)
}

// ProvideNamed registers a lazily-constructed singleton for V under name,
// distinct from the unnamed V binding and from any other name.
func ProvideNamed[V any](inj *Injector, name string, ctor func(ctx context.Context, inj *Injector) (V, error)) {
	registerCell(inj, named(reflect.TypeFor[V](), name), ctor)
}

// BindValue registers an already-built value as the singleton for V. There
// is nothing left to construct, so resolving V can never fail or cycle.
func BindValue[V any](inj *Injector, v V) {
	b := unnamed(reflect.TypeFor[V]())
	inj.mu.Lock()
	defer inj.mu.Unlock()
	inj.cells[b] = cellEntry{
		get: func(ctx context.Context) (any, error) {
			return v, nil
		},
		ready: func() bool { return true },
	}
}

// Bind redirects resolution of Iface to whatever Impl is bound to: Get[Iface]
// will resolve the Impl binding and return it as Iface. Nothing checks at
// compile time that Impl satisfies Iface: if it does not, the run-time
// assertion in resolve fails and Get[Iface] returns an UnknownBindingError.
func Bind[Iface any, Impl any](inj *Injector) {
	ifaceBinding := unnamed(reflect.TypeFor[Iface]())
	implBinding := unnamed(reflect.TypeFor[Impl]())

	inj.mu.Lock()
	defer inj.mu.Unlock()
	inj.aliases[ifaceBinding] = implBinding
}

// BindNamed redirects resolution of Iface under name to the unnamed Impl
// binding: GetNamed[Iface](ctx, inj, name) resolves Impl and returns it as
// Iface. Unlike Bind, the name lives only on the Iface side — several named
// Iface bindings can share or diverge from Impl bindings independently,
// which is how distinct backends (e.g. "sqlite", "postgres") coexist behind
// the same interface alongside Get[Iface]'s own, separately bound, default.
func BindNamed[Iface any, Impl any](inj *Injector, name string) {
	ifaceBinding := named(reflect.TypeFor[Iface](), name)
	implBinding := unnamed(reflect.TypeFor[Impl]())

	inj.mu.Lock()
	defer inj.mu.Unlock()
	inj.aliases[ifaceBinding] = implBinding
}

// resolve looks up b, following alias redirection, and casts the result to
// V. It is the shared core of Get/GetNamed; resolveAny is its untyped
// counterpart used internally to walk an alias chain whose target type
// isn't known until the alias map is consulted. Only the outermost call —
// the one made directly from Get/GetNamed — records an inject.resolve
// observation, so a chain of aliases produces one span, not one per hop.
func resolve[V any](ctx context.Context, inj *Injector, b Binding) (result V, err error) {
	start := time.Now()
	var cacheHit bool
	defer func() { observeResolve(ctx, b, cacheHit, start, err) }()

	var v any
	v, cacheHit, err = resolveAny(ctx, inj, b)
	if err != nil {
		var zero V
		return zero, err
	}
	typed, ok := v.(V)
	if !ok {
		err = &UnknownBindingError{Type: describeBinding(b)}
		var zero V
		return zero, err
	}
	return typed, nil
}

// resolveAny is resolve's untyped counterpart, used to follow an alias
// chain whose target type isn't known until the alias map is consulted. The
// returned bool reports whether the innermost concrete cell was already
// built (a cache hit) or had to be driven by this call.
func resolveAny(ctx context.Context, inj *Injector, b Binding) (any, bool, error) {
	ctx, err := withChainEntry(ctx, b)
	if err != nil {
		return nil, false, err
	}

	inj.mu.Lock()
	if alias, ok := inj.aliases[b]; ok {
		inj.mu.Unlock()
		return resolveAny(ctx, inj, alias)
	}
	entry, ok := inj.cells[b]
	inj.mu.Unlock()
	if !ok {
		return nil, false, &UnknownBindingError{Type: describeBinding(b)}
	}

	hit := entry.ready()
	v, err := entry.get(ctx)
	return v, hit, err
}

// Get resolves the singleton for V, constructing it (and anything it
// transitively depends on) on first use.
func Get[V any](ctx context.Context, inj *Injector) (V, error) {
	return resolve[V](ctx, inj, unnamed(reflect.TypeFor[V]()))
}

// GetNamed resolves the singleton registered for V under name.
func GetNamed[V any](ctx context.Context, inj *Injector, name string) (V, error) {
	return resolve[V](ctx, inj, named(reflect.TypeFor[V](), name))
}
