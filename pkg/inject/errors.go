package inject

import (
	"fmt"
	"strings"
)

// UnknownBindingError is returned when Get/GetNamed/resolve is asked for a
// binding that was never registered with Provide, ProvideNamed, Bind, or
// BindValue. Type is the human-readable binding description (e.g. `"*Foo"`
// or `"*Foo (named bar)"`), exported so a caller that has type-asserted via
// errors.As can report which binding was missing without re-parsing the
// error string.
type UnknownBindingError struct {
	Type string
}

func (e *UnknownBindingError) Error() string {
	return fmt.Sprintf("actorcell/inject: no binding registered for %s", e.Type)
}

// CircularDependencyError is returned when resolving a binding would
// require resolving itself again, directly or transitively, within the
// same resolution chain. Chain is recorded in dependency order, exported so
// a caller that has type-asserted via errors.As can inspect or log the full
// cycle programmatically instead of just the formatted error string.
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("actorcell/inject: circular dependency: %s", strings.Join(e.Chain, " -> "))
}

func bindingChain(chain []Binding) []string {
	names := make([]string, len(chain))
	for i, b := range chain {
		names[i] = describeBinding(b)
	}
	return names
}
