package inject

import "reflect"

// Binding is the singleton cache key: a type identity plus an optional
// name. Named and unnamed bindings for the same type are distinct entries,
// so bind_value/bind/provide for "Store" and for "Store" named "primary"
// never collide.
type Binding struct {
	Type reflect.Type
	Name string
}

func unnamed(t reflect.Type) Binding {
	return Binding{Type: t}
}

func named(t reflect.Type, name string) Binding {
	return Binding{Type: t, Name: name}
}

func describeBinding(b Binding) string {
	if b.Name == "" {
		return b.Type.String()
	}
	return b.Type.String() + " (named " + b.Name + ")"
}
