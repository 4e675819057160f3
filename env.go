package amoskeag

// Environment resolves variable references against the host-supplied
// data, with zero or more `let` bindings shadowing it. It is built
// fresh for every Evaluate call (§3.4) and is itself immutable once
// constructed: binding a new name returns a new Environment that links
// back to its parent, the same persistent-list shape the teacher uses
// for Tcl's nested call frames, generalized here from mutable
// dictionaries-per-frame to an immutable chain since amoskeag has no
// assignment, only `let`.
type Environment struct {
	name   string
	value  Value
	parent *Environment
	root   Value // the host data dictionary, shared by the whole chain
}

// NewEnvironment builds the root environment over the host's data,
// which must be a Dictionary Value (typically produced by FromGo or
// UnmarshalValue).
func NewEnvironment(data Value) *Environment {
	return &Environment{root: data}
}

// Bind returns a child environment where name resolves to value,
// shadowing any outer binding or top-level data field of the same
// name.
func (e *Environment) Bind(name string, value Value) *Environment {
	return &Environment{name: name, value: value, parent: e, root: e.root}
}

// Resolve looks up a dotted path rooted at name. It implements safe
// navigation (§3.4): a let-bound name wins over the host data; failing
// that, name is looked up as a key in the root data dictionary; every
// subsequent path segment walks one level of dictionary nesting, and a
// missing key or a non-dictionary intermediate yields Nil rather than
// an error. Resolve never fails.
func (e *Environment) Resolve(name string, path []string) Value {
	base, ok := e.lookup(name)
	if !ok {
		base = Nil()
	}
	for _, segment := range path {
		if base.Kind() != KindDictionary {
			return Nil()
		}
		next, found := base.Get(segment)
		if !found {
			return Nil()
		}
		base = next
	}
	return base
}

// lookup walks the let-binding chain first, then falls back to the
// root data dictionary.
func (e *Environment) lookup(name string) (Value, bool) {
	for frame := e; frame != nil && frame.parent != nil; frame = frame.parent {
		if frame.name == name {
			return frame.value, true
		}
	}
	if e.root.Kind() != KindDictionary {
		return Nil(), false
	}
	return e.root.Get(name)
}
