package cinterop

import "fmt"

// ManglingContext describes the lexical scope enclosing a declaration: no
// scope at all, a top-level module, or an entity nested in a parent scope.
// Contexts are immutable values and the set of implementations is closed.
// Two contexts with equal resolved prefixes are interchangeable for mangling
// no matter how they were constructed.
type ManglingContext interface {
	fmt.Stringer

	// Prefix returns the resolved scope prefix the mangler places in front
	// of a declaration's own identity.
	Prefix() string

	isManglingContext()
}

// EmptyContext is the absence of any enclosing scope.
type EmptyContext struct{}

func (EmptyContext) isManglingContext() {}

// Prefix returns "".
func (EmptyContext) Prefix() string { return "" }

func (EmptyContext) String() string { return "empty scope" }

// ModuleContext scopes declarations to a named top-level module.
type ModuleContext struct {
	Name string
}

func (ModuleContext) isManglingContext() {}

// Prefix returns the module name.
func (c ModuleContext) Prefix() string { return c.Name }

func (c ModuleContext) String() string { return "module " + c.Name }

// EntityContext scopes declarations to a named entity, optionally nested in
// a parent scope. Chains are acyclic by construction: a parent can only be a
// previously constructed context.
//
// A nil Parent resolves to the bare entity name. A present parent always
// contributes its prefix and a "." separator, so an explicit EmptyContext
// parent yields ".name" rather than "name".
type EntityContext struct {
	Name   string
	Parent ManglingContext
}

func (EntityContext) isManglingContext() {}

// Prefix returns the parent's prefix joined to the entity name with ".", or
// the bare name when Parent is nil.
func (c EntityContext) Prefix() string {
	if c.Parent == nil {
		return c.Name
	}
	return c.Parent.Prefix() + "." + c.Name
}

func (c EntityContext) String() string { return "entity " + c.Prefix() }
