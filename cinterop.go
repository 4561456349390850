// Package cinterop assigns stable, globally unique symbol names to C and
// Objective-C declarations, so that interop bindings generated in separate
// compilation units resolve to the same linker-level keys.
//
// The declaration and type model lives in the types subpackage and is
// supplied by an external header indexer; this package only names it. A
// Mangler bound to a ManglingContext produces the names. Mangling is a pure
// function of context and declaration shape: two declarations that agree on
// everything the foreign ABI can observe receive equal names, while
// parameter names and typedef spelling differences never separate them.
package cinterop

import "github.com/appsworld/go-cinterop/types"

var defaultMangler = NewMangler(EmptyContext{})

// UniqueSymbolName returns the unique symbol name of d outside of any
// enclosing scope. It is shorthand for mangling with a Mangler over
// EmptyContext.
func UniqueSymbolName(d types.Declaration) string {
	return defaultMangler.UniqueSymbolName(d)
}
