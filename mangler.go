package cinterop

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/appsworld/go-cinterop/types"
)

var traceMangle = os.Getenv("GO_CINTEROP_TRACE_MANGLE") != ""

// Mangler computes unique symbol names for foreign declarations under a
// fixed mangling context. The context is resolved to its prefix once at
// construction; a Mangler holds no mutable state and any number of
// goroutines may share one.
type Mangler struct {
	context ManglingContext
	prefix  string
}

// NewMangler returns a mangler for the given context. A nil context is
// treated as EmptyContext.
func NewMangler(ctx ManglingContext) *Mangler {
	if ctx == nil {
		ctx = EmptyContext{}
	}
	return &Mangler{context: ctx, prefix: ctx.Prefix()}
}

// Context returns the context the mangler was constructed with.
func (m *Mangler) Context() ManglingContext { return m.context }

// Prefix returns the resolved scope prefix.
func (m *Mangler) Prefix() string { return m.prefix }

// UniqueSymbolName returns the stable symbol name of d under the mangler's
// context. Every name starts with a kind tag and a colon, which partitions
// the name space between declaration kinds, followed by the scope prefix and
// the declaration's own identity and type payload.
//
// Names are insensitive to anything the foreign ABI cannot observe:
// parameter names and typedef aliasing never change the result. They are
// sensitive to everything it can: pointer constness, integer and record
// spellings, Objective-C method encoding strings, and the enclosing scope.
//
// UniqueSymbolName panics when d is nil or outside the closed declaration
// set.
func (m *Mangler) UniqueSymbolName(d types.Declaration) string {
	var name string
	switch d := d.(type) {
	case *types.StructDecl:
		name = "structdecl:" + m.prefix + d.Spelling
	case *types.EnumDef:
		name = "enumdef:" + m.prefix + d.Spelling
	case *types.ObjCClass:
		name = "objcclass:" + m.prefix + d.Name
	case *types.ObjCMetaClass:
		name = "objcmetaclass:" + m.prefix + d.Class.Name
	case *types.ObjCProtocol:
		name = "objcprotocol:" + m.prefix + d.Name
	case *types.ObjCCategory:
		name = "objccategory:" + m.prefix + d.Class.Name + "+" + d.Name
	case *types.ObjCMethod:
		// Selector and encoding concatenated verbatim; the encoding string
		// already separates methods of equal selector and different shape.
		name = "objcmethod:" + m.prefix + d.Selector + d.Encoding
	case *types.ObjCProperty:
		name = "objcproperty:" + m.prefix + d.Name
	case *types.TypedefDef:
		name = "typedef:" + m.prefix + d.Name
	case *types.FunctionDecl:
		name = "funcdecl:" + m.prefix + d.Name + functionSignature(d)
	case *types.ConstantDef:
		name = "macrodef:" + m.prefix + d.Name + types.Canonical(d.Type)
	case *types.WrappedMacroDef:
		name = "macrodef:" + m.prefix + d.Name + types.Canonical(d.Type)
	case *types.GlobalDecl:
		name = "globaldecl:" + m.prefix + d.Name + types.Canonical(d.Type)
	default:
		panic(fmt.Sprintf("cinterop: unknown declaration kind %T", d))
	}
	if traceMangle {
		log.Printf("cinterop: mangled %s in %s as %s", d, m.context, name)
	}
	return name
}

func functionSignature(f *types.FunctionDecl) string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = types.Canonical(p.Type)
	}
	sig := "(" + strings.Join(params, ";")
	if f.Variadic {
		sig += "..."
	}
	return sig + ")" + types.Canonical(f.Return)
}
