package types

import "fmt"

// Declaration is a foreign declaration that can be given a unique symbol
// name. The set of implementations is closed; the mangler dispatches over it
// exhaustively and panics on anything else.
type Declaration interface {
	fmt.Stringer
	isDeclaration()
}

// StructDecl is a struct or union declaration. Spelling is the full type
// spelling as written in the header, e.g. "struct sockaddr_in" or "CGRect";
// it is the declaration's entire identity and is never normalized.
type StructDecl struct {
	Spelling string
}

func (*StructDecl) isDeclaration() {}

func (d *StructDecl) String() string { return d.Spelling }

// EnumDef is an enum definition. Base is the underlying integer type; it
// takes no part in the enum's mangled identity.
type EnumDef struct {
	Spelling string
	Base     Type
}

func (*EnumDef) isDeclaration() {}

func (d *EnumDef) String() string { return d.Spelling }

// TypedefDef defines a type alias. Mangling the definition names the alias
// slot itself, while a TypedefRef use of the alias encodes as the Aliased
// type.
type TypedefDef struct {
	Name    string
	Aliased Type
}

func (*TypedefDef) isDeclaration() {}

func (d *TypedefDef) String() string { return "typedef " + d.Name }

// Parameter is a function or method parameter. Only the type takes part in
// mangling; the name may differ freely between declarations of the same
// function.
type Parameter struct {
	Name string
	Type Type
}

// FunctionDecl is a C function declaration.
type FunctionDecl struct {
	Name       string
	Parameters []Parameter
	Return     Type
	Variadic   bool
}

func (*FunctionDecl) isDeclaration() {}

func (d *FunctionDecl) String() string { return d.Name }

// ConstantDef is a scalar constant exposed by a header.
type ConstantDef struct {
	Name string
	Type Type
}

func (*ConstantDef) isDeclaration() {}

func (d *ConstantDef) String() string { return d.Name }

// WrappedMacroDef is a constant derived from an object-like preprocessor
// macro. It shares a symbol family with ConstantDef: equal name and type
// yield the same unique symbol name.
type WrappedMacroDef struct {
	Name string
	Type Type
}

func (*WrappedMacroDef) isDeclaration() {}

func (d *WrappedMacroDef) String() string { return d.Name }

// GlobalDecl is a global variable declaration.
type GlobalDecl struct {
	Name string
	Type Type
}

func (*GlobalDecl) isDeclaration() {}

func (d *GlobalDecl) String() string { return d.Name }
