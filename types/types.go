// Package types models the C and Objective-C declarations and type
// references produced by a header indexer. It is the input contract of the
// mangling engine in the parent package: both the Declaration and the Type
// set are closed, and every consumer dispatches over them exhaustively.
package types

// Type is a reference to a foreign type. The set of implementations is
// closed; values outside of it make Canonical panic.
type Type interface {
	isType()
}

// Void is the C void type.
type Void struct{}

func (Void) isType() {}

// Bool is the C/Objective-C boolean type (_Bool, BOOL).
type Bool struct{}

func (Bool) isType() {}

// Char is the C char type.
type Char struct{}

func (Char) isType() {}

// Integer is a fixed-width integer type. Spelling is the canonical
// stdint-style name assigned by the indexer, e.g. "int32_t" or "uint64_t",
// and carries the width and signedness information the encoding needs.
type Integer struct {
	Size     int
	Signed   bool
	Spelling string
}

func (Integer) isType() {}

// Floating is a floating-point type, e.g. "float" or "double".
type Floating struct {
	Size     int
	Spelling string
}

func (Floating) isType() {}

// Record is a use of a struct or union declaration as a type. Decl is never
// nil.
type Record struct {
	Decl *StructDecl
}

func (Record) isType() {}

// Enum is a use of an enum definition as a type. Def is never nil.
type Enum struct {
	Def *EnumDef
}

func (Enum) isType() {}

// Pointer is a C pointer. PointeeIsConst records const-qualification of the
// pointee, which is part of the pointer's mangled identity: const char* and
// char* are distinct symbols.
type Pointer struct {
	Pointee        Type
	PointeeIsConst bool
}

func (Pointer) isType() {}

// ConstArray is an array with a known constant length, e.g. char[16]. The
// length is not part of the mangled identity.
type ConstArray struct {
	Elem   Type
	Length int64
}

func (ConstArray) isType() {}

// IncompleteArray is an array of unknown or variable length, e.g. char[].
type IncompleteArray struct {
	Elem Type
}

func (IncompleteArray) isType() {}

// TypedefRef is a use of a typedef as a type. The alias is transparent to
// mangling; only mangling the TypedefDef declaration itself names the alias
// slot. Def is never nil.
type TypedefRef struct {
	Def *TypedefDef
}

func (TypedefRef) isType() {}
