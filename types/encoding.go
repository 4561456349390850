package types

import (
	"fmt"
	"strings"
)

// Canonical returns the mangling encoding of a foreign type.
//
// The encoding identifies a type up to binary compatibility: typedef
// aliasing is stripped, array bounds are discarded and Bool folds onto the
// char width, while pointee const-qualification and the exact integer and
// record spellings stay significant.
//
// Canonical is total over the closed Type set and panics on anything else,
// including nil. An out-of-set value means the type model grew without this
// encoding keeping up; no degraded name is ever produced.
func Canonical(t Type) string {
	switch t := t.(type) {
	case Void:
		return "void"
	case Bool, Char:
		return "char"
	case Integer:
		return t.Spelling
	case Floating:
		return t.Spelling
	case Record:
		return t.Decl.Spelling
	case Enum:
		return t.Def.Spelling
	case Pointer:
		if t.PointeeIsConst {
			return "const " + Canonical(t.Pointee) + "*"
		}
		return Canonical(t.Pointee) + "*"
	case ConstArray:
		return Canonical(t.Elem) + "[]"
	case IncompleteArray:
		return Canonical(t.Elem) + "[]"
	case TypedefRef:
		return Canonical(t.Def.Aliased)
	case ObjCPointer:
		return canonicalObjCPointer(t)
	default:
		panic(fmt.Sprintf("types: unrepresentable foreign type %T", t))
	}
}

func canonicalObjCPointer(p ObjCPointer) string {
	switch p := p.(type) {
	case ObjCObjectPointer:
		return "objc:objectptr"
	case ObjCClassPointer:
		return "objc:classptr"
	case ObjCID:
		return "objc:id"
	case ObjCInstanceType:
		return "objc:instance"
	case ObjCBlockPointer:
		params := make([]string, len(p.Parameters))
		for i, pt := range p.Parameters {
			params[i] = Canonical(pt)
		}
		return "objc:blockptr(" + strings.Join(params, ";") + ")" + Canonical(p.Return)
	default:
		panic(fmt.Sprintf("types: unrepresentable Objective-C pointer %T", p))
	}
}
