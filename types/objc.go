package types

// ObjCPointer is the Objective-C pointer family of type references. The
// family canonicalizes much coarser than the C side: object pointers share a
// single encoding regardless of pointee class, and any required
// disambiguation comes from the enclosing method's encoding string.
type ObjCPointer interface {
	Type
	isObjCPointer()
}

// ObjCObjectPointer is a pointer to instances of a known class, e.g.
// NSString *. Class records the pointee class for consumers that need it; it
// is not part of the pointer's encoding.
type ObjCObjectPointer struct {
	Class *ObjCClass
}

func (ObjCObjectPointer) isType()        {}
func (ObjCObjectPointer) isObjCPointer() {}

// ObjCClassPointer is the Class type.
type ObjCClassPointer struct{}

func (ObjCClassPointer) isType()        {}
func (ObjCClassPointer) isObjCPointer() {}

// ObjCID is the id type.
type ObjCID struct{}

func (ObjCID) isType()        {}
func (ObjCID) isObjCPointer() {}

// ObjCInstanceType is the instancetype return type.
type ObjCInstanceType struct{}

func (ObjCInstanceType) isType()        {}
func (ObjCInstanceType) isObjCPointer() {}

// ObjCBlockPointer is a block with the given parameter and return types.
type ObjCBlockPointer struct {
	Parameters []Type
	Return     Type
}

func (ObjCBlockPointer) isType()        {}
func (ObjCBlockPointer) isObjCPointer() {}

// ObjCClass is an Objective-C class declaration.
type ObjCClass struct {
	Name string
}

func (*ObjCClass) isDeclaration() {}

func (c *ObjCClass) String() string { return "@interface " + c.Name }

// ObjCMetaClass is the metaclass of a class. It carries no name of its own:
// its identity is the class's name under a distinct kind tag, so class and
// metaclass symbols can never collide. Class is never nil.
type ObjCMetaClass struct {
	Class *ObjCClass
}

func (*ObjCMetaClass) isDeclaration() {}

func (c *ObjCMetaClass) String() string { return "@interface " + c.Class.Name + " (meta)" }

// ObjCProtocol is a protocol declaration.
type ObjCProtocol struct {
	Name string
}

func (*ObjCProtocol) isDeclaration() {}

func (p *ObjCProtocol) String() string { return "@protocol " + p.Name }

// ObjCCategory is a category named Name on Class. Class is never nil.
type ObjCCategory struct {
	Name  string
	Class *ObjCClass
}

func (*ObjCCategory) isDeclaration() {}

func (c *ObjCCategory) String() string { return "@interface " + c.Class.Name + "(" + c.Name + ")" }

// ObjCMethod is a class or instance method. Encoding is the raw runtime type
// encoding string; the engine carries it verbatim and never parses it.
// Selector plus Encoding is the method's entire mangled identity; the
// Parameters and Return fields take no part in it.
type ObjCMethod struct {
	Selector      string
	Encoding      string
	Parameters    []Parameter
	Return        Type
	IsClassMethod bool
}

func (*ObjCMethod) isDeclaration() {}

func (m *ObjCMethod) String() string {
	if m.IsClassMethod {
		return "+" + m.Selector
	}
	return "-" + m.Selector
}

// ObjCProperty is a declared property. Getter and Setter carry the accessor
// methods when the indexer resolved them; property identity is the name
// alone.
type ObjCProperty struct {
	Name   string
	Getter *ObjCMethod
	Setter *ObjCMethod
}

func (*ObjCProperty) isDeclaration() {}

func (p *ObjCProperty) String() string { return "@property " + p.Name }
