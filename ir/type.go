package ir

// Type is implemented by every IR type node: a size/alignment pair plus
// whatever shape-specific data the concrete type carries.
type Type interface {
	Member
	SizeInBits() int64
	AlignInBits() int64
	typ()
}

// typeDims holds the size/alignment pair every Type carries.
type typeDims struct {
	sizeInBits  int64
	alignInBits int64
}

func (d typeDims) SizeInBits() int64  { return d.sizeInBits }
func (d typeDims) AlignInBits() int64 { return d.alignInBits }

// pureTypeBase is embedded by Type variants that are not also
// declarations (pointer/reference/qualified types, function and method
// types): it supplies the Member marker in addition to the size/
// alignment pair that typeDims alone does not.
type pureTypeBase struct {
	typeDims
}

func (pureTypeBase) member() {}
func (pureTypeBase) typ()    {}

// TypeDecl is a fundamental type referred to only by name (e.g. "int",
// "char"), with no further structure.
type TypeDecl struct {
	declBase
	typeDims
}

func (t *TypeDecl) typ() {}

// NewTypeDecl constructs a fundamental type declaration.
func NewTypeDecl(name string, sizeInBits, alignInBits int64) *TypeDecl {
	t := &TypeDecl{}
	t.name = name
	t.sizeInBits = sizeInBits
	t.alignInBits = alignInBits
	return t
}

// QualifiedTypeDef adds const/volatile qualification to an underlying
// type.
type QualifiedTypeDef struct {
	pureTypeBase
	Underlying Type
	Qualifiers CVQualifier
}

// NewQualifiedTypeDef constructs a qualified type wrapping underlying.
func NewQualifiedTypeDef(underlying Type, qualifiers CVQualifier, sizeInBits, alignInBits int64) *QualifiedTypeDef {
	q := &QualifiedTypeDef{Underlying: underlying, Qualifiers: qualifiers}
	q.sizeInBits = sizeInBits
	q.alignInBits = alignInBits
	return q
}

// PointerTypeDef is a pointer to an underlying type.
type PointerTypeDef struct {
	pureTypeBase
	Pointee Type
}

// NewPointerTypeDef constructs a pointer type to pointee.
func NewPointerTypeDef(pointee Type, sizeInBits, alignInBits int64) *PointerTypeDef {
	p := &PointerTypeDef{Pointee: pointee}
	p.sizeInBits = sizeInBits
	p.alignInBits = alignInBits
	return p
}

// ReferenceTypeDef is a reference (lvalue or rvalue) to an underlying
// type.
type ReferenceTypeDef struct {
	pureTypeBase
	Referenced Type
	IsRValue   bool
}

// NewReferenceTypeDef constructs a reference type to referenced.
func NewReferenceTypeDef(referenced Type, isRValue bool, sizeInBits, alignInBits int64) *ReferenceTypeDef {
	r := &ReferenceTypeDef{Referenced: referenced, IsRValue: isRValue}
	r.sizeInBits = sizeInBits
	r.alignInBits = alignInBits
	return r
}

// TypedefDecl names an underlying type.
type TypedefDecl struct {
	declBase
	typeDims
	Underlying Type
}

func (t *TypedefDecl) typ() {}

// NewTypedefDecl constructs a typedef naming underlying.
func NewTypedefDecl(name string, underlying Type, loc *Location, vis Visibility) *TypedefDecl {
	t := &TypedefDecl{Underlying: underlying}
	t.name = name
	t.location = loc
	t.visibility = vis
	return t
}

// Enumerator is one name/value pair of an enum type.
type Enumerator struct {
	Name  string
	Value int64
}

// EnumTypeDecl is an enumeration: an underlying integral type plus an
// ordered list of enumerators.
type EnumTypeDecl struct {
	declBase
	typeDims
	Underlying  Type
	Enumerators []Enumerator
}

func (t *EnumTypeDecl) typ() {}

// NewEnumTypeDecl constructs an enum type declaration.
func NewEnumTypeDecl(name string, underlying Type, enumerators []Enumerator, loc *Location, vis Visibility) *EnumTypeDecl {
	e := &EnumTypeDecl{Underlying: underlying, Enumerators: enumerators}
	e.name = name
	e.location = loc
	e.visibility = vis
	return e
}

// FunctionType is the type of a free function: an ordered parameter list
// and a return type.
type FunctionType struct {
	pureTypeBase
	Parameters []*Parameter
	Return     Type
}

// NewFunctionType constructs a function type.
func NewFunctionType(parameters []*Parameter, ret Type, sizeInBits, alignInBits int64) *FunctionType {
	f := &FunctionType{Parameters: parameters, Return: ret}
	f.sizeInBits = sizeInBits
	f.alignInBits = alignInBits
	return f
}

// MethodType is a FunctionType that additionally references the class it
// is a member of (the implicit "this" parameter's pointee).
type MethodType struct {
	FunctionType
	Class *ClassDecl
}

// NewMethodType constructs a method type bound to class.
func NewMethodType(parameters []*Parameter, ret Type, class *ClassDecl, sizeInBits, alignInBits int64) *MethodType {
	m := &MethodType{Class: class}
	m.Parameters = parameters
	m.Return = ret
	m.sizeInBits = sizeInBits
	m.alignInBits = alignInBits
	return m
}
