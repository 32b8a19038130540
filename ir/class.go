package ir

// BaseSpec is one base-class relationship of a ClassDecl.
type BaseSpec struct {
	Class              *ClassDecl
	Access             Access
	LayoutOffsetInBits int64 // -1 when the base is not laid out
	IsVirtual          bool
}

// DataMember is a class's non-static or static data member: a VarDecl
// plus its access specifier and layout.
type DataMember struct {
	Var          *VarDecl
	Access       Access
	IsLaidOut    bool
	OffsetInBits int64
	IsStatic     bool
}

// MemberFunction is a class's member function: a FunctionDecl (whose
// FuncType is a *MethodType bound to the class, static or not) plus
// access, virtuality and special-member flags.
type MemberFunction struct {
	Method        *FunctionDecl
	Access        Access
	VtableOffset  int64
	IsVirtual     bool
	IsStatic      bool
	IsConstructor bool
	IsDestructor  bool
	IsConst       bool
}

// ClassDecl is simultaneously a declaration, a type, and a scope: it
// owns base-class relationships, member types (through the generic
// ScopeDecl member list), data members, member functions, and member
// templates.
type ClassDecl struct {
	declBase
	typeDims

	IsDeclarationOnly bool
	// DefinitionOf, when set, means this ClassDecl is the full
	// definition that replaced an earlier declaration-only ClassDecl;
	// the earlier value is left untouched so existing weak references
	// to it stay valid (spec 9, "declaration-only vs definition
	// replacement").
	DefinitionOf *ClassDecl

	memberTypes []Member

	Bases                   []*BaseSpec
	DataMembers             []*DataMember
	MemberFunctions         []*MemberFunction
	MemberFunctionTemplates []*MemberFunctionTemplate
	MemberClassTemplates    []*MemberClassTemplate
}

func (c *ClassDecl) typ() {}

func (c *ClassDecl) Members() []Member  { return c.memberTypes }
func (c *ClassDecl) AddMember(m Member) { c.memberTypes = append(c.memberTypes, m) }

// NewClassDecl constructs a class declaration; sizeInBits/alignInBits are
// meaningless (and conventionally zero) when declarationOnly is true.
func NewClassDecl(name string, declarationOnly bool, sizeInBits, alignInBits int64, loc *Location, vis Visibility) *ClassDecl {
	c := &ClassDecl{IsDeclarationOnly: declarationOnly}
	c.name = name
	c.location = loc
	c.visibility = vis
	c.sizeInBits = sizeInBits
	c.alignInBits = alignInBits
	return c
}

// AddDataMember appends a data member.
func (c *ClassDecl) AddDataMember(dm *DataMember) {
	c.DataMembers = append(c.DataMembers, dm)
}

// AddMemberFunction appends a member function.
func (c *ClassDecl) AddMemberFunction(mf *MemberFunction) {
	c.MemberFunctions = append(c.MemberFunctions, mf)
}

// AddBase appends a base-class relationship.
func (c *ClassDecl) AddBase(b *BaseSpec) {
	c.Bases = append(c.Bases, b)
}
