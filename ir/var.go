package ir

// VarDecl is a variable declaration: a name, a type, and the usual
// declaration metadata. It is used both for free variables (direct
// members of a namespace or the global scope) and, wrapped in a
// DataMember, for class data members.
type VarDecl struct {
	declBase
	Type Type
}

// NewVarDecl constructs a variable declaration.
func NewVarDecl(name string, typ Type, mangledName string, loc *Location, vis Visibility, bind Binding) *VarDecl {
	v := &VarDecl{Type: typ}
	v.name = name
	v.mangledName = mangledName
	v.location = loc
	v.visibility = vis
	v.binding = bind
	return v
}
