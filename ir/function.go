package ir

// Parameter is one parameter of a function or method type.
type Parameter struct {
	Type         Type
	IsVariadic   bool
	IsArtificial bool // e.g. the implicit "this" parameter
}

// FunctionDecl is a function declaration: a name, a function type
// (either *FunctionType for a free function or *MethodType for a member
// function), and the usual declaration metadata.
type FunctionDecl struct {
	declBase
	FuncType         Type // *FunctionType or *MethodType
	IsDeclaredInline bool
}

// NewFunctionDecl constructs a function declaration.
func NewFunctionDecl(name string, funcType Type, mangledName string, isDeclaredInline bool, loc *Location, vis Visibility, bind Binding) *FunctionDecl {
	f := &FunctionDecl{FuncType: funcType, IsDeclaredInline: isDeclaredInline}
	f.name = name
	f.mangledName = mangledName
	f.location = loc
	f.visibility = vis
	f.binding = bind
	return f
}

// IsMethod reports whether this declaration's function type is a
// MethodType (i.e. it is a member function).
func (f *FunctionDecl) IsMethod() bool {
	_, ok := f.FuncType.(*MethodType)
	return ok
}
