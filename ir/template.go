package ir

// TemplateParameter is implemented by every kind of template parameter: a
// type parameter, a non-type parameter, a template template parameter, or
// a type composition (a type parameter rewritten through a pointer,
// reference or qualification).
type TemplateParameter interface {
	Index() int
	templateParam()
}

// templateParamBase supplies the index every template parameter carries,
// the same role declBase plays for declarations.
type templateParamBase struct {
	index int
}

func (t templateParamBase) Index() int      { return t.index }
func (t templateParamBase) templateParam()  {}

// TypeTParameter is an ordinary type template parameter ("class T").
type TypeTParameter struct {
	templateParamBase
	Name string
}

// NewTypeTParameter constructs a type template parameter at index.
func NewTypeTParameter(index int, name string) *TypeTParameter {
	p := &TypeTParameter{Name: name}
	p.index = index
	return p
}

// NonTypeTParameter is a non-type template parameter of a concrete type
// ("int N").
type NonTypeTParameter struct {
	templateParamBase
	Name string
	Type Type
}

// NewNonTypeTParameter constructs a non-type template parameter at index.
func NewNonTypeTParameter(index int, name string, typ Type) *NonTypeTParameter {
	p := &NonTypeTParameter{Name: name, Type: typ}
	p.index = index
	return p
}

// TemplateTParameter is a template template parameter ("template<class>
// class T"), itself carrying an ordered list of template parameters.
type TemplateTParameter struct {
	templateParamBase
	Name       string
	Parameters []TemplateParameter
}

// NewTemplateTParameter constructs a template template parameter at index.
func NewTemplateTParameter(index int, name string, parameters []TemplateParameter) *TemplateTParameter {
	p := &TemplateTParameter{Name: name, Parameters: parameters}
	p.index = index
	return p
}

// TypeComposition rewrites an earlier template parameter through a
// pointer, reference, or qualification (e.g. "T*" appearing later in the
// same parameter list).
type TypeComposition struct {
	templateParamBase
	Composed Type
}

// NewTypeComposition constructs a type-composition template parameter at
// index.
func NewTypeComposition(index int, composed Type) *TypeComposition {
	p := &TypeComposition{Composed: composed}
	p.index = index
	return p
}

// templateBase supplies the location/visibility/binding/scope fields
// shared by FunctionTemplate and ClassTemplate, neither of which is a
// full Decl (templates are not looked up by name the way ordinary
// declarations are) but both of which can be attached to an enclosing
// scope and so need a scope back-reference.
type templateBase struct {
	location   *Location
	visibility Visibility
	binding    Binding
	scope      ScopeDecl
}

func (t *templateBase) member()               {}
func (t *templateBase) Location() *Location    { return t.location }
func (t *templateBase) Visibility() Visibility { return t.visibility }
func (t *templateBase) Binding() Binding       { return t.binding }
func (t *templateBase) Scope() ScopeDecl       { return t.scope }
func (t *templateBase) SetScope(s ScopeDecl)   { t.scope = s }

// FunctionTemplate is a function template: its ordered template
// parameters and the function declaration pattern they parameterize.
type FunctionTemplate struct {
	templateBase
	Parameters []TemplateParameter
	Pattern    *FunctionDecl
}

// NewFunctionTemplate constructs a function template.
func NewFunctionTemplate(parameters []TemplateParameter, pattern *FunctionDecl, loc *Location, vis Visibility, bind Binding) *FunctionTemplate {
	t := &FunctionTemplate{Parameters: parameters, Pattern: pattern}
	t.location = loc
	t.visibility = vis
	t.binding = bind
	return t
}

// ClassTemplate is a class template: its ordered template parameters and
// the class declaration pattern they parameterize.
type ClassTemplate struct {
	templateBase
	Parameters []TemplateParameter
	Pattern    *ClassDecl
}

// NewClassTemplate constructs a class template.
func NewClassTemplate(parameters []TemplateParameter, pattern *ClassDecl, loc *Location, vis Visibility) *ClassTemplate {
	t := &ClassTemplate{Parameters: parameters, Pattern: pattern}
	t.location = loc
	t.visibility = vis
	return t
}

// MemberFunctionTemplate is a class's member function template.
type MemberFunctionTemplate struct {
	Template      *FunctionTemplate
	Access        Access
	IsStatic      bool
	IsConstructor bool
	IsDestructor  bool
	IsConst       bool
}

// MemberClassTemplate is a class's member class template.
type MemberClassTemplate struct {
	Template *ClassTemplate
	Access   Access
	IsStatic bool
}
