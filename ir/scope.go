package ir

// GlobalScope is the outermost scope of a translation unit: the implicit
// container for every declaration not nested in a namespace or class.
type GlobalScope struct {
	declBase
	members []Member
}

// NewGlobalScope returns an empty GlobalScope.
func NewGlobalScope() *GlobalScope {
	return &GlobalScope{}
}

func (s *GlobalScope) Members() []Member  { return s.members }
func (s *GlobalScope) AddMember(m Member) { s.members = append(s.members, m) }

// NamespaceDecl is a named scope nesting other declarations and
// namespaces.
type NamespaceDecl struct {
	declBase
	members []Member
}

// NewNamespaceDecl constructs a namespace declaration; loc may be nil.
func NewNamespaceDecl(name string, loc *Location) *NamespaceDecl {
	ns := &NamespaceDecl{}
	ns.name = name
	ns.location = loc
	return ns
}

func (n *NamespaceDecl) Members() []Member  { return n.members }
func (n *NamespaceDecl) AddMember(m Member) { n.members = append(n.members, m) }
