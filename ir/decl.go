package ir

// Member is implemented by every IR node that can be attached as a
// member of an enclosing scope (a namespace, the global scope, or a
// class's member-type list). It carries no behavior beyond the marker:
// some members are full Decls, others (anonymous pointer/reference/
// qualified types) are bare Types.
//
// This mirrors internal/ir.Member in the teacher repo, which plays the
// same role for File's member list (Function, Global, ExternalMember all
// implement member() there with no other shared behavior).
type Member interface {
	member()
}

// Decl is implemented by every declaration-shaped IR node: a named
// entity with an optional mangled name, an optional source location,
// linkage attributes, and a weak back-reference to the scope that
// contains it.
type Decl interface {
	Member
	Name() string
	MangledName() string
	Location() *Location
	Visibility() Visibility
	Binding() Binding
	Scope() ScopeDecl
	SetScope(ScopeDecl)
	decl()
}

// ScopeDecl is a Decl that owns an ordered list of members and can have
// other declarations looked up and attached underneath it.
type ScopeDecl interface {
	Decl
	Members() []Member
	AddMember(Member)
}

// declBase implements the common Decl accessors; concrete declaration
// types embed it and add their own kind-specific fields, the same way
// internal/ir's node mixin supplies Pos() to every concrete IR node.
type declBase struct {
	name        string
	mangledName string
	location    *Location
	visibility  Visibility
	binding     Binding
	scope       ScopeDecl
}

func (d *declBase) member() {}
func (d *declBase) decl()   {}

func (d *declBase) Name() string           { return d.name }
func (d *declBase) MangledName() string    { return d.mangledName }
func (d *declBase) Location() *Location    { return d.location }
func (d *declBase) Visibility() Visibility { return d.visibility }
func (d *declBase) Binding() Binding       { return d.binding }
func (d *declBase) Scope() ScopeDecl       { return d.scope }
func (d *declBase) SetScope(s ScopeDecl)   { d.scope = s }
