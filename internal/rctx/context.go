// Package rctx is the read context threaded through every handler and
// builder during a single abi-instr parse: the XML cursor, the three
// id-keyed symbol tables, the active lexical scope stack, and the depth
// counter the scope/depth protocol is built around.
//
// Grounded conceptually on internal/ir/builder.go's builder struct, which
// carries mutable state across a single construction pass; generalized
// here from a flat statement list to a live scope stack, since this
// domain's declarations nest lexically instead of sitting in one block.
package rctx

import (
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

// Context is the per-parse mutable state for reading a single abi-instr
// document into a *ir.TranslationUnit.
type Context struct {
	Cursor *xmlcursor.Cursor
	TU     *ir.TranslationUnit

	baseDepth int
	depth     int

	types          map[string]ir.Type
	fnTemplates    map[string]*ir.FunctionTemplate
	classTemplates map[string]*ir.ClassTemplate

	scopeStack []ir.Member
}

// New creates a read context over cur for filling tu.
func New(cur *xmlcursor.Cursor, tu *ir.TranslationUnit) *Context {
	c := &Context{Cursor: cur, TU: tu}
	c.ResetTypeTable()
	return c
}

// ResetTypeTable clears every symbol table and the scope stack, and
// resets the depth counter to zero. Called once per abi-instr parse:
// symbol-table ids are unique per translation unit, not per document.
func (c *Context) ResetTypeTable() {
	c.types = make(map[string]ir.Type)
	c.fnTemplates = make(map[string]*ir.FunctionTemplate)
	c.classTemplates = make(map[string]*ir.ClassTemplate)
	c.depth = 0
	c.scopeStack = nil
}

// SetBaseDepth records the document depth of the abi-instr element this
// context is reading, so every subsequent depth computation (both live
// cursor positions and detached snapshot nodes) can be expressed
// relative to it. Needed because a corpus parses every abi-instr as part
// of the same underlying document tree, so their absolute depths differ
// from a standalone abi-instr's.
func (c *Context) SetBaseDepth(d int) { c.baseDepth = d }

// BaseDepth returns the depth recorded by SetBaseDepth.
func (c *Context) BaseDepth() int { return c.baseDepth }

// RelativeDepth converts an absolute document depth to one relative to
// BaseDepth.
func (c *Context) RelativeDepth(absolute int) int { return absolute - c.baseDepth }

// CurrentScope returns the nearest enclosing scope: the top of the scope
// stack if it is itself a scope, else the top's own enclosing scope
// (its weak back-reference), else nil.
func (c *Context) CurrentScope() ir.ScopeDecl {
	if len(c.scopeStack) == 0 {
		return nil
	}
	top := c.scopeStack[len(c.scopeStack)-1]
	if s, ok := top.(ir.ScopeDecl); ok {
		return s
	}
	if d, ok := top.(ir.Decl); ok {
		return d.Scope()
	}
	if d, ok := top.(interface{ Scope() ir.ScopeDecl }); ok {
		return d.Scope()
	}
	return nil
}

// PushDecl pushes m onto the scope stack. If addToScope, m is first
// attached as a member of the current scope (and, if m exposes a
// SetScope method, its scope back-reference is set).
func (c *Context) PushDecl(m ir.Member, addToScope bool) {
	if addToScope {
		if scope := c.CurrentScope(); scope != nil {
			scope.AddMember(m)
			if ss, ok := m.(interface{ SetScope(ir.ScopeDecl) }); ok {
				ss.SetScope(scope)
			}
		}
	}
	c.scopeStack = append(c.scopeStack, m)
}

// PopDecl pops and returns the top of the scope stack, or nil if empty.
func (c *Context) PopDecl() ir.Member {
	if len(c.scopeStack) == 0 {
		return nil
	}
	top := c.scopeStack[len(c.scopeStack)-1]
	c.scopeStack = c.scopeStack[:len(c.scopeStack)-1]
	return top
}

// StackLen returns the current scope stack depth, for callers that need
// to restore it exactly later (see PopTo). Snapshot-driven recursive
// builders (class-decl, function/class templates, and their member
// children) use StackLen/PopTo to unwind exactly what they pushed once
// they're done, by ordinary call/return discipline, rather than folding
// themselves into the depth-delta arithmetic UpdateDepth applies for
// cursor-driven sibling transitions -- that arithmetic assumes a flat
// stream of same-level siblings, which doesn't hold once the thing
// being closed out may itself be an arbitrarily nested builder call.
func (c *Context) StackLen() int { return len(c.scopeStack) }

// PopTo pops the scope stack back down to length n.
func (c *Context) PopTo(n int) {
	for len(c.scopeStack) > n {
		c.PopDecl()
	}
}

// SetDepth forces the settled depth marker, for a cursor-driven
// expand-and-build handler to re-synchronize it after a snapshot
// builder (which does not touch the depth marker at all) returns.
func (c *Context) SetDepth(d int) { c.depth = d }

func (c *Context) peek() ir.Member {
	if len(c.scopeStack) == 0 {
		return nil
	}
	return c.scopeStack[len(c.scopeStack)-1]
}

// GetType looks up a previously keyed type by id.
func (c *Context) GetType(id string) ir.Type { return c.types[id] }

// GetFnTemplate looks up a previously keyed function template by id.
func (c *Context) GetFnTemplate(id string) *ir.FunctionTemplate { return c.fnTemplates[id] }

// GetClassTemplate looks up a previously keyed class template by id.
func (c *Context) GetClassTemplate(id string) *ir.ClassTemplate { return c.classTemplates[id] }

// KeyType inserts t under id, failing if id is already present.
func (c *Context) KeyType(t ir.Type, id string) error {
	if _, exists := c.types[id]; exists {
		return duplicateID("type", id)
	}
	c.types[id] = t
	return nil
}

// KeyReplacementOfType overwrites any prior entry at id unconditionally.
// Used when a later declaration (e.g. a full class definition) replaces
// an earlier declaration-only placeholder at the same id.
func (c *Context) KeyReplacementOfType(t ir.Type, id string) {
	c.types[id] = t
}

// KeyFnTemplate inserts a function template under id, failing on
// duplicate.
func (c *Context) KeyFnTemplate(t *ir.FunctionTemplate, id string) error {
	if _, exists := c.fnTemplates[id]; exists {
		return duplicateID("function-template", id)
	}
	c.fnTemplates[id] = t
	return nil
}

// KeyClassTemplate inserts a class template under id, failing on
// duplicate.
func (c *Context) KeyClassTemplate(t *ir.ClassTemplate, id string) error {
	if _, exists := c.classTemplates[id]; exists {
		return duplicateID("class-template", id)
	}
	c.classTemplates[id] = t
	return nil
}

// PushAndKeyType combines attachment and keying: it fails (without
// touching the stack) if id is already keyed.
func (c *Context) PushAndKeyType(t ir.Type, id string, addToScope bool) error {
	if err := c.KeyType(t, id); err != nil {
		return err
	}
	c.PushDecl(t, addToScope)
	return nil
}

// Depth returns the context's current settled relative depth.
func (c *Context) Depth() int { return c.depth }

// AdvanceCursor advances the underlying cursor and applies the scope/
// depth protocol to the new position.
func (c *Context) AdvanceCursor() bool {
	if !c.Cursor.Advance() {
		return false
	}
	c.UpdateDepth(c.RelativeDepth(c.Cursor.Depth()))
	return true
}

// AdvancePastSubtree advances the cursor past the current element's
// whole subtree, for use after an expand-and-build handler has already
// consumed a snapshot. It deliberately does not itself update depth:
// snapshot builders never touch the depth marker, the calling handler
// re-synchronizes it with SetDepth, and the dispatch loop's next
// UpdateDepth call settles it against wherever the cursor lands next.
func (c *Context) AdvancePastSubtree() bool {
	return c.Cursor.AdvancePastSubtree()
}

// UpdateDepth applies the scope/depth protocol for a live cursor
// position at newDepth (already expressed relative to BaseDepth).
// Snapshot builders do not call it; their handlers use SetDepth instead.
// Descending (newDepth greater than the current depth) just advances the
// depth marker; stepping sideways or up pops (depth - newDepth + 1)
// entries off the scope stack.
//
// The extra "skip one more pop" rule below is a workaround, not a
// general principle: class members are wrapped in an extra XML element
// (e.g. data-member -> var-decl) that corresponds to a single IR node,
// which otherwise leaves the pop count one too high whenever a member
// sequence closes out back to the class's own depth or shallower -- the
// class itself would get popped a level early, one step before its
// sibling is actually reached.
func (c *Context) UpdateDepth(newDepth int) {
	if newDepth > c.depth {
		c.depth = newDepth
		return
	}
	pops := c.depth - newDepth + 1
	for pops > 0 {
		c.PopDecl()
		pops--
		if pops >= 2 {
			if _, isClass := c.peek().(*ir.ClassDecl); isClass {
				pops--
			}
		}
	}
	c.depth = newDepth
}

// DrainScopeStack pops every remaining entry off the scope stack. Called
// once a parse's dispatch loop has run out of cursor positions: EOF
// never synthesizes a trailing depth-0 event the way ordinary element
// traversal does, so nothing else would pop the outermost entries.
func (c *Context) DrainScopeStack() {
	for c.PopDecl() != nil {
	}
}
