// Package xmlcursor adapts antchfx/xmlquery's fully-parsed document tree
// behind a pull-style, depth-aware cursor: Advance/Kind/Name/Attr/Depth,
// plus Expand for handlers that need to recurse over a subtree directly.
//
// xmlquery parses the whole document up front, the same way
// go-tree-sitter does for the teacher's internal/cst package; Cursor
// plays exactly the role internal/cst.Node plays there, performing its
// own pre-order walk with depth bookkeeping over an already-built tree
// rather than exposing that tree to callers.
package xmlcursor

import (
	"io"

	"github.com/antchfx/xmlquery"
)

// Kind identifies what sort of position the cursor is currently at.
type Kind int

const (
	KindNone Kind = iota
	KindElement
)

// Cursor walks a parsed XML document one element at a time, in document
// order, depth-first.
type Cursor struct {
	doc     *xmlquery.Node
	cur     *xmlquery.Node
	stack   []*xmlquery.Node
	started bool
}

// New parses r as XML and returns a Cursor positioned before the
// document's first element.
func New(r io.Reader) (*Cursor, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Cursor{doc: doc}, nil
}

func isElement(n *xmlquery.Node) bool {
	return n != nil && n.Type == xmlquery.ElementNode
}

func firstElementChild(n *xmlquery.Node) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c) {
			return c
		}
	}
	return nil
}

func nextElementSibling(n *xmlquery.Node) *xmlquery.Node {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if isElement(c) {
			return c
		}
	}
	return nil
}

// Advance moves the cursor to the next element in document order,
// descending into children before siblings. It returns false once the
// document is exhausted.
func (c *Cursor) Advance() bool {
	if !c.started {
		c.started = true
		if first := firstElementChild(c.doc); first != nil {
			c.cur = first
			return true
		}
		return false
	}
	if c.cur == nil {
		return false
	}
	if child := firstElementChild(c.cur); child != nil {
		c.stack = append(c.stack, c.cur)
		c.cur = child
		return true
	}
	return c.advancePastCurrent()
}

// AdvancePastSubtree moves the cursor to whatever follows the current
// element's entire subtree in document order, without descending into
// it. A handler that has already consumed an element's subtree via
// Expand calls this instead of Advance so the dispatch loop does not
// re-visit children it already built from the snapshot.
func (c *Cursor) AdvancePastSubtree() bool {
	return c.advancePastCurrent()
}

func (c *Cursor) advancePastCurrent() bool {
	for c.cur != nil {
		if sib := nextElementSibling(c.cur); sib != nil {
			c.cur = sib
			return true
		}
		if len(c.stack) == 0 {
			c.cur = nil
			return false
		}
		c.cur = c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
	}
	return false
}

// Kind reports what the cursor is currently positioned on.
func (c *Cursor) Kind() Kind {
	if c.cur == nil {
		return KindNone
	}
	return KindElement
}

// Name returns the current element's tag name, or "" if the cursor is
// not on an element.
func (c *Cursor) Name() string {
	if c.cur == nil {
		return ""
	}
	return c.cur.Data
}

// Attr looks up an attribute on the current element by name.
func (c *Cursor) Attr(name string) (string, bool) {
	if c.cur == nil {
		return "", false
	}
	return Attr(c.cur, name)
}

// Depth returns the nesting depth of the current element; the document's
// root element is depth 0.
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// Expand returns the current element as a detached subtree snapshot:
// callers may recurse over its children (via Children/Attr/DepthOf
// below) without advancing the cursor.
func (c *Cursor) Expand() *xmlquery.Node {
	return c.cur
}

// DepthOf computes the nesting depth of a snapshot node returned by
// Expand (or one of its descendants), using the same root-is-0
// convention as Cursor.Depth.
func DepthOf(n *xmlquery.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		if isElement(p) {
			d++
		}
	}
	return d
}

// Children returns the element children of n in document order,
// skipping text/comment/declaration nodes.
func Children(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c) {
			out = append(out, c)
		}
	}
	return out
}

// Attr looks up an attribute by name directly on a snapshot node.
func Attr(n *xmlquery.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Name returns a snapshot node's tag name.
func Name(n *xmlquery.Node) string {
	return n.Data
}
