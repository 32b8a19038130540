package build

import (
	"fmt"
	"strconv"

	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/ir"
)

// intAttr parses a decimal integer attribute value, defaulting to def
// when absent or malformed. Most size/alignment/offset attributes in the
// grammar are optional and default to 0 or -1 depending on field.
func intAttr(v string, ok bool, def int64) int64 {
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func boolAttr(v string, ok bool) bool {
	return ok && v == "yes"
}

// location reads the filepath/line/column attribute triple from get and
// interns it through tu's LocationManager. A missing or empty filepath
// yields a nil location; line/column present without a filepath is
// rejected as malformed input.
func location(tu *ir.TranslationUnit, get func(string) (string, bool)) (*ir.Location, error) {
	fp, hasFp := get("filepath")
	lineStr, hasLine := get("line")
	colStr, hasCol := get("column")

	if !hasFp || fp == "" {
		if (hasLine && lineStr != "" && lineStr != "0") || (hasCol && colStr != "" && colStr != "0") {
			return nil, fmt.Errorf("abixml: line/column attribute present without filepath")
		}
		return nil, nil
	}

	line := int(intAttr(lineStr, hasLine, 0))
	col := int(intAttr(colStr, hasCol, 0))
	return tu.Locations.Intern(fp, line, col), nil
}

// cursorLocation reads a location from the live cursor's current
// element.
func cursorLocation(ctx *rctx.Context) (*ir.Location, error) {
	return location(ctx.TU, ctx.Cursor.Attr)
}

// SchemaError reports a schema-mismatch failure: an unrecognized
// element tag, or an attribute (usually "type-id") whose value does not
// resolve against the current symbol table. abixml.ReadTranslationUnit
// and friends translate this into the exported *abixml.ParseError at
// the entry-point boundary; code inside this package only ever needs
// Element/Attribute, never the wrapped message.
type SchemaError struct {
	Element   string
	Attribute string
	Err       error
}

func (e *SchemaError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("abixml: %s: %s: %v", e.Element, e.Attribute, e.Err)
	}
	return fmt.Sprintf("abixml: %s: %v", e.Element, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// resolveType looks up id in ctx's type table. A missing type-id
// attribute (hasID false, or an empty value) is not an error: several
// elements are meaningful without one (a function's omitted return
// means void, a variadic parameter has no type at all). A type-id
// attribute that is present but does not resolve is always fatal, per
// the invariant that every type reference used by a builder must
// resolve in the current symbol table at the moment of resolution.
func resolveType(ctx *rctx.Context, element, id string, hasID bool) (ir.Type, error) {
	if !hasID || id == "" {
		return nil, nil
	}
	t := ctx.GetType(id)
	if t == nil {
		return nil, &SchemaError{Element: element, Attribute: "type-id", Err: fmt.Errorf("unresolved id %q", id)}
	}
	return t, nil
}
