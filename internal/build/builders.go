package build

import (
	"github.com/antchfx/xmlquery"

	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

// snapshotLocation reads a location off a detached snapshot node, the
// same way cursorLocation does for the live cursor.
func snapshotLocation(ctx *rctx.Context, node *xmlquery.Node) (*ir.Location, error) {
	return location(ctx.TU, func(name string) (string, bool) { return xmlcursor.Attr(node, name) })
}

// Builders below operate entirely on detached snapshot nodes (see
// xmlcursor.Cursor.Expand) and never touch the context's cursor-driven
// depth marker: pushes and pops are scoped to the call that made them,
// by ordinary recursion, rather than inferred from document depth. Only
// runDispatchLoop's cursor-driven sibling transitions use the depth
// marker (see rctx.Context.UpdateDepth).

func buildTypeDecl(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.TypeDecl, error) {
	name, _ := xmlcursor.Attr(node, "name")
	sizeStr, hasSize := xmlcursor.Attr(node, "size-in-bits")
	alignStr, hasAlign := xmlcursor.Attr(node, "alignment-in-bits")
	t := ir.NewTypeDecl(name, intAttr(sizeStr, hasSize, 0), intAttr(alignStr, hasAlign, 0))
	if err := keySnapshotType(ctx, node, t, addToScope); err != nil {
		return nil, err
	}
	return t, nil
}

func buildQualifiedTypeDef(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.QualifiedTypeDef, error) {
	underlyingID, hasUnderlying := xmlcursor.Attr(node, "type-id")
	underlying, err := resolveType(ctx, "qualified-type-def", underlyingID, hasUnderlying)
	if err != nil {
		return nil, err
	}
	var quals ir.CVQualifier
	if v, ok := xmlcursor.Attr(node, "const"); ok && v == "yes" {
		quals |= ir.CVConst
	}
	if v, ok := xmlcursor.Attr(node, "volatile"); ok && v == "yes" {
		quals |= ir.CVVolatile
	}
	sizeStr, hasSize := xmlcursor.Attr(node, "size-in-bits")
	alignStr, hasAlign := xmlcursor.Attr(node, "alignment-in-bits")
	q := ir.NewQualifiedTypeDef(underlying, quals, intAttr(sizeStr, hasSize, 0), intAttr(alignStr, hasAlign, 0))
	if err := keySnapshotType(ctx, node, q, addToScope); err != nil {
		return nil, err
	}
	return q, nil
}

func buildPointerTypeDef(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.PointerTypeDef, error) {
	pointeeID, hasPointee := xmlcursor.Attr(node, "type-id")
	pointee, err := resolveType(ctx, "pointer-type-def", pointeeID, hasPointee)
	if err != nil {
		return nil, err
	}
	sizeStr, hasSize := xmlcursor.Attr(node, "size-in-bits")
	alignStr, hasAlign := xmlcursor.Attr(node, "alignment-in-bits")
	p := ir.NewPointerTypeDef(pointee, intAttr(sizeStr, hasSize, 0), intAttr(alignStr, hasAlign, 0))
	if err := keySnapshotType(ctx, node, p, addToScope); err != nil {
		return nil, err
	}
	return p, nil
}

func buildReferenceTypeDef(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.ReferenceTypeDef, error) {
	referencedID, hasReferenced := xmlcursor.Attr(node, "type-id")
	referenced, err := resolveType(ctx, "reference-type-def", referencedID, hasReferenced)
	if err != nil {
		return nil, err
	}
	kind, _ := xmlcursor.Attr(node, "kind")
	sizeStr, hasSize := xmlcursor.Attr(node, "size-in-bits")
	alignStr, hasAlign := xmlcursor.Attr(node, "alignment-in-bits")
	r := ir.NewReferenceTypeDef(referenced, kind == "rvalue", intAttr(sizeStr, hasSize, 0), intAttr(alignStr, hasAlign, 0))
	if err := keySnapshotType(ctx, node, r, addToScope); err != nil {
		return nil, err
	}
	return r, nil
}

func buildTypedefDecl(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.TypedefDecl, error) {
	name, _ := xmlcursor.Attr(node, "name")
	underlyingID, hasUnderlying := xmlcursor.Attr(node, "type-id")
	underlying, err := resolveType(ctx, "typedef-decl", underlyingID, hasUnderlying)
	if err != nil {
		return nil, err
	}
	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")
	t := ir.NewTypedefDecl(name, underlying, loc, ir.ParseVisibility(visStr))
	if err := keySnapshotType(ctx, node, t, addToScope); err != nil {
		return nil, err
	}
	return t, nil
}

func buildEnumTypeDecl(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.EnumTypeDecl, error) {
	name, _ := xmlcursor.Attr(node, "name")
	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")

	var underlying ir.Type
	var enumerators []ir.Enumerator
	for _, child := range xmlcursor.Children(node) {
		switch xmlcursor.Name(child) {
		case "underlying-type":
			typeID, hasType := xmlcursor.Attr(child, "type-id")
			u, err := resolveType(ctx, "underlying-type", typeID, hasType)
			if err != nil {
				return nil, err
			}
			underlying = u
		case "enumerator":
			enName, _ := xmlcursor.Attr(child, "name")
			valStr, hasVal := xmlcursor.Attr(child, "value")
			enumerators = append(enumerators, ir.Enumerator{
				Name:  enName,
				Value: intAttr(valStr, hasVal, 0),
			})
		}
	}

	e := ir.NewEnumTypeDecl(name, underlying, enumerators, loc, ir.ParseVisibility(visStr))
	if err := keySnapshotType(ctx, node, e, addToScope); err != nil {
		return nil, err
	}
	return e, nil
}

// keySnapshotType keys t by node's id attribute (when present) and
// pushes it onto the scope stack.
func keySnapshotType(ctx *rctx.Context, node *xmlquery.Node, t ir.Type, addToScope bool) error {
	id, hasID := xmlcursor.Attr(node, "id")
	if hasID && id != "" {
		return ctx.PushAndKeyType(t, id, addToScope)
	}
	ctx.PushDecl(t, addToScope)
	return nil
}

// BuildType resolves node into an ir.Type according to its tag. The
// grammar fixes node's tag unambiguously once read, so this collapses
// what libabigail models as a try-each-in-turn polymorphic dispatch into
// a direct switch -- same selection outcome, without the indirection a
// known discriminant doesn't need.
func BuildType(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (ir.Type, error) {
	switch xmlcursor.Name(node) {
	case "type-decl":
		return buildTypeDecl(ctx, node, addToScope)
	case "qualified-type-def":
		return buildQualifiedTypeDef(ctx, node, addToScope)
	case "pointer-type-def":
		return buildPointerTypeDef(ctx, node, addToScope)
	case "reference-type-def":
		return buildReferenceTypeDef(ctx, node, addToScope)
	case "typedef-decl":
		return buildTypedefDecl(ctx, node, addToScope)
	case "enum-decl":
		return buildEnumTypeDecl(ctx, node, addToScope)
	case "class-decl":
		return BuildClassDecl(ctx, node, addToScope)
	default:
		return nil, unknownElement(xmlcursor.Name(node))
	}
}

// buildParameter builds a function/method parameter. A variadic
// parameter ("is-variadic=\"yes\"") carries no type-id at all, per the
// attribute semantics table; every other parameter's type-id must
// resolve.
func buildParameter(ctx *rctx.Context, node *xmlquery.Node) (*ir.Parameter, error) {
	isVariadic := boolAttr(xmlcursor.Attr(node, "is-variadic"))
	typeID, hasType := xmlcursor.Attr(node, "type-id")
	var typ ir.Type
	if !isVariadic {
		t, err := resolveType(ctx, "parameter", typeID, hasType)
		if err != nil {
			return nil, err
		}
		typ = t
	}
	return &ir.Parameter{
		Type:         typ,
		IsVariadic:   isVariadic,
		IsArtificial: boolAttr(xmlcursor.Attr(node, "is-artificial")),
	}, nil
}

// buildFunctionDecl builds a function-decl, attaching a method-type to
// owningClass when non-nil (member-function context). It returns a nil
// declaration, without error, for a function-decl carrying neither a
// name nor a mangled-name: such elements show up as placeholders in some
// real-world dumps and are treated as absent rather than malformed.
func buildFunctionDecl(ctx *rctx.Context, node *xmlquery.Node, owningClass *ir.ClassDecl, addToScope bool) (*ir.FunctionDecl, error) {
	name, _ := xmlcursor.Attr(node, "name")
	mangled, _ := xmlcursor.Attr(node, "mangled-name")
	if name == "" && mangled == "" {
		return nil, nil
	}

	var parameters []*ir.Parameter
	var ret ir.Type
	for _, child := range xmlcursor.Children(node) {
		switch xmlcursor.Name(child) {
		case "parameter":
			p, err := buildParameter(ctx, child)
			if err != nil {
				return nil, err
			}
			parameters = append(parameters, p)
		case "return":
			typeID, hasType := xmlcursor.Attr(child, "type-id")
			r, err := resolveType(ctx, "return", typeID, hasType)
			if err != nil {
				return nil, err
			}
			ret = r
		}
	}

	sizeStr, hasSize := xmlcursor.Attr(node, "size-in-bits")
	alignStr, hasAlign := xmlcursor.Attr(node, "alignment-in-bits")
	size := intAttr(sizeStr, hasSize, 0)
	align := intAttr(alignStr, hasAlign, 0)

	var funcType ir.Type
	if owningClass != nil {
		funcType = ir.NewMethodType(parameters, ret, owningClass, size, align)
	} else {
		funcType = ir.NewFunctionType(parameters, ret, size, align)
	}

	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")
	bindStr, _ := xmlcursor.Attr(node, "binding")
	declaredInline := boolAttr(xmlcursor.Attr(node, "declared-inline"))

	fn := ir.NewFunctionDecl(name, funcType, mangled, declaredInline, loc, ir.ParseVisibility(visStr), ir.ParseBinding(bindStr))
	ctx.PushDecl(fn, addToScope)
	return fn, nil
}
