package build

import (
	"github.com/antchfx/xmlquery"

	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

// BuildClassDecl builds a class-decl. A declaration-only class (per
// is-declaration-only="yes") carries just a name, size and alignment
// forced to zero, and no member children are parsed even if present.
//
// Keying happens after children are built, not before: a member-type
// that refers back to its own enclosing class by id (a self-referential
// nested type, or a def-of-decl-id definition completing an earlier
// declaration-only placeholder) must see whatever the symbol table
// already holds at that id rather than this class's still-under-
// construction entry.
//
// The class is pushed onto the scope stack so nested builders see it as
// current_scope, and popped back off -- via StackLen/PopTo, not depth
// arithmetic -- once its children are fully built: ordinary call/return
// scoping, not the cursor-driven depth-delta protocol runDispatchLoop
// uses between top-level siblings.
func BuildClassDecl(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.ClassDecl, error) {
	name, _ := xmlcursor.Attr(node, "name")
	declOnly := boolAttr(xmlcursor.Attr(node, "is-declaration-only"))
	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")

	var size, align int64
	if !declOnly {
		sizeStr, hasSize := xmlcursor.Attr(node, "size-in-bits")
		alignStr, hasAlign := xmlcursor.Attr(node, "alignment-in-bits")
		size = intAttr(sizeStr, hasSize, 0)
		align = intAttr(alignStr, hasAlign, 0)
	}

	class := ir.NewClassDecl(name, declOnly, size, align, loc, ir.ParseVisibility(visStr))
	mark := ctx.StackLen()
	ctx.PushDecl(class, addToScope)

	if !declOnly {
		for _, child := range xmlcursor.Children(node) {
			switch xmlcursor.Name(child) {
			case "base-class":
				if err := buildBaseClass(ctx, class, child); err != nil {
					return nil, err
				}
			case "member-type":
				if err := buildMemberType(ctx, child); err != nil {
					return nil, err
				}
			case "data-member":
				if err := buildDataMember(ctx, class, child); err != nil {
					return nil, err
				}
			case "member-function":
				if err := buildMemberFunction(ctx, class, child); err != nil {
					return nil, err
				}
			case "member-template":
				if err := buildMemberTemplate(ctx, class, child); err != nil {
					return nil, err
				}
			default:
				return nil, unknownElement(xmlcursor.Name(child))
			}
		}
	}

	ctx.PopTo(mark)

	if defOf, hasDefOf := xmlcursor.Attr(node, "def-of-decl-id"); hasDefOf && defOf != "" {
		if prior, ok := ctx.GetType(defOf).(*ir.ClassDecl); ok {
			class.DefinitionOf = prior
		}
	}

	if id, hasID := xmlcursor.Attr(node, "id"); hasID && id != "" {
		ctx.KeyReplacementOfType(class, id)
	}

	return class, nil
}

func buildBaseClass(ctx *rctx.Context, class *ir.ClassDecl, node *xmlquery.Node) error {
	typeID, hasType := xmlcursor.Attr(node, "type-id")
	resolved, err := resolveType(ctx, "base-class", typeID, hasType)
	if err != nil {
		return err
	}
	base, _ := resolved.(*ir.ClassDecl)
	accessStr, _ := xmlcursor.Attr(node, "access")
	offsetStr, hasOffset := xmlcursor.Attr(node, "layout-offset-in-bits")
	class.AddBase(&ir.BaseSpec{
		Class:              base,
		Access:             ir.ParseAccess(accessStr),
		LayoutOffsetInBits: intAttr(offsetStr, hasOffset, -1),
		IsVirtual:          boolAttr(xmlcursor.Attr(node, "is-virtual")),
	})
	return nil
}

func buildMemberType(ctx *rctx.Context, node *xmlquery.Node) error {
	for _, child := range xmlcursor.Children(node) {
		mark := ctx.StackLen()
		if _, err := BuildType(ctx, child, true); err != nil {
			return err
		}
		ctx.PopTo(mark)
	}
	return nil
}

func buildDataMember(ctx *rctx.Context, class *ir.ClassDecl, node *xmlquery.Node) error {
	accessStr, _ := xmlcursor.Attr(node, "access")
	static := boolAttr(xmlcursor.Attr(node, "static"))
	offsetStr, hasOffset := xmlcursor.Attr(node, "layout-offset-in-bits")

	for _, child := range xmlcursor.Children(node) {
		if xmlcursor.Name(child) != "var-decl" {
			return unknownElement(xmlcursor.Name(child))
		}
		mark := ctx.StackLen()
		v, err := buildVarDeclSnapshot(ctx, child, false)
		if err != nil {
			return err
		}
		ctx.PopTo(mark)
		class.AddDataMember(&ir.DataMember{
			Var:          v,
			Access:       ir.ParseAccess(accessStr),
			IsLaidOut:    hasOffset,
			OffsetInBits: intAttr(offsetStr, hasOffset, 0),
			IsStatic:     static,
		})
	}
	return nil
}

func buildVarDeclSnapshot(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.VarDecl, error) {
	name, _ := xmlcursor.Attr(node, "name")
	typeID, hasType := xmlcursor.Attr(node, "type-id")
	typ, err := resolveType(ctx, "var-decl", typeID, hasType)
	if err != nil {
		return nil, err
	}
	mangled, _ := xmlcursor.Attr(node, "mangled-name")
	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")
	bindStr, _ := xmlcursor.Attr(node, "binding")
	v := ir.NewVarDecl(name, typ, mangled, loc, ir.ParseVisibility(visStr), ir.ParseBinding(bindStr))
	ctx.PushDecl(v, addToScope)
	return v, nil
}

func buildMemberFunction(ctx *rctx.Context, class *ir.ClassDecl, node *xmlquery.Node) error {
	accessStr, _ := xmlcursor.Attr(node, "access")
	vtableStr, hasVtable := xmlcursor.Attr(node, "vtable-offset")
	static := boolAttr(xmlcursor.Attr(node, "static"))
	ctor := boolAttr(xmlcursor.Attr(node, "constructor"))
	dtor := boolAttr(xmlcursor.Attr(node, "destructor"))
	isConst := boolAttr(xmlcursor.Attr(node, "const"))

	for _, child := range xmlcursor.Children(node) {
		if xmlcursor.Name(child) != "function-decl" {
			return unknownElement(xmlcursor.Name(child))
		}
		mark := ctx.StackLen()
		fn, err := buildFunctionDecl(ctx, child, class, false)
		if err != nil {
			return err
		}
		if fn == nil {
			return unknownElement("function-decl")
		}
		ctx.PopTo(mark)
		class.AddMemberFunction(&ir.MemberFunction{
			Method:        fn,
			Access:        ir.ParseAccess(accessStr),
			VtableOffset:  intAttr(vtableStr, hasVtable, 0),
			IsVirtual:     hasVtable,
			IsStatic:      static,
			IsConstructor: ctor,
			IsDestructor:  dtor,
			IsConst:       isConst,
		})
	}
	return nil
}

func buildMemberTemplate(ctx *rctx.Context, class *ir.ClassDecl, node *xmlquery.Node) error {
	accessStr, _ := xmlcursor.Attr(node, "access")
	static := boolAttr(xmlcursor.Attr(node, "static"))
	ctor := boolAttr(xmlcursor.Attr(node, "constructor"))
	dtor := boolAttr(xmlcursor.Attr(node, "destructor"))
	isConst := boolAttr(xmlcursor.Attr(node, "const"))

	for _, child := range xmlcursor.Children(node) {
		switch xmlcursor.Name(child) {
		case "function-template-decl":
			mark := ctx.StackLen()
			ft, err := buildFunctionTemplate(ctx, child, false)
			if err != nil {
				return err
			}
			ctx.PopTo(mark)
			class.MemberFunctionTemplates = append(class.MemberFunctionTemplates, &ir.MemberFunctionTemplate{
				Template:      ft,
				Access:        ir.ParseAccess(accessStr),
				IsStatic:      static,
				IsConstructor: ctor,
				IsDestructor:  dtor,
				IsConst:       isConst,
			})
		case "class-template-decl":
			mark := ctx.StackLen()
			ct, err := buildClassTemplate(ctx, child, false)
			if err != nil {
				return err
			}
			ctx.PopTo(mark)
			class.MemberClassTemplates = append(class.MemberClassTemplates, &ir.MemberClassTemplate{
				Template: ct,
				Access:   ir.ParseAccess(accessStr),
				IsStatic: static,
			})
		default:
			return unknownElement(xmlcursor.Name(child))
		}
	}
	return nil
}
