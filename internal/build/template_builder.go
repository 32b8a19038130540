package build

import (
	"github.com/antchfx/xmlquery"

	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

// buildTemplateParameter resolves node into an ir.TemplateParameter by
// tag, the same direct-dispatch simplification BuildType applies: the
// grammar's tag already disambiguates which of the four kinds this is.
// A nil, nil result means node is not a template-parameter element at
// all (most commonly the pattern element itself), and the caller should
// try building it as the pattern instead.
func buildTemplateParameter(ctx *rctx.Context, node *xmlquery.Node, index int) (ir.TemplateParameter, error) {
	switch xmlcursor.Name(node) {
	case "template-type-parameter":
		name, _ := xmlcursor.Attr(node, "name")
		return ir.NewTypeTParameter(index, name), nil
	case "template-non-type-parameter":
		name, _ := xmlcursor.Attr(node, "name")
		typeID, hasType := xmlcursor.Attr(node, "type-id")
		typ, err := resolveType(ctx, "template-non-type-parameter", typeID, hasType)
		if err != nil {
			return nil, err
		}
		return ir.NewNonTypeTParameter(index, name, typ), nil
	case "template-template-parameter":
		name, _ := xmlcursor.Attr(node, "name")
		var nested []ir.TemplateParameter
		nestedIndex := 0
		for _, child := range xmlcursor.Children(node) {
			p, err := buildTemplateParameter(ctx, child, nestedIndex)
			if err != nil {
				return nil, err
			}
			if p == nil {
				continue
			}
			nested = append(nested, p)
			nestedIndex++
		}
		return ir.NewTemplateTParameter(index, name, nested), nil
	case "template-parameter-type-composition":
		var composed ir.Type
		for _, child := range xmlcursor.Children(node) {
			mark := ctx.StackLen()
			t, err := BuildType(ctx, child, false)
			if err != nil {
				return nil, err
			}
			ctx.PopTo(mark)
			composed = t
			break
		}
		return ir.NewTypeComposition(index, composed), nil
	default:
		return nil, nil
	}
}

// buildTemplateParameters iterates node's children, building leading
// template-parameter elements and then the single function-decl or
// class-decl pattern that follows them, per §4.3's "try template
// parameter first, else build the pattern" rule.
func buildTemplateParameters(ctx *rctx.Context, node *xmlquery.Node) (params []ir.TemplateParameter, patternNode *xmlquery.Node, err error) {
	index := 0
	for _, child := range xmlcursor.Children(node) {
		p, perr := buildTemplateParameter(ctx, child, index)
		if perr != nil {
			return nil, nil, perr
		}
		if p != nil {
			params = append(params, p)
			index++
			continue
		}
		patternNode = child
	}
	return params, patternNode, nil
}

func buildFunctionTemplate(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.FunctionTemplate, error) {
	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")
	bindStr, _ := xmlcursor.Attr(node, "binding")

	ft := ir.NewFunctionTemplate(nil, nil, loc, ir.ParseVisibility(visStr), ir.ParseBinding(bindStr))
	mark := ctx.StackLen()
	ctx.PushDecl(ft, addToScope)

	params, patternNode, err := buildTemplateParameters(ctx, node)
	if err != nil {
		return nil, err
	}
	ft.Parameters = params
	if patternNode != nil && xmlcursor.Name(patternNode) == "function-decl" {
		pattern, err := buildFunctionDecl(ctx, patternNode, nil, false)
		if err != nil {
			return nil, err
		}
		ft.Pattern = pattern
	}

	ctx.PopTo(mark)

	if id, hasID := xmlcursor.Attr(node, "id"); hasID && id != "" {
		if err := ctx.KeyFnTemplate(ft, id); err != nil {
			return nil, err
		}
	}
	return ft, nil
}

func buildClassTemplate(ctx *rctx.Context, node *xmlquery.Node, addToScope bool) (*ir.ClassTemplate, error) {
	loc, err := snapshotLocation(ctx, node)
	if err != nil {
		return nil, err
	}
	visStr, _ := xmlcursor.Attr(node, "visibility")

	ct := ir.NewClassTemplate(nil, nil, loc, ir.ParseVisibility(visStr))
	mark := ctx.StackLen()
	ctx.PushDecl(ct, addToScope)

	params, patternNode, err := buildTemplateParameters(ctx, node)
	if err != nil {
		return nil, err
	}
	ct.Parameters = params
	if patternNode != nil && xmlcursor.Name(patternNode) == "class-decl" {
		pattern, err := BuildClassDecl(ctx, patternNode, false)
		if err != nil {
			return nil, err
		}
		ct.Pattern = pattern
	}

	ctx.PopTo(mark)

	if id, hasID := xmlcursor.Attr(node, "id"); hasID && id != "" {
		if err := ctx.KeyClassTemplate(ct, id); err != nil {
			return nil, err
		}
	}
	return ct, nil
}
