package build

import (
	"fmt"
	"strconv"

	"github.com/xabi-project/abixml/internal/rctx"
	"github.com/xabi-project/abixml/internal/xmlcursor"
	"github.com/xabi-project/abixml/ir"
)

type handlerFunc func(ctx *rctx.Context) (bool, error)

// dispatchTable maps a top-level abi-instr child tag to its handler.
// Every handler is invoked with the cursor already positioned on (and
// depth-settled for) the element it names.
var dispatchTable = map[string]handlerFunc{
	"namespace-decl":          handleNamespaceDecl,
	"type-decl":               handleTypeDecl,
	"qualified-type-def":      handleQualifiedTypeDef,
	"pointer-type-def":        handlePointerTypeDef,
	"reference-type-def":      handleReferenceTypeDef,
	"typedef-decl":            handleTypedefDecl,
	"var-decl":                handleVarDecl,
	"function-decl":           handleFunctionDeclTop,
	"enum-decl":               handleEnumDeclTop,
	"class-decl":              handleClassDeclTop,
	"function-template-decl":  handleFunctionTemplateDeclTop,
	"class-template-decl":     handleClassTemplateDeclTop,
}

// ReadTranslationUnit reads a single abi-instr document into ctx.TU. The
// cursor must not have been advanced yet.
func ReadTranslationUnit(ctx *rctx.Context) error {
	if !ctx.Cursor.Advance() {
		return &SchemaError{Err: fmt.Errorf("empty document")}
	}
	if ctx.Cursor.Name() != "abi-instr" {
		return &SchemaError{Element: ctx.Cursor.Name(), Err: fmt.Errorf("expected abi-instr root")}
	}
	ctx.SetBaseDepth(ctx.Cursor.Depth())
	initTranslationUnit(ctx, ctx.Cursor.Attr)

	_, err := runDispatchLoop(ctx)
	return err
}

// ReadCorpus reads an abi-corpus document, filling corp with one
// translation unit per abi-instr child, in document order.
func ReadCorpus(cursor *xmlcursor.Cursor, corp *ir.Corpus) error {
	if !cursor.Advance() {
		return &SchemaError{Err: fmt.Errorf("empty document")}
	}
	if cursor.Name() != "abi-corpus" {
		return &SchemaError{Element: cursor.Name(), Err: fmt.Errorf("expected abi-corpus root")}
	}
	if path, ok := cursor.Attr("path"); ok {
		corp.SetPath(path)
	}

	more := cursor.Advance()
	for more {
		if cursor.Name() != "abi-instr" {
			return &SchemaError{Element: cursor.Name(), Err: fmt.Errorf("expected abi-instr")}
		}

		tu := ir.NewTranslationUnit()
		ctx := rctx.New(cursor, tu)
		ctx.SetBaseDepth(cursor.Depth())
		initTranslationUnit(ctx, cursor.Attr)

		stoppedAtSibling, err := runDispatchLoop(ctx)
		if err != nil {
			return err
		}
		corp.AddTranslationUnit(tu)

		if stoppedAtSibling {
			more = true
			continue
		}
		more = cursor.Advance()
	}
	return nil
}

// initTranslationUnit reads the path and address-size attributes of an
// abi-instr root (via get, the live cursor's Attr method) onto tu, and
// pushes its global scope as the base of the scope stack.
func initTranslationUnit(ctx *rctx.Context, get func(string) (string, bool)) {
	ctx.ResetTypeTable()
	if path, ok := get("path"); ok {
		ctx.TU.SetPath(path)
	}
	if addrStr, ok := get("address-size"); ok && addrStr != "" {
		if n, err := strconv.Atoi(addrStr); err == nil {
			ctx.TU.SetAddressSize(n)
		}
	}
	ctx.PushDecl(ctx.TU.GlobalScope(), false)
}

// runDispatchLoop drives the element-dispatch loop for a single
// translation unit's body. It stops, without error and without
// consuming the element, the moment the cursor steps onto something at
// or above the translation unit's own root depth -- the boundary of the
// next abi-instr sibling in a corpus parse. stoppedAtSibling reports
// whether that is why it stopped, as opposed to the cursor simply
// running out of document.
//
// Expand-and-build handlers already advance the cursor themselves (past
// the subtree they took a snapshot of) before returning, signaled by a
// true consumed result; skipAdvance then tells the next iteration to
// inspect the cursor's current position directly instead of calling
// Advance again, which would otherwise skip right over it.
func runDispatchLoop(ctx *rctx.Context) (stoppedAtSibling bool, err error) {
	skipAdvance := false
	for {
		if !skipAdvance {
			if !ctx.Cursor.Advance() {
				ctx.DrainScopeStack()
				return false, nil
			}
		}
		skipAdvance = false

		if ctx.Cursor.Kind() == xmlcursor.KindNone {
			ctx.DrainScopeStack()
			return false, nil
		}

		rel := ctx.RelativeDepth(ctx.Cursor.Depth())
		if rel <= 0 {
			ctx.DrainScopeStack()
			return true, nil
		}
		ctx.UpdateDepth(rel)

		name := ctx.Cursor.Name()
		h, ok := dispatchTable[name]
		if !ok {
			return false, unknownElement(name)
		}
		consumed, err := h(ctx)
		if err != nil {
			return false, err
		}
		if consumed {
			skipAdvance = true
		}
	}
}
