package abixml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xabi-project/abixml/ir"
)

// S1: a minimal translation unit.
func TestReadTranslationUnit_Minimal(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(
		`<abi-instr path="/tmp/a.cc" address-size="8"/>`))
	require.NoError(t, err)
	require.NotNil(t, tu)

	assert.Equal(t, "/tmp/a.cc", tu.Path())
	size, hasSize := tu.AddressSize()
	assert.True(t, hasSize)
	assert.Equal(t, 8, size)
	assert.Empty(t, tu.GlobalScope().Members())
}

// S2: a basic type plus a typedef naming it.
func TestReadTranslationUnit_TypeAndTypedef(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<type-decl name="int" id="t1" size-in-bits="32" alignment-in-bits="32"/>
		<typedef-decl name="I" type-id="t1" id="t2"/>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)

	typeDecl, ok := members[0].(*ir.TypeDecl)
	require.True(t, ok)
	assert.Equal(t, "int", typeDecl.Name())
	assert.Equal(t, int64(32), typeDecl.SizeInBits())

	typedef, ok := members[1].(*ir.TypedefDecl)
	require.True(t, ok)
	assert.Equal(t, "I", typedef.Name())
	assert.Same(t, ir.Type(typeDecl), typedef.Underlying)
}

// S3: a pointer type referring forward to a type-decl that precedes it
// in document order (the common case every builder must resolve
// against the live symbol table).
func TestReadTranslationUnit_Pointer(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<type-decl name="X" id="x" size-in-bits="8"/>
		<pointer-type-def type-id="x" id="px" size-in-bits="64" alignment-in-bits="64"/>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)

	x := members[0].(*ir.TypeDecl)
	px := members[1].(*ir.PointerTypeDef)
	assert.Same(t, ir.Type(x), px.Pointee)
	assert.Equal(t, int64(64), px.SizeInBits())
}

// S4: a class with one public data member and one public method.
func TestReadTranslationUnit_ClassWithMembers(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<type-decl name="int" id="t1" size-in-bits="32" alignment-in-bits="32"/>
		<class-decl name="C" id="c" size-in-bits="32" alignment-in-bits="32">
			<data-member access="public">
				<var-decl name="a" type-id="t1"/>
			</data-member>
			<member-function access="public">
				<function-decl name="f">
					<return type-id="t1"/>
				</function-decl>
			</member-function>
		</class-decl>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)
	class := members[1].(*ir.ClassDecl)
	assert.Equal(t, "C", class.Name())

	require.Len(t, class.DataMembers, 1)
	dm := class.DataMembers[0]
	assert.Equal(t, ir.AccessPublic, dm.Access)
	assert.Equal(t, "a", dm.Var.Name())
	assert.Equal(t, "int", dm.Var.Type.(*ir.TypeDecl).Name())

	require.Len(t, class.MemberFunctions, 1)
	mf := class.MemberFunctions[0]
	assert.Equal(t, ir.AccessPublic, mf.Access)
	assert.False(t, mf.IsConst)
	assert.False(t, mf.IsConstructor)
	assert.False(t, mf.IsDestructor)
	assert.Equal(t, "f", mf.Method.Name())
	method, ok := mf.Method.FuncType.(*ir.MethodType)
	require.True(t, ok)
	assert.Same(t, class, method.Class)
	assert.Equal(t, "int", method.Return.(*ir.TypeDecl).Name())
}

// S5: a declaration-only class followed by its definition, sharing the
// same id via def-of-decl-id.
func TestReadTranslationUnit_DeclDefPair(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<class-decl name="C" id="c" is-declaration-only="yes"/>
		<class-decl name="C" id="c" def-of-decl-id="c" size-in-bits="8" alignment-in-bits="8"/>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)

	declOnly := members[0].(*ir.ClassDecl)
	assert.True(t, declOnly.IsDeclarationOnly)
	assert.Equal(t, int64(0), declOnly.SizeInBits())

	def := members[1].(*ir.ClassDecl)
	assert.False(t, def.IsDeclarationOnly)
	assert.Same(t, declOnly, def.DefinitionOf)
}

func TestReadTranslationUnit_EmptyRootOnly(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr/>`))
	require.NoError(t, err)
	assert.Empty(t, tu.GlobalScope().Members())
	_, hasSize := tu.AddressSize()
	assert.False(t, hasSize)
}

func TestReadTranslationUnit_UnresolvedTypeIDFails(t *testing.T) {
	_, err := ReadTranslationUnitFromReader(strings.NewReader(
		`<abi-instr><typedef-decl name="I" type-id="missing" id="t2"/></abi-instr>`))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "typedef-decl", parseErr.Element)
	assert.Equal(t, "type-id", parseErr.Attribute)
}

func TestReadTranslationUnit_UnknownElementFails(t *testing.T) {
	_, err := ReadTranslationUnitFromReader(strings.NewReader(
		`<abi-instr><bogus-decl/></abi-instr>`))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bogus-decl", parseErr.Element)
}

func TestReadTranslationUnit_WrongRootFails(t *testing.T) {
	_, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-corpus/>`))
	require.Error(t, err)
}

func TestFillTranslationUnitFromBuffer(t *testing.T) {
	tu := ir.NewTranslationUnit()
	ok := FillTranslationUnitFromBuffer([]byte(`<abi-instr path="/x"/>`), tu)
	assert.True(t, ok)
	assert.Equal(t, "/x", tu.Path())
}

func TestFillTranslationUnitFromBuffer_Failure(t *testing.T) {
	tu := ir.NewTranslationUnit()
	ok := FillTranslationUnitFromBuffer([]byte(`<abi-corpus/>`), tu)
	assert.False(t, ok)
}
