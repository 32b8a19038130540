package abixml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xabi-project/abixml/ir"
)

func TestReadTranslationUnit_Namespace(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<namespace-decl name="outer">
			<namespace-decl name="inner">
				<type-decl name="int" id="t1" size-in-bits="32"/>
			</namespace-decl>
			<type-decl name="char" id="t2" size-in-bits="8"/>
		</namespace-decl>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 1)
	outer := members[0].(*ir.NamespaceDecl)
	assert.Equal(t, "outer", outer.Name())
	require.Len(t, outer.Members(), 2)

	inner := outer.Members()[0].(*ir.NamespaceDecl)
	assert.Equal(t, "inner", inner.Name())
	require.Len(t, inner.Members(), 1)
	assert.Equal(t, "int", inner.Members()[0].(*ir.TypeDecl).Name())

	outerChar := outer.Members()[1].(*ir.TypeDecl)
	assert.Equal(t, "char", outerChar.Name())
	assert.Same(t, outer, outerChar.Scope())
}

func TestReadTranslationUnit_Enum(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<type-decl name="int" id="t1" size-in-bits="32"/>
		<enum-decl name="Color" id="e1" size-in-bits="32" alignment-in-bits="32">
			<underlying-type type-id="t1"/>
			<enumerator name="RED" value="0"/>
			<enumerator name="GREEN" value="1"/>
		</enum-decl>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)
	en := members[1].(*ir.EnumTypeDecl)
	assert.Equal(t, "Color", en.Name())
	require.Len(t, en.Enumerators, 2)
	assert.Equal(t, ir.Enumerator{Name: "RED", Value: 0}, en.Enumerators[0])
	assert.Equal(t, ir.Enumerator{Name: "GREEN", Value: 1}, en.Enumerators[1])
	assert.Equal(t, "int", en.Underlying.(*ir.TypeDecl).Name())
}

func TestReadTranslationUnit_VariadicFunction(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<type-decl name="int" id="t1" size-in-bits="32"/>
		<function-decl name="printf" mangled-name="_Z6printf">
			<parameter type-id="t1"/>
			<parameter is-variadic="yes"/>
			<return type-id="t1"/>
		</function-decl>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)
	fn := members[1].(*ir.FunctionDecl)
	fnType := fn.FuncType.(*ir.FunctionType)
	require.Len(t, fnType.Parameters, 2)
	assert.NotNil(t, fnType.Parameters[0].Type)
	assert.True(t, fnType.Parameters[1].IsVariadic)
	assert.Nil(t, fnType.Parameters[1].Type)
}

func TestReadTranslationUnit_FunctionTemplate(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<type-decl name="int" id="t1" size-in-bits="32"/>
		<function-template-decl id="ft1">
			<template-type-parameter name="T"/>
			<function-decl name="max">
				<parameter type-id="t1"/>
				<return type-id="t1"/>
			</function-decl>
		</function-template-decl>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 2)
	ft := members[1].(*ir.FunctionTemplate)
	require.Len(t, ft.Parameters, 1)
	typeParam, ok := ft.Parameters[0].(*ir.TypeTParameter)
	require.True(t, ok)
	assert.Equal(t, "T", typeParam.Name)
	assert.Equal(t, 0, typeParam.Index())
	require.NotNil(t, ft.Pattern)
	assert.Equal(t, "max", ft.Pattern.Name())
}

func TestReadTranslationUnit_ClassTemplateWithMemberTemplate(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(`<abi-instr>
		<class-template-decl id="ct1">
			<template-type-parameter name="T"/>
			<class-decl name="Box" size-in-bits="32" alignment-in-bits="32">
				<member-template access="public" static="yes">
					<function-template-decl id="ft2">
						<template-type-parameter name="U"/>
						<function-decl name="convert"/>
					</function-template-decl>
				</member-template>
			</class-decl>
		</class-template-decl>
	</abi-instr>`))
	require.NoError(t, err)

	members := tu.GlobalScope().Members()
	require.Len(t, members, 1)
	ct := members[0].(*ir.ClassTemplate)
	require.NotNil(t, ct.Pattern)
	assert.Equal(t, "Box", ct.Pattern.Name())
	require.Len(t, ct.Pattern.MemberFunctionTemplates, 1)
	mft := ct.Pattern.MemberFunctionTemplates[0]
	assert.Equal(t, ir.AccessPublic, mft.Access)
	assert.True(t, mft.IsStatic)
	assert.Equal(t, "convert", mft.Template.Pattern.Name())
}

func TestReadTranslationUnit_LocationLineWithoutFilepathFails(t *testing.T) {
	_, err := ReadTranslationUnitFromReader(strings.NewReader(
		`<abi-instr><namespace-decl name="n" line="3"/></abi-instr>`))
	require.Error(t, err)
}

func TestReadTranslationUnit_UnknownVisibilityFallsBackToDefault(t *testing.T) {
	tu, err := ReadTranslationUnitFromReader(strings.NewReader(
		`<abi-instr><typedef-decl name="I" visibility="bogus" id="t1"/></abi-instr>`))
	require.NoError(t, err)
	td := tu.GlobalScope().Members()[0].(*ir.TypedefDecl)
	assert.Equal(t, ir.VisibilityDefault, td.Visibility())
}
