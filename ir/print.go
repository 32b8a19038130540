package ir

import (
	"bytes"
	"fmt"
)

// Dump renders tu as an indented tree of declaration names and kinds, for
// use in tests that want to assert on overall shape without hand-writing
// a deep Go literal comparison. It is not meant for production output and
// carries no stability guarantee across versions. Grounded on
// internal/ir/print.go's WriteFile, which plays the same "human-readable
// summary for eyeballing" role for the teacher's own IR.
func Dump(tu *TranslationUnit) string {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "translation-unit %s\n", tu.Path())
	dumpMembers(buf, tu.GlobalScope().Members(), 1)
	return buf.String()
}

func dumpMembers(buf *bytes.Buffer, members []Member, depth int) {
	for _, m := range members {
		dumpMember(buf, m, depth)
	}
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

// nolint: gocyclo // a flat type switch over every IR node kind is the
// clearest way to express this.
func dumpMember(buf *bytes.Buffer, m Member, depth int) {
	indent(buf, depth)
	switch v := m.(type) {
	case *NamespaceDecl:
		fmt.Fprintf(buf, "namespace %s\n", v.Name())
		dumpMembers(buf, v.Members(), depth+1)
	case *ClassDecl:
		fmt.Fprintf(buf, "class %s\n", v.Name())
		for _, b := range v.Bases {
			indent(buf, depth+1)
			fmt.Fprintf(buf, "base %s\n", b.Class.Name())
		}
		for _, dm := range v.DataMembers {
			indent(buf, depth+1)
			fmt.Fprintf(buf, "data-member %s\n", dm.Var.Name())
		}
		for _, mf := range v.MemberFunctions {
			indent(buf, depth+1)
			fmt.Fprintf(buf, "member-function %s\n", mf.Method.Name())
		}
		dumpMembers(buf, v.Members(), depth+1)
	case *VarDecl:
		fmt.Fprintf(buf, "var %s\n", v.Name())
	case *FunctionDecl:
		fmt.Fprintf(buf, "function %s\n", v.Name())
	case *TypeDecl:
		fmt.Fprintf(buf, "type-decl %s\n", v.Name())
	case *TypedefDecl:
		fmt.Fprintf(buf, "typedef %s\n", v.Name())
	case *EnumTypeDecl:
		fmt.Fprintf(buf, "enum %s\n", v.Name())
	case *FunctionTemplate:
		fmt.Fprintf(buf, "function-template %s\n", v.Pattern.Name())
	case *ClassTemplate:
		fmt.Fprintf(buf, "class-template %s\n", v.Pattern.Name())
	default:
		fmt.Fprintf(buf, "%T\n", v)
	}
}
