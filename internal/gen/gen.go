// Package gen emits forwarding wake capability implementations for wrapper
// structs with exactly one field. It is the engine behind the wakergen
// command.
package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"
)

// The implementations that can be generated. Each forwards the
// identically-named operation to the wrapper's single field.
const (
	ImplWakeRef = "wakeref"
	ImplWake    = "wake"
	ImplClone   = "clone"
	ImplDrop    = "drop"
)

// File generates the forwarding implementations named by impls for
// typeName, which must be declared in src as a struct with exactly one
// field (named or embedded). The result is a complete, formatted Go source
// file. Ineligible shapes are rejected with an error; nothing is emitted
// for them.
func File(filename string, src []byte, typeName string, impls []string) ([]byte, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	spec, err := findType(file, typeName)
	if err != nil {
		return nil, err
	}

	field, err := singleField(typeName, spec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by wakergen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", file.Name.Name)

	receiver := strings.ToLower(typeName[:1])

	for _, impl := range impls {
		switch strings.TrimSpace(impl) {
		case ImplWakeRef:
			fmt.Fprintf(&buf, "func (%s %s) WakeByRef() {\n\t%s.%s.WakeByRef()\n}\n\n",
				receiver, typeName, receiver, field)

		case ImplWake:
			fmt.Fprintf(&buf, "func (%s %s) Wake() {\n\t%s.%s.Wake()\n}\n\n",
				receiver, typeName, receiver, field)

		case ImplClone:
			fmt.Fprintf(&buf, "func (%s %s) Clone() %s {\n\treturn %s{%s: %s.%s.Clone()}\n}\n\n",
				receiver, typeName, typeName, typeName, field, receiver, field)

		case ImplDrop:
			fmt.Fprintf(&buf, "func (%s %s) Drop() {\n\t%s.%s.Drop()\n}\n\n",
				receiver, typeName, receiver, field)

		default:
			return nil, fmt.Errorf("unknown implementation %q, expected one of wakeref, wake, clone, drop", impl)
		}
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code for %s: %w", typeName, err)
	}

	return formatted, nil
}

func findType(file *ast.File, typeName string) (*ast.TypeSpec, error) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			if typeSpec.Name.Name == typeName {
				return typeSpec, nil
			}
		}
	}

	return nil, fmt.Errorf("type %s not found", typeName)
}

// singleField returns the selector of the struct's one field. Both named
// and embedded fields work; an embedded field is addressed by its type
// name.
func singleField(typeName string, spec *ast.TypeSpec) (string, error) {
	if spec.TypeParams != nil {
		return "", fmt.Errorf("cannot generate for %s: generic types are not supported", typeName)
	}

	structType, ok := spec.Type.(*ast.StructType)
	if !ok {
		return "", fmt.Errorf("cannot generate for %s: not a struct type", typeName)
	}

	var fields []string

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			fields = append(fields, embeddedName(field.Type))
			continue
		}

		for _, name := range field.Names {
			fields = append(fields, name.Name)
		}
	}

	if len(fields) != 1 {
		return "", fmt.Errorf("cannot generate for %s: expected exactly one field, found %d", typeName, len(fields))
	}

	return fields[0], nil
}

func embeddedName(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr.Name
	case *ast.StarExpr:
		return embeddedName(expr.X)
	case *ast.SelectorExpr:
		return expr.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(expr.X)
	case *ast.IndexListExpr:
		return embeddedName(expr.X)
	default:
		return ""
	}
}
