// Package golang is the Go output target. Declarations are built with
// jennifer and collected per type so they fit the same workspace as the Java
// and C++ models.
package golang

import (
	"fmt"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Extension is the file extension of Go sources.
const Extension = ".go"

// Type is a named Go type together with its constructor and methods.
type Type struct {
	name  string
	file  *File
	decls []jen.Code
}

func NewType(name string, decls ...jen.Code) *Type {
	return &Type{name: name, decls: decls}
}

func (t *Type) Name() string { return t.name }

// Add appends top-level declarations, such as methods, to the type.
func (t *Type) Add(decls ...jen.Code) { t.decls = append(t.decls, decls...) }

// Decls returns the declarations in order.
func (t *Type) Decls() []jen.Code { return append([]jen.Code(nil), t.decls...) }

// FullyQualifiedName is the import path and the type name.
func (t *Type) FullyQualifiedName() string {
	if t.file == nil || t.file.importPath == "" {
		return t.name
	}
	return t.file.importPath + "." + t.name
}

// Render writes the declarations separated by blank lines. Qualified
// identifiers render with their package alias; imports are only emitted by
// File.
func (t *Type) Render(sb *strings.Builder, depth int) {
	parts := make([]string, 0, len(t.decls))
	for _, d := range t.decls {
		parts = append(parts, strings.TrimRight(fmt.Sprintf("%#v", d), "\n"))
	}
	sb.WriteString(render.IndentBlock(strings.Join(parts, render.Separator), depth))
}

func (t *Type) String() string { return render.String(t) }

// File is a Go source file rendered through jen.File, which resolves
// imports and formats the result.
type File struct {
	name       string
	importPath string
	pkgName    string
	comment    string
	types      []*Type
}

// NewFile creates name.go in the package at importPath. The package name is
// the last path element.
func NewFile(name, importPath string) *File {
	pkgName := path.Base(importPath)
	if importPath == "" {
		pkgName = "main"
	}
	return &File{name: name, importPath: importPath, pkgName: strings.ReplaceAll(pkgName, "-", "_")}
}

func (f *File) FileName() string          { return f.name }
func (f *File) PackageName() string       { return f.importPath }
func (f *File) Extension() string         { return Extension }
func (f *File) SetHeaderComment(c string) { f.comment = c }
func (f *File) Types() []*Type            { return append([]*Type(nil), f.types...) }

// Add puts t in the file. A type belongs to one file.
func (f *File) Add(t *Type) error {
	if t == nil {
		return errors.IllegalArgumentf("nil type for file %s", f.name)
	}
	if t.file != nil {
		return errors.Duplicatef("type %s already belongs to %s", t.name, t.file.name)
	}
	for _, o := range f.types {
		if o.name == t.name {
			return errors.Duplicatef("type %s already declared in file %s", t.name, f.name)
		}
	}
	t.file = f
	f.types = append(f.types, t)
	return nil
}

func (f *File) build() *jen.File {
	jf := jen.NewFilePathName(f.importPath, f.pkgName)
	if f.comment != "" {
		jf.HeaderComment(f.comment)
	}
	for i, t := range f.types {
		for j, d := range t.decls {
			if i > 0 || j > 0 {
				jf.Line()
			}
			jf.Add(d)
		}
	}
	return jf
}

// Render writes the formatted file. A rendering failure, which only happens
// for invalid jennifer trees, is written as a comment so the output never
// passes for valid code.
func (f *File) Render(sb *strings.Builder, depth int) {
	var buf strings.Builder
	if err := f.build().Render(&buf); err != nil {
		sb.WriteString(render.IndentBlock("// render error: "+err.Error(), depth))
		return
	}
	sb.WriteString(render.IndentBlock(strings.TrimRight(buf.String(), "\n"), depth))
}

func (f *File) String() string { return render.String(f) }
