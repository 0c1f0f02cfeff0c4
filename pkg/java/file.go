package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Extension is the file extension of Java sources.
const Extension = ".java"

// SourceFile is a Java compilation unit: a package, imports and top-level
// types.
type SourceFile struct {
	name    string
	pkg     string
	comment *render.Comment
	imports []string
	types   []Type
}

// NewSourceFile creates a file named name (without extension) in package pkg.
// An empty pkg is the default package.
func NewSourceFile(name, pkg string) *SourceFile {
	return &SourceFile{name: name, pkg: pkg}
}

// FileName returns the file name without extension. It falls back to the name
// of the first type when the file was created without one.
func (f *SourceFile) FileName() string {
	if f.name == "" && len(f.types) > 0 {
		return f.types[0].Name()
	}
	return f.name
}

func (f *SourceFile) PackageName() string          { return f.pkg }
func (f *SourceFile) Extension() string            { return Extension }
func (f *SourceFile) SetComment(c *render.Comment) { f.comment = c }
func (f *SourceFile) Types() []Type                { return append([]Type(nil), f.types...) }

// FullyQualifiedName returns package + "." + file name, or the file name.
func (f *SourceFile) FullyQualifiedName() string {
	if f.pkg == "" {
		return f.FileName()
	}
	return f.pkg + "." + f.FileName()
}

// AddImport records an explicit import; repeated imports are kept once.
func (f *SourceFile) AddImport(imp string) {
	imp = strings.TrimSuffix(strings.TrimSpace(imp), ";")
	if imp == "" {
		return
	}
	for _, i := range f.imports {
		if i == imp {
			return
		}
	}
	f.imports = append(f.imports, imp)
}

// Add makes t a top-level type of the file. A type belongs to at most one file
// and cannot be both nested and top-level.
func (f *SourceFile) Add(t Type) error {
	if t == nil {
		return errors.IllegalArgumentf("nil type for file %s", f.FileName())
	}
	if f.TypeByName(t.Name()) != nil {
		return errors.Duplicatef("type %s already declared in file %s", t.Name(), f.FileName())
	}
	if _, ok := t.(*Interface); ok {
		if err := modifier.Validate(t.Modifiers(), modifier.KindInterface); err != nil {
			return errors.Wrapf(err, "top-level interface %s", t.Name())
		}
	}
	if err := t.base().setFile(f); err != nil {
		return err
	}
	f.types = append(f.types, t)
	return nil
}

// TypeByName returns the top-level type named name, or nil.
func (f *SourceFile) TypeByName(name string) Type {
	for _, t := range f.types {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// Imports returns the sorted union of explicit imports and the imports
// required by annotations anywhere in the file. Imports from the file's own
// package are dropped.
func (f *SourceFile) Imports() []string {
	set := map[string]struct{}{}
	for _, i := range f.imports {
		set[i] = struct{}{}
	}
	for _, t := range f.types {
		t.collectImports(set)
	}
	if f.pkg != "" {
		for imp := range set {
			if i := strings.LastIndex(imp, "."); i > 0 && imp[:i] == f.pkg {
				delete(set, imp)
			}
		}
	}
	return sortedKeys(set)
}

func (f *SourceFile) Render(sb *strings.Builder, depth int) {
	var parts []string
	if f.comment != nil {
		parts = append(parts, render.String(f.comment))
	}
	if f.pkg != "" {
		parts = append(parts, "package "+f.pkg+";")
	}
	if imports := f.Imports(); len(imports) > 0 {
		lines := make([]string, len(imports))
		for i, imp := range imports {
			lines[i] = "import " + imp + ";"
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	if len(f.types) > 0 {
		var types strings.Builder
		render.Join(&types, f.types, 0)
		parts = append(parts, types.String())
	}
	text := strings.Join(parts, render.Separator)
	if depth > 0 {
		text = render.IndentBlock(text, depth)
	}
	sb.WriteString(text)
}

// String renders the whole file.
func (f *SourceFile) String() string { return render.String(f) }
