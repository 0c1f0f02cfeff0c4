package cpp

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Dialect selects C or C++ output.
type Dialect int

const (
	C Dialect = iota
	CXX
)

func (d Dialect) String() string {
	if d == C {
		return "c"
	}
	return "c++"
}

type include struct {
	path   string
	system bool
}

// SourceFile is a header or an implementation file.
type SourceFile struct {
	members
	name      string
	namespace string
	dialect   Dialect
	header    bool
	comment   *render.Comment
	includes  []include
}

type FileOption func(*SourceFile)

// Header makes the file a header guarded by #ifndef.
func Header() FileOption { return func(f *SourceFile) { f.header = true } }

func WithDialect(d Dialect) FileOption { return func(f *SourceFile) { f.dialect = d } }

func WithFileComment(c *render.Comment) FileOption { return func(f *SourceFile) { f.comment = c } }

// NewSourceFile creates a C++ implementation file unless options say
// otherwise. namespace may be "a::b"; C files cannot have one.
func NewSourceFile(name, namespace string, opts ...FileOption) (*SourceFile, error) {
	f := &SourceFile{name: name, namespace: namespace, dialect: CXX}
	for _, fn := range opts {
		fn(f)
	}
	if f.dialect == C && namespace != "" {
		return nil, errors.CodeValidationf("C file %s cannot declare namespace %s", name, namespace)
	}
	return f, nil
}

func (f *SourceFile) qualifiedName() string { return f.namespace }

// FileName returns the name without extension, falling back to the first
// named declaration.
func (f *SourceFile) FileName() string {
	if f.name == "" {
		for _, d := range f.decls {
			if d.Name() != "" {
				return d.Name()
			}
		}
	}
	return f.name
}

// PackageName returns the namespace of the file.
func (f *SourceFile) PackageName() string { return f.namespace }
func (f *SourceFile) Dialect() Dialect    { return f.dialect }
func (f *SourceFile) IsHeader() bool      { return f.header }
func (f *SourceFile) Decls() []Decl       { return append([]Decl(nil), f.decls...) }

// Extension is .h/.c for C and .hpp/.cpp for C++.
func (f *SourceFile) Extension() string {
	switch {
	case f.dialect == C && f.header:
		return ".h"
	case f.dialect == C:
		return ".c"
	case f.header:
		return ".hpp"
	default:
		return ".cpp"
	}
}

// AddInclude records an include once.
func (f *SourceFile) AddInclude(path string, system bool) {
	for _, i := range f.includes {
		if i.path == path {
			return
		}
	}
	f.includes = append(f.includes, include{path: path, system: system})
}

// Add declares d at file scope, inside the file's namespace if any. Classes,
// namespaces and member-style functions are rejected in C files.
func (f *SourceFile) Add(d Decl) error {
	if f.dialect == C {
		switch v := d.(type) {
		case *Class, *Namespace:
			return errors.CodeValidationf("%s cannot be declared in C file %s", d.Name(), f.FileName())
		case *Function:
			if v.virtual || v.constMember || v.owner != nil {
				return errors.CodeValidationf("member function %s cannot be declared in C file %s", v.name, f.FileName())
			}
		}
	}
	return f.add(f, f.FileName(), d)
}

func (f *SourceFile) Lookup(name string) Decl { return f.byName(name) }

func (f *SourceFile) guard() string {
	raw := strings.ReplaceAll(f.namespace, "::", "_") + "_" + f.FileName() + f.Extension()
	raw = strings.TrimPrefix(raw, "_")
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, raw)
}

func (f *SourceFile) includeLines() string {
	sys, local := []string{}, []string{}
	for _, i := range f.includes {
		if i.system {
			sys = append(sys, NewInclude(i.path, true).text)
		} else {
			local = append(local, NewInclude(i.path, false).text)
		}
	}
	sort.Strings(sys)
	sort.Strings(local)
	return strings.Join(append(sys, local...), "\n")
}

func (f *SourceFile) Render(sb *strings.Builder, depth int) {
	var parts []string
	if f.comment != nil {
		parts = append(parts, render.String(f.comment))
	}
	guard := f.guard()
	if f.header {
		parts = append(parts, "#ifndef "+guard+"\n#define "+guard)
	}
	if inc := f.includeLines(); inc != "" {
		parts = append(parts, inc)
	}
	if len(f.decls) > 0 {
		var body strings.Builder
		if f.namespace != "" {
			writeNamespace(&body, f.namespace, f.decls, 0)
		} else {
			render.Join(&body, f.decls, 0)
		}
		parts = append(parts, body.String())
	}
	if f.header {
		parts = append(parts, "#endif // "+guard)
	}
	text := strings.Join(parts, render.Separator)
	if depth > 0 {
		text = render.IndentBlock(text, depth)
	}
	sb.WriteString(text)
}

func (f *SourceFile) String() string { return render.String(f) }
