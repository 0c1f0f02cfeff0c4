package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Field is a field declaration with an optional initializer.
type Field struct {
	decl
	typ         string
	initializer string
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithInitializer sets the raw initializer code. Multi-line code is
// re-indented below the declaration.
func WithInitializer(code string) FieldOption {
	return func(f *Field) { f.initializer = code }
}

// WithFieldComment attaches a comment.
func WithFieldComment(c *render.Comment) FieldOption {
	return func(f *Field) { f.comment = c }
}

// WithFieldAnnotations attaches annotations.
func WithFieldAnnotations(a ...*Annotation) FieldOption {
	return func(f *Field) { f.annotations = append(f.annotations, a...) }
}

func NewField(mods modifier.Modifier, typ, name string, opts ...FieldOption) (*Field, error) {
	if err := modifier.Validate(mods, modifier.KindField); err != nil {
		return nil, errors.Wrapf(err, "field %s", name)
	}
	if typ == "" || name == "" {
		return nil, errors.IllegalArgumentf("field requires a type and a name (type=%q, name=%q)", typ, name)
	}
	f := &Field{decl: decl{name: name, modifiers: mods}, typ: typ}
	for _, fn := range opts {
		fn(f)
	}
	return f, nil
}

func (f *Field) Type() string        { return f.typ }
func (f *Field) Initializer() string { return f.initializer }

func (f *Field) SetInitializer(code string) { f.initializer = code }

func (f *Field) Render(sb *strings.Builder, depth int) {
	f.writeHeader(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString(f.modifiers.Prefix())
	sb.WriteString(f.typ)
	sb.WriteByte(' ')
	sb.WriteString(f.name)
	switch {
	case f.initializer == "":
	case strings.Contains(strings.TrimRight(f.initializer, "\n"), "\n"):
		sb.WriteString(" =\n")
		sb.WriteString(render.IndentBlock(strings.TrimRight(f.initializer, "\n"), depth+1))
	default:
		sb.WriteString(" = ")
		sb.WriteString(strings.TrimSpace(f.initializer))
	}
	sb.WriteByte(';')
}

func (f *Field) String() string { return render.String(f) }
