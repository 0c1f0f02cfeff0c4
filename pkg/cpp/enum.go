package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Enum is a plain or scoped (enum class) enumeration. Constants may carry an
// explicit value, as in "RED = 1".
type Enum struct {
	decl
	scoped     bool
	underlying string
	constants  []string
}

type EnumOption func(*Enum)

// Scoped renders the enum as "enum class".
func Scoped() EnumOption {
	return func(e *Enum) { e.scoped = true }
}

// WithUnderlying sets the underlying integer type.
func WithUnderlying(typ string) EnumOption {
	return func(e *Enum) { e.underlying = typ }
}

func NewEnum(name string, opts ...EnumOption) (*Enum, error) {
	if name == "" {
		return nil, errors.IllegalArgumentf("enum requires a name")
	}
	e := &Enum{decl: decl{name: name}}
	for _, fn := range opts {
		fn(e)
	}
	return e, nil
}

func (e *Enum) Constants() []string { return append([]string(nil), e.constants...) }

func (e *Enum) AddConstant(constant string) error {
	id := enumeratorName(constant)
	if id == "" {
		return errors.IllegalArgumentf("empty enumerator for enum %s", e.name)
	}
	for _, c := range e.constants {
		if enumeratorName(c) == id {
			return errors.Duplicatef("enumerator %s already declared in enum %s", id, e.name)
		}
	}
	e.constants = append(e.constants, strings.TrimSpace(constant))
	return nil
}

func enumeratorName(c string) string {
	c = strings.TrimSpace(c)
	if i := strings.IndexAny(c, "= "); i >= 0 {
		c = c[:i]
	}
	return c
}

func (e *Enum) Render(sb *strings.Builder, depth int) {
	e.writeComment(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString("enum ")
	if e.scoped {
		sb.WriteString("class ")
	}
	sb.WriteString(e.name)
	if e.underlying != "" {
		sb.WriteString(" : ")
		sb.WriteString(e.underlying)
	}
	sb.WriteString(" {\n")
	for i, c := range e.constants {
		render.WriteIndent(sb, depth+1)
		sb.WriteString(c)
		if i < len(e.constants)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	render.WriteIndent(sb, depth)
	sb.WriteString("};")
}

func (e *Enum) String() string { return render.String(e) }
