package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
)

// variableFlags are the field modifiers C++ can express. Final renders as
// const.
const variableFlags = modifier.Visibility | modifier.Static | modifier.Final | modifier.Volatile

// Variable is a struct or class member, or a variable at namespace scope.
type Variable struct {
	decl
	modifiers   modifier.Modifier
	typ         string
	initializer string
}

type VariableOption func(*Variable)

func WithInitializer(code string) VariableOption {
	return func(v *Variable) { v.initializer = code }
}

func WithVariableComment(c *render.Comment) VariableOption {
	return func(v *Variable) { v.comment = c }
}

func NewVariable(mods modifier.Modifier, typ, name string, opts ...VariableOption) (*Variable, error) {
	if err := validate(mods, modifier.KindField, variableFlags); err != nil {
		return nil, errors.Wrapf(err, "variable %s", name)
	}
	if typ == "" || name == "" {
		return nil, errors.IllegalArgumentf("variable requires a type and a name (type=%q, name=%q)", typ, name)
	}
	v := &Variable{decl: decl{name: name}, modifiers: mods, typ: typ}
	for _, fn := range opts {
		fn(v)
	}
	return v, nil
}

func (v *Variable) Modifiers() modifier.Modifier { return v.modifiers }
func (v *Variable) Type() string                 { return v.typ }
func (v *Variable) Initializer() string          { return v.initializer }

func (v *Variable) Render(sb *strings.Builder, depth int) {
	v.writeComment(sb, depth)
	render.WriteIndent(sb, depth)
	if v.modifiers.IsStatic() {
		sb.WriteString("static ")
	}
	if v.modifiers.IsFinal() {
		sb.WriteString("const ")
	}
	if v.modifiers.IsVolatile() {
		sb.WriteString("volatile ")
	}
	sb.WriteString(v.typ)
	sb.WriteByte(' ')
	sb.WriteString(v.name)
	if init := strings.TrimSpace(v.initializer); init != "" {
		sb.WriteString(" = ")
		sb.WriteString(init)
	}
	sb.WriteByte(';')
}

func (v *Variable) String() string { return render.String(v) }
