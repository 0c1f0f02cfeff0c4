package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

// Enum is an enum declaration: ordered constants plus optional fields,
// constructors and methods.
type Enum struct {
	typeDecl
	constants    []string
	fields       []*Field
	constructors []*Method
	methods      []*Method
}

func NewEnum(mods modifier.Modifier, name string, constants ...string) (*Enum, error) {
	if err := modifier.Validate(mods, modifier.KindEnum); err != nil {
		return nil, errors.Wrapf(err, "enum %s", name)
	}
	if name == "" {
		return nil, errors.IllegalArgumentf("enum requires a name")
	}
	e := &Enum{typeDecl: typeDecl{decl: decl{name: name, modifiers: mods}}}
	for _, c := range constants {
		if err := e.AddConstant(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Enum) Constants() []string     { return append([]string(nil), e.constants...) }
func (e *Enum) Fields() []*Field        { return append([]*Field(nil), e.fields...) }
func (e *Enum) Constructors() []*Method { return append([]*Method(nil), e.constructors...) }
func (e *Enum) Methods() []*Method      { return append([]*Method(nil), e.methods...) }

// AddConstant appends a constant. The constant may carry arguments, as in
// "RED(255, 0, 0)"; uniqueness is checked on the identifier.
func (e *Enum) AddConstant(constant string) error {
	id := constantName(constant)
	if id == "" {
		return errors.IllegalArgumentf("empty constant for enum %s", e.name)
	}
	for _, c := range e.constants {
		if constantName(c) == id {
			return errors.Duplicatef("constant %s already declared in enum %s", id, e.name)
		}
	}
	e.constants = append(e.constants, strings.TrimSpace(constant))
	return nil
}

func constantName(c string) string {
	c = strings.TrimSpace(c)
	if i := strings.IndexAny(c, "({ "); i >= 0 {
		c = c[:i]
	}
	return c
}

func (e *Enum) AddField(f *Field) error {
	if f == nil {
		return errors.IllegalArgumentf("nil field for enum %s", e.name)
	}
	if e.FieldByName(f.name) != nil {
		return errors.Duplicatef("field %s already declared in enum %s", f.name, e.name)
	}
	e.fields = append(e.fields, f)
	return nil
}

// NewConstructor creates a constructor owned by e.
func (e *Enum) NewConstructor(mods modifier.Modifier, params ...*signature.Parameter) (*Method, error) {
	return newConstructor(e, mods, params)
}

func (e *Enum) AddConstructor(m *Method) error {
	if m == nil {
		return errors.IllegalArgumentf("nil constructor for enum %s", e.name)
	}
	if m.kind != kindConstructor || m.owner != Type(e) {
		return errors.CodeValidationf("constructor %s%s was not created by enum %s", m.name, m.sig.Key(), e.name)
	}
	if findMethod(e.constructors, m) != nil {
		return errors.Duplicatef("constructor %s%s already declared", e.name, m.sig.Key())
	}
	e.constructors = append(e.constructors, m)
	return nil
}

func (e *Enum) AddMethod(m *Method) error {
	if m == nil {
		return errors.IllegalArgumentf("nil method for enum %s", e.name)
	}
	switch {
	case m.kind != kindMethod:
		return errors.CodeValidationf("%s cannot be declared as a method of enum %s", m.name, e.name)
	case m.modifiers.IsAbstract():
		return errors.CodeValidationf("abstract method %s is not supported in enum %s", m.name, e.name)
	}
	if findMethod(e.methods, m) != nil {
		return errors.Duplicatef("method %s%s already declared in enum %s", m.name, m.sig.Key(), e.name)
	}
	e.methods = append(e.methods, m)
	return nil
}

func (e *Enum) FieldByName(name string) *Field {
	for _, f := range e.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (e *Enum) MethodsByName(name string) []*Method {
	return methodsByName(e.methods, name)
}

func (e *Enum) Imports() []string {
	set := map[string]struct{}{}
	e.collectImports(set)
	return sortedKeys(set)
}

func (e *Enum) collectImports(set map[string]struct{}) {
	e.decl.collectImports(set)
	for _, f := range e.fields {
		f.collectImports(set)
	}
	for _, m := range e.constructors {
		m.collectImports(set)
	}
	for _, m := range e.methods {
		m.collectImports(set)
	}
}

// Render writes the enum. The last constant is terminated with ";" when the
// enum declares a constructor or a method.
func (e *Enum) Render(sb *strings.Builder, depth int) {
	e.writeHeader(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString(e.modifiers.Prefix())
	sb.WriteString("enum ")
	sb.WriteString(e.name)
	sb.WriteString(" {\n")

	inner := depth + 1
	terminate := len(e.constructors) > 0 || len(e.methods) > 0
	var body strings.Builder
	render.Sections(&body,
		func(b *strings.Builder) bool {
			for i, c := range e.constants {
				render.WriteIndent(b, inner)
				b.WriteString(c)
				if i < len(e.constants)-1 {
					b.WriteString(",\n")
				}
			}
			switch {
			case len(e.constants) > 0 && terminate:
				b.WriteByte(';')
			case len(e.constants) == 0 && terminate:
				render.WriteIndent(b, inner)
				b.WriteByte(';')
			}
			return b.Len() > 0
		},
		func(b *strings.Builder) bool { return render.Join(b, e.fields, inner) },
		func(b *strings.Builder) bool { return render.Join(b, e.constructors, inner) },
		func(b *strings.Builder) bool { return render.Join(b, e.methods, inner) },
	)
	if body.Len() > 0 {
		sb.WriteString(body.String())
		sb.WriteByte('\n')
	}
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
}

func (e *Enum) String() string { return render.String(e) }
