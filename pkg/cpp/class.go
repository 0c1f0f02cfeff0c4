package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

// Class is a C++ class. Members are grouped by access specifier; a member
// without a visibility flag is private.
type Class struct {
	decl
	bases        []string
	nested       members
	fields       []*Variable
	constructors []*Function
	methods      []*Function
}

func NewClass(name string) (*Class, error) {
	if name == "" {
		return nil, errors.IllegalArgumentf("class requires a name")
	}
	return &Class{decl: decl{name: name}}, nil
}

func (c *Class) qualifiedName() string { return c.FullyQualifiedName() }

func (c *Class) Bases() []string           { return append([]string(nil), c.bases...) }
func (c *Class) Fields() []*Variable       { return append([]*Variable(nil), c.fields...) }
func (c *Class) Constructors() []*Function { return append([]*Function(nil), c.constructors...) }
func (c *Class) Methods() []*Function      { return append([]*Function(nil), c.methods...) }

// AddBase adds a base class, e.g. "public Vehicle".
func (c *Class) AddBase(base string) error {
	base = strings.TrimSpace(base)
	if base == "" {
		return errors.IllegalArgumentf("empty base for class %s", c.name)
	}
	for _, b := range c.bases {
		if b == base {
			return errors.Duplicatef("base %s already declared for class %s", base, c.name)
		}
	}
	c.bases = append(c.bases, base)
	return nil
}

func (c *Class) AddField(v *Variable) error {
	if v == nil {
		return errors.IllegalArgumentf("nil field for class %s", c.name)
	}
	if c.FieldByName(v.name) != nil {
		return errors.Duplicatef("field %s already declared in class %s", v.name, c.name)
	}
	c.fields = append(c.fields, v)
	return nil
}

func (c *Class) AddMethod(f *Function) error {
	if f == nil {
		return errors.IllegalArgumentf("nil method for class %s", c.name)
	}
	if f.owner != nil {
		return errors.CodeValidationf("constructor %s must be added with AddConstructor", f.name)
	}
	for _, m := range c.methods {
		if m.name == f.name && m.sig.Equal(f.sig) && m.constMember == f.constMember {
			return errors.Duplicatef("method %s%s already declared in class %s", f.name, f.sig.Key(), c.name)
		}
	}
	c.methods = append(c.methods, f)
	return nil
}

// NewConstructor creates a constructor owned by c. Only the visibility flags
// are accepted.
func (c *Class) NewConstructor(mods modifier.Modifier, params ...*signature.Parameter) (*Function, error) {
	if err := validate(mods, modifier.KindConstructor, modifier.Visibility); err != nil {
		return nil, errors.Wrapf(err, "constructor %s", c.name)
	}
	sig, err := signature.New(params...)
	if err != nil {
		return nil, errors.Wrapf(err, "constructor %s", c.name)
	}
	return &Function{decl: decl{name: c.name}, modifiers: mods, sig: sig, owner: c}, nil
}

func (c *Class) AddConstructor(f *Function) error {
	if f == nil {
		return errors.IllegalArgumentf("nil constructor for class %s", c.name)
	}
	if f.owner != c {
		return errors.CodeValidationf("constructor %s%s was not created by class %s", f.name, f.sig.Key(), c.name)
	}
	for _, m := range c.constructors {
		if m.sig.Equal(f.sig) {
			return errors.Duplicatef("constructor %s%s already declared", c.name, f.sig.Key())
		}
	}
	c.constructors = append(c.constructors, f)
	return nil
}

// AddNested declares a struct, enum, typedef or class inside c. Nested
// declarations are public.
func (c *Class) AddNested(d Decl) error {
	return c.nested.add(c, c.name, d)
}

func (c *Class) FieldByName(name string) *Variable {
	for _, f := range c.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (c *Class) MethodsByName(name string) []*Function {
	var out []*Function
	for _, m := range c.methods {
		if m.name == name {
			out = append(out, m)
		}
	}
	return out
}

func (c *Class) NestedByName(name string) Decl { return c.nested.byName(name) }

func access(m modifier.Modifier) modifier.Modifier {
	if v := m & modifier.Visibility; v != 0 {
		return v
	}
	return modifier.Private
}

func (c *Class) Render(sb *strings.Builder, depth int) {
	c.writeComment(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString("class ")
	sb.WriteString(c.name)
	if len(c.bases) > 0 {
		sb.WriteString(" : ")
		sb.WriteString(strings.Join(c.bases, ", "))
	}
	sb.WriteString(" {\n")

	inner := depth + 1
	var groups []string
	for _, acc := range []modifier.Modifier{modifier.Public, modifier.Protected, modifier.Private} {
		var nested []Decl
		if acc == modifier.Public {
			nested = c.nested.decls
		}
		fields := filter(c.fields, acc, func(v *Variable) modifier.Modifier { return v.modifiers })
		ctors := filter(c.constructors, acc, func(f *Function) modifier.Modifier { return f.modifiers })
		methods := filter(c.methods, acc, func(f *Function) modifier.Modifier { return f.modifiers })

		var body strings.Builder
		render.Sections(&body,
			func(b *strings.Builder) bool { return render.Join(b, nested, inner) },
			func(b *strings.Builder) bool { return render.Join(b, fields, inner, render.WithSeparator("\n")) },
			func(b *strings.Builder) bool { return render.Join(b, ctors, inner) },
			func(b *strings.Builder) bool { return render.Join(b, methods, inner) },
		)
		if body.Len() == 0 {
			continue
		}
		groups = append(groups, render.Indent(depth)+acc.String()+":\n"+body.String())
	}
	if len(groups) > 0 {
		sb.WriteString(strings.Join(groups, render.Separator))
		sb.WriteByte('\n')
	}
	render.WriteIndent(sb, depth)
	sb.WriteString("};")
}

func (c *Class) String() string { return render.String(c) }

func filter[T any](items []T, acc modifier.Modifier, mods func(T) modifier.Modifier) []T {
	var out []T
	for _, it := range items {
		if access(mods(it)) == acc {
			out = append(out, it)
		}
	}
	return out
}
