package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

// Class is a class declaration.
//
// A Class is built by a single caller and is not safe for concurrent
// mutation; once built, Render may be called concurrently.
type Class struct {
	typeDecl
	nested
	extends      string
	implements   []string
	fields       []*Field
	constructors []*Method
	methods      []*Method
	staticCode   string
}

func NewClass(mods modifier.Modifier, name string) (*Class, error) {
	if err := modifier.Validate(mods, modifier.KindClass); err != nil {
		return nil, errors.Wrapf(err, "class %s", name)
	}
	if name == "" {
		return nil, errors.IllegalArgumentf("class requires a name")
	}
	return &Class{typeDecl: typeDecl{decl: decl{name: name, modifiers: mods}}}, nil
}

func (c *Class) Extends() string         { return c.extends }
func (c *Class) Implements() []string    { return append([]string(nil), c.implements...) }
func (c *Class) Fields() []*Field        { return append([]*Field(nil), c.fields...) }
func (c *Class) Constructors() []*Method { return append([]*Method(nil), c.constructors...) }
func (c *Class) Methods() []*Method      { return append([]*Method(nil), c.methods...) }
func (c *Class) StaticCode() string      { return c.staticCode }

// SetExtends sets the single super class; an empty name clears it.
func (c *Class) SetExtends(name string) {
	c.extends = name
}

func (c *Class) AddImplementsInterface(name string) error {
	var err error
	c.implements, err = addUnique(c.implements, name, "implemented interface", c.name)
	return err
}

func (c *Class) AddField(f *Field) error {
	if f == nil {
		return errors.IllegalArgumentf("nil field for class %s", c.name)
	}
	if c.FieldByName(f.name) != nil {
		return errors.Duplicatef("field %s already declared in class %s", f.name, c.name)
	}
	c.fields = append(c.fields, f)
	return nil
}

func (c *Class) AddMethod(m *Method) error {
	if m == nil {
		return errors.IllegalArgumentf("nil method for class %s", c.name)
	}
	switch {
	case m.kind == kindConstructor:
		return errors.CodeValidationf("constructor %s must be added with AddConstructor", m.name)
	case m.kind == kindInterfaceMethod:
		return errors.CodeValidationf("interface method %s cannot be declared in class %s", m.name, c.name)
	case m.modifiers.IsAbstract() && !c.modifiers.IsAbstract():
		return errors.CodeValidationf("abstract method %s requires class %s to be abstract", m.name, c.name)
	}
	if findMethod(c.methods, m) != nil {
		return errors.Duplicatef("method %s%s already declared in class %s", m.name, m.sig.Key(), c.name)
	}
	c.methods = append(c.methods, m)
	return nil
}

// NewConstructor creates a constructor owned by c. It still has to be added
// with AddConstructor.
func (c *Class) NewConstructor(mods modifier.Modifier, params ...*signature.Parameter) (*Method, error) {
	return newConstructor(c, mods, params)
}

func (c *Class) AddConstructor(m *Method) error {
	if m == nil {
		return errors.IllegalArgumentf("nil constructor for class %s", c.name)
	}
	if m.kind != kindConstructor {
		return errors.CodeValidationf("%s is not a constructor", m.name)
	}
	if m.owner != Type(c) {
		return errors.CodeValidationf("constructor %s%s was not created by class %s", m.name, m.sig.Key(), c.name)
	}
	if findMethod(c.constructors, m) != nil {
		return errors.Duplicatef("constructor %s%s already declared", c.name, m.sig.Key())
	}
	c.constructors = append(c.constructors, m)
	return nil
}

func (c *Class) AddNestedClass(n *Class) error {
	if n == nil {
		return errors.IllegalArgumentf("nil nested class for %s", c.name)
	}
	return c.adopt(c, n)
}

func (c *Class) AddNestedInterface(n *Interface) error {
	if n == nil {
		return errors.IllegalArgumentf("nil nested interface for %s", c.name)
	}
	return c.adopt(c, n)
}

func (c *Class) AddNestedEnum(n *Enum) error {
	if n == nil {
		return errors.IllegalArgumentf("nil nested enum for %s", c.name)
	}
	return c.adopt(c, n)
}

// AppendStaticCode adds code to the static initializer block.
func (c *Class) AppendStaticCode(code string) {
	c.staticCode = joinCode(c.staticCode, code)
}

// FieldByName returns the field named name, or nil.
func (c *Class) FieldByName(name string) *Field {
	for _, f := range c.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// MethodsByName returns every overload named name.
func (c *Class) MethodsByName(name string) []*Method {
	return methodsByName(c.methods, name)
}

// MethodBySignature returns the method with name and parameter types of sig,
// or nil.
func (c *Class) MethodBySignature(name string, sig *signature.Signature) *Method {
	return methodBySignature(c.methods, name, sig)
}

// ConstructorBySignature returns the constructor with the parameter types of
// sig, or nil.
func (c *Class) ConstructorBySignature(sig *signature.Signature) *Method {
	return methodBySignature(c.constructors, c.name, sig)
}

func (c *Class) Imports() []string {
	set := map[string]struct{}{}
	c.collectImports(set)
	return sortedKeys(set)
}

func (c *Class) collectImports(set map[string]struct{}) {
	c.decl.collectImports(set)
	for _, f := range c.fields {
		f.collectImports(set)
	}
	for _, m := range c.constructors {
		m.collectImports(set)
	}
	for _, m := range c.methods {
		m.collectImports(set)
	}
	c.collectNestedImports(set)
}

// Render writes the class. Members are emitted in a fixed order: nested enums,
// nested interfaces, nested classes, fields, constructors, methods and the
// static initializer.
func (c *Class) Render(sb *strings.Builder, depth int) {
	c.writeHeader(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString(c.modifiers.Prefix())
	sb.WriteString("class ")
	sb.WriteString(c.name)
	if c.extends != "" {
		sb.WriteString(" extends ")
		sb.WriteString(c.extends)
	}
	if len(c.implements) > 0 {
		sb.WriteString(" implements ")
		sb.WriteString(strings.Join(c.implements, ", "))
	}
	sb.WriteString(" {\n")

	inner := depth + 1
	sections := append(c.sections(inner),
		func(b *strings.Builder) bool { return render.Join(b, c.fields, inner) },
		func(b *strings.Builder) bool { return render.Join(b, c.constructors, inner) },
		func(b *strings.Builder) bool { return render.Join(b, c.methods, inner) },
		func(b *strings.Builder) bool { return writeStatic(b, c.staticCode, inner) },
	)
	var body strings.Builder
	render.Sections(&body, sections...)
	if body.Len() > 0 {
		sb.WriteString(body.String())
		sb.WriteByte('\n')
	}
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
}

func (c *Class) String() string { return render.String(c) }

func writeStatic(sb *strings.Builder, code string, depth int) bool {
	if strings.TrimSpace(code) == "" {
		return false
	}
	render.WriteIndent(sb, depth)
	sb.WriteString("static {\n")
	render.WriteBlock(sb, code, depth+1)
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
	return true
}
