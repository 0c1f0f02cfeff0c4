package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

// Interface is an interface declaration.
type Interface struct {
	typeDecl
	nested
	extends []string
	methods []*Method
}

// NewInterface builds a top-level interface.
func NewInterface(mods modifier.Modifier, name string) (*Interface, error) {
	return newInterface(modifier.KindInterface, mods, name)
}

// NewNestedInterface builds an interface meant to be nested in a class or
// another interface, which may also be protected, private or static.
func NewNestedInterface(mods modifier.Modifier, name string) (*Interface, error) {
	return newInterface(modifier.KindNestedInterface, mods, name)
}

func newInterface(kind modifier.Kind, mods modifier.Modifier, name string) (*Interface, error) {
	if err := modifier.Validate(mods, kind); err != nil {
		return nil, errors.Wrapf(err, "interface %s", name)
	}
	if name == "" {
		return nil, errors.IllegalArgumentf("interface requires a name")
	}
	return &Interface{typeDecl: typeDecl{decl: decl{name: name, modifiers: mods}}}, nil
}

func (i *Interface) Extends() []string  { return append([]string(nil), i.extends...) }
func (i *Interface) Methods() []*Method { return append([]*Method(nil), i.methods...) }

func (i *Interface) AddExtendsInterface(name string) error {
	var err error
	i.extends, err = addUnique(i.extends, name, "extended interface", i.name)
	return err
}

// AddMethod adds a method. Interface methods render as signatures; regular
// methods render as default methods and may only be public, abstract or
// strictfp.
func (i *Interface) AddMethod(m *Method) error {
	if m == nil {
		return errors.IllegalArgumentf("nil method for interface %s", i.name)
	}
	if m.kind == kindConstructor {
		return errors.CodeValidationf("interface %s cannot declare constructor %s", i.name, m.name)
	}
	if m.kind == kindMethod {
		if bad := m.modifiers &^ (modifier.Public | modifier.Abstract | modifier.Strict); bad != modifier.None {
			return errors.Wrapf(&modifier.InvalidModifierError{Kind: modifier.KindInterfaceMethod, Modifiers: bad},
				"method %s of interface %s", m.name, i.name)
		}
	}
	if findMethod(i.methods, m) != nil {
		return errors.Duplicatef("method %s%s already declared in interface %s", m.name, m.sig.Key(), i.name)
	}
	i.methods = append(i.methods, m)
	return nil
}

func (i *Interface) AddNestedClass(n *Class) error {
	if n == nil {
		return errors.IllegalArgumentf("nil nested class for %s", i.name)
	}
	return i.adopt(i, n)
}

func (i *Interface) AddNestedInterface(n *Interface) error {
	if n == nil {
		return errors.IllegalArgumentf("nil nested interface for %s", i.name)
	}
	return i.adopt(i, n)
}

func (i *Interface) AddNestedEnum(n *Enum) error {
	if n == nil {
		return errors.IllegalArgumentf("nil nested enum for %s", i.name)
	}
	return i.adopt(i, n)
}

func (i *Interface) MethodsByName(name string) []*Method {
	return methodsByName(i.methods, name)
}

func (i *Interface) MethodBySignature(name string, sig *signature.Signature) *Method {
	return methodBySignature(i.methods, name, sig)
}

func (i *Interface) Imports() []string {
	set := map[string]struct{}{}
	i.collectImports(set)
	return sortedKeys(set)
}

func (i *Interface) collectImports(set map[string]struct{}) {
	i.decl.collectImports(set)
	for _, m := range i.methods {
		m.collectImports(set)
	}
	i.collectNestedImports(set)
}

func (i *Interface) Render(sb *strings.Builder, depth int) {
	i.writeHeader(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString(i.modifiers.Prefix())
	sb.WriteString("interface ")
	sb.WriteString(i.name)
	if len(i.extends) > 0 {
		sb.WriteString(" extends ")
		sb.WriteString(strings.Join(i.extends, ", "))
	}
	sb.WriteString(" {\n")

	inner := depth + 1
	sections := append(i.sections(inner), func(b *strings.Builder) bool {
		for n, m := range i.methods {
			if n > 0 {
				b.WriteString(render.Separator)
			}
			m.render(b, inner, true)
		}
		return len(i.methods) > 0
	})
	var body strings.Builder
	render.Sections(&body, sections...)
	if body.Len() > 0 {
		sb.WriteString(body.String())
		sb.WriteByte('\n')
	}
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
}

func (i *Interface) String() string { return render.String(i) }
