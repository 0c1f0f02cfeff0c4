package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

type methodKind int

const (
	kindMethod methodKind = iota
	kindConstructor
	kindInterfaceMethod
)

// Method is a method, a constructor or an interface method signature.
type Method struct {
	decl
	kind       methodKind
	returnType string
	sig        *signature.Signature
	throws     []string
	body       string
	// owner is the type whose NewConstructor created a constructor.
	owner Type
}

// NewMethod builds a body-bearing method.
func NewMethod(mods modifier.Modifier, returnType, name string, params ...*signature.Parameter) (*Method, error) {
	return newMethod(kindMethod, modifier.KindMethod, mods, returnType, name, params)
}

// NewInterfaceMethod builds a method signature without a body.
func NewInterfaceMethod(mods modifier.Modifier, returnType, name string, params ...*signature.Parameter) (*Method, error) {
	return newMethod(kindInterfaceMethod, modifier.KindInterfaceMethod, mods, returnType, name, params)
}

func newConstructor(owner Type, mods modifier.Modifier, params []*signature.Parameter) (*Method, error) {
	m, err := newMethod(kindConstructor, modifier.KindConstructor, mods, "", owner.Name(), params)
	if err != nil {
		return nil, err
	}
	m.owner = owner
	return m, nil
}

func newMethod(kind methodKind, mk modifier.Kind, mods modifier.Modifier, returnType, name string, params []*signature.Parameter) (*Method, error) {
	if err := modifier.Validate(mods, mk); err != nil {
		return nil, errors.Wrapf(err, "%s %s", mk, name)
	}
	if name == "" {
		return nil, errors.IllegalArgumentf("%s requires a name", mk)
	}
	if kind != kindConstructor && returnType == "" {
		return nil, errors.IllegalArgumentf("%s %s requires a return type", mk, name)
	}
	sig, err := signature.New(params...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", mk, name)
	}
	return &Method{
		decl:       decl{name: name, modifiers: mods},
		kind:       kind,
		returnType: returnType,
		sig:        sig,
	}, nil
}

func (m *Method) ReturnType() string              { return m.returnType }
func (m *Method) Signature() *signature.Signature { return m.sig }
func (m *Method) Throws() []string                { return append([]string(nil), m.throws...) }
func (m *Method) Body() string                    { return m.body }
func (m *Method) IsConstructor() bool             { return m.kind == kindConstructor }
func (m *Method) IsInterfaceMethod() bool         { return m.kind == kindInterfaceMethod }

// HasBody reports whether the method renders a body rather than ";".
func (m *Method) HasBody() bool {
	return m.kind != kindInterfaceMethod && !m.modifiers.IsAbstract() && !m.modifiers.IsNative()
}

// AddParameter appends a parameter; a name already in the signature is a
// duplicate.
func (m *Method) AddParameter(p *signature.Parameter) error {
	return errors.Wrapf(m.sig.Add(p), "%s", m.name)
}

// AddThrows declares an exception type.
func (m *Method) AddThrows(exception string) error {
	var err error
	m.throws, err = addUnique(m.throws, exception, "exception", m.name)
	return err
}

// SetBody replaces the body code.
func (m *Method) SetBody(code string) error {
	if !m.HasBody() {
		return errors.CodeValidationf("%s %s cannot have a body", m.modifiers, m.name)
	}
	m.body = code
	return nil
}

// AppendBody adds code after the current body.
func (m *Method) AppendBody(code string) error {
	return m.SetBody(joinCode(m.body, code))
}

// PrependBody adds code before the current body.
func (m *Method) PrependBody(code string) error {
	return m.SetBody(joinCode(code, m.body))
}

func joinCode(a, b string) string {
	a = strings.TrimRight(a, "\n")
	b = strings.TrimRight(b, "\n")
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

// sameAs reports whether o clashes with m: same name and equal signature.
func (m *Method) sameAs(o *Method) bool {
	return m.name == o.name && m.sig.Equal(o.sig)
}

func (m *Method) Render(sb *strings.Builder, depth int) {
	m.render(sb, depth, false)
}

func (m *Method) render(sb *strings.Builder, depth int, inInterface bool) {
	m.writeHeader(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString(m.modifiers.Prefix())
	if inInterface && m.HasBody() && !m.modifiers.IsStatic() && !m.modifiers.IsPrivate() {
		sb.WriteString("default ")
	}
	if m.kind != kindConstructor {
		sb.WriteString(m.returnType)
		sb.WriteByte(' ')
	}
	sb.WriteString(m.name)
	sb.WriteByte('(')
	sb.WriteString(m.sig.String())
	sb.WriteByte(')')
	if len(m.throws) > 0 {
		sb.WriteString(" throws ")
		sb.WriteString(strings.Join(m.throws, ", "))
	}
	if !m.HasBody() {
		sb.WriteByte(';')
		return
	}
	sb.WriteString(" {\n")
	render.WriteBlock(sb, m.body, depth+1)
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
}

func (m *Method) String() string { return render.String(m) }

func findMethod(methods []*Method, m *Method) *Method {
	for _, o := range methods {
		if o.sameAs(m) {
			return o
		}
	}
	return nil
}

func methodsByName(methods []*Method, name string) []*Method {
	var out []*Method
	for _, m := range methods {
		if m.name == name {
			out = append(out, m)
		}
	}
	return out
}

func methodBySignature(methods []*Method, name string, sig *signature.Signature) *Method {
	for _, m := range methods {
		if m.name == name && m.sig.Equal(sig) {
			return m
		}
	}
	return nil
}
