package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

// functionFlags are the method modifiers C++ can express. Abstract renders as
// a pure virtual function.
const functionFlags = modifier.Visibility | modifier.Static | modifier.Abstract

// Function is a free function, a member function or a constructor.
type Function struct {
	decl
	modifiers   modifier.Modifier
	returnType  string
	sig         *signature.Signature
	body        string
	virtual     bool
	inline      bool
	constMember bool
	prototype   bool
	// owner is set for constructors and names the class that created them.
	owner *Class
}

type FunctionOption func(*Function)

// Virtual marks a member function virtual.
func Virtual() FunctionOption { return func(f *Function) { f.virtual = true } }

// Inline marks a function inline.
func Inline() FunctionOption { return func(f *Function) { f.inline = true } }

// Const marks a member function const.
func Const() FunctionOption { return func(f *Function) { f.constMember = true } }

// Prototype renders the declaration only, terminated by ";".
func Prototype() FunctionOption { return func(f *Function) { f.prototype = true } }

func WithBody(code string) FunctionOption { return func(f *Function) { f.body = code } }

func NewFunction(mods modifier.Modifier, returnType, name string, params []*signature.Parameter, opts ...FunctionOption) (*Function, error) {
	if err := validate(mods, modifier.KindMethod, functionFlags); err != nil {
		return nil, errors.Wrapf(err, "function %s", name)
	}
	if name == "" || returnType == "" {
		return nil, errors.IllegalArgumentf("function requires a return type and a name (type=%q, name=%q)", returnType, name)
	}
	sig, err := signature.New(params...)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s", name)
	}
	f := &Function{decl: decl{name: name}, modifiers: mods, returnType: returnType, sig: sig}
	for _, fn := range opts {
		fn(f)
	}
	if f.modifiers.IsAbstract() {
		f.virtual = true
		f.prototype = true
	}
	return f, nil
}

func (f *Function) Modifiers() modifier.Modifier    { return f.modifiers }
func (f *Function) ReturnType() string              { return f.returnType }
func (f *Function) Signature() *signature.Signature { return f.sig }
func (f *Function) Body() string                    { return f.body }
func (f *Function) IsConstructor() bool             { return f.owner != nil }

// HasBody reports whether the function renders a definition.
func (f *Function) HasBody() bool { return !f.prototype }

func (f *Function) SetBody(code string) error {
	if f.prototype {
		return errors.CodeValidationf("%s is a declaration and cannot have a body", f.name)
	}
	f.body = code
	return nil
}

func (f *Function) PrependBody(code string) error {
	return f.SetBody(joinCode(code, f.body))
}

func (f *Function) AppendBody(code string) error {
	return f.SetBody(joinCode(f.body, code))
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

func (f *Function) parameters() string {
	params := f.sig.Parameters()
	out := make([]string, len(params))
	for i, p := range params {
		if p.Modifiers().IsFinal() {
			out[i] = "const " + p.Type() + " " + p.Name()
			continue
		}
		out[i] = p.Type() + " " + p.Name()
	}
	return strings.Join(out, ", ")
}

func (f *Function) Render(sb *strings.Builder, depth int) {
	f.writeComment(sb, depth)
	render.WriteIndent(sb, depth)
	if f.modifiers.IsStatic() {
		sb.WriteString("static ")
	}
	if f.virtual {
		sb.WriteString("virtual ")
	}
	if f.inline {
		sb.WriteString("inline ")
	}
	if f.owner == nil {
		sb.WriteString(f.returnType)
		sb.WriteByte(' ')
	}
	sb.WriteString(f.name)
	sb.WriteByte('(')
	sb.WriteString(f.parameters())
	sb.WriteByte(')')
	if f.constMember {
		sb.WriteString(" const")
	}
	if f.prototype {
		if f.modifiers.IsAbstract() {
			sb.WriteString(" = 0")
		}
		sb.WriteByte(';')
		return
	}
	sb.WriteString(" {\n")
	render.WriteBlock(sb, f.body, depth+1)
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
}

func (f *Function) String() string { return render.String(f) }
