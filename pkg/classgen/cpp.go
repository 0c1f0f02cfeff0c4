package classgen

import (
	"fmt"
	"strings"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/cpp"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/signature"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// CppStrategy generates C++ classes into headers. C++ has no binding
// framework, so members carry no annotations.
type CppStrategy struct{}

func NewCppStrategy() *CppStrategy { return &CppStrategy{} }

func (s *CppStrategy) Language() string { return Cpp }

func (s *CppStrategy) GenerateClassObject(c *container.AttributeContainer) (workspace.Element, error) {
	cls, err := cpp.NewClass(c.Name())
	if err != nil {
		return nil, err
	}
	for _, m := range c.Members() {
		if err = s.addMember(cls, m); err != nil {
			return nil, errors.Wrapf(err, "member %s of %s", m.Name, c.Name())
		}
	}
	return cls, nil
}

func (s *CppStrategy) addMember(cls *cpp.Class, m container.MemberVariable) error {
	typ := mapType(cppTypes, m.Type)
	var opts []cpp.VariableOption
	switch {
	case m.Kind == container.ElementArray:
		typ = "std::vector<" + typ + ">"
		if m.Bounded() {
			opts = append(opts, cpp.WithInitializer(fmt.Sprintf("%s(%d)", typ, m.Size)))
		}
	case m.Value != "":
		opts = append(opts, cpp.WithInitializer(cppLiteral(typ, m.Value)))
	}

	field, err := cpp.NewVariable(modifier.Private, typ, m.Name, opts...)
	if err != nil {
		return err
	}
	if err = cls.AddField(field); err != nil {
		return err
	}

	p, err := signature.NewParameter(modifier.None, typ, m.Name)
	if err != nil {
		return err
	}
	setter, err := cpp.NewFunction(modifier.Public, "void", "set"+exported(m.Name), []*signature.Parameter{p},
		cpp.WithBody(fmt.Sprintf("this->%s = %s;", m.Name, m.Name)))
	if err != nil {
		return err
	}
	getter, err := cpp.NewFunction(modifier.Public, typ, "get"+exported(m.Name), nil,
		cpp.Const(), cpp.WithBody(fmt.Sprintf("return this->%s;", m.Name)))
	if err != nil {
		return err
	}
	if err = cls.AddMethod(setter); err != nil {
		return err
	}
	return cls.AddMethod(getter)
}

func cppLiteral(typ, v string) string {
	if typ == "std::string" {
		return quote(v)
	}
	return v
}

func (s *CppStrategy) ApplyRestrictions(e workspace.Element, c *container.AttributeContainer) error {
	cls, ok := e.(*cpp.Class)
	if !ok {
		return errors.IllegalArgumentf("%s is not a C++ class", e.Name())
	}
	h := NewRestrictionHelper(CppDialect)
	for _, m := range c.Members() {
		if m.Restriction.IsZero() {
			continue
		}
		code, err := h.Statements(m, mapType(cppTypes, m.Type))
		if err != nil {
			return err
		}
		setters := cls.MethodsByName("set" + exported(m.Name))
		if len(setters) == 0 {
			return errors.NotFoundf("setter for %s not found in %s", m.Name, cls.Name())
		}
		if err = setters[0].PrependBody(code); err != nil {
			return err
		}
	}
	return nil
}

// includes maps identifiers used in generated code to their headers.
var includes = []struct{ token, header string }{
	{"std::string", "string"},
	{"std::vector", "vector"},
	{"std::invalid_argument", "stdexcept"},
	{"std::logic_error", "stdexcept"},
	{"std::regex", "regex"},
	{"std::replace_if", "algorithm"},
	{"std::ostringstream", "sstream"},
}

// NewSourceFile puts e in a header. Dots in pkg become namespace separators
// and the standard headers the class uses are included.
func (s *CppStrategy) NewSourceFile(e workspace.Element, pkg string) (workspace.File, error) {
	cls, ok := e.(*cpp.Class)
	if !ok {
		return nil, errors.IllegalArgumentf("%s is not a C++ class", e.Name())
	}
	f, err := cpp.NewSourceFile(cls.Name(), strings.ReplaceAll(pkg, ".", "::"), cpp.Header())
	if err != nil {
		return nil, err
	}
	text := cls.String()
	for _, inc := range includes {
		if strings.Contains(text, inc.token) {
			f.AddInclude(inc.header, true)
		}
	}
	if err = f.Add(cls); err != nil {
		return nil, err
	}
	return f, nil
}
