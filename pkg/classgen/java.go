package classgen

import (
	"fmt"
	"strings"

	"github.com/cmmoran/srcgen/pkg/annotation"
	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/java"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/signature"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// JavaStrategy generates annotated Java beans.
type JavaStrategy struct {
	mapper *annotation.Mapper
}

// NewJavaStrategy resolves framework, Simple when empty.
func NewJavaStrategy(framework string) (*JavaStrategy, error) {
	if framework == "" {
		framework = annotation.Simple
	}
	m, err := annotation.NewMapper(framework)
	if err != nil {
		return nil, err
	}
	if m.Language() != Java {
		return nil, errors.UnsupportedFrameworkf("framework %s targets %s, not %s", framework, m.Language(), Java)
	}
	return &JavaStrategy{mapper: m}, nil
}

func (s *JavaStrategy) Language() string  { return Java }
func (s *JavaStrategy) Framework() string { return s.mapper.Framework() }

func (s *JavaStrategy) annotation(key annotation.Key, name string) (*java.Annotation, bool) {
	a, ok := s.mapper.Lookup(key)
	if !ok {
		return nil, false
	}
	return java.NewAnnotation(a.Text(name), a.Import), true
}

func (s *JavaStrategy) GenerateClassObject(c *container.AttributeContainer) (workspace.Element, error) {
	cls, err := java.NewClass(modifier.Public, c.Name())
	if err != nil {
		return nil, err
	}
	if a, ok := s.annotation(annotation.Root, c.Name()); ok {
		cls.AddAnnotation(a)
	}
	for _, m := range c.Members() {
		if err = s.addMember(cls, m); err != nil {
			return nil, errors.Wrapf(err, "member %s of %s", m.Name, c.Name())
		}
	}
	return cls, nil
}

func (s *JavaStrategy) addMember(cls *java.Class, m container.MemberVariable) error {
	typ := mapType(javaTypes, m.Type)
	fieldName, accessorType := m.Name, typ

	var opts []java.FieldOption
	switch {
	case m.Kind == container.ElementArray:
		fieldName = m.Name + "[]"
		accessorType = typ + "[]"
		if m.Bounded() {
			opts = append(opts, java.WithInitializer(fmt.Sprintf("new %s[%d]", typ, m.Size)))
		}
	case m.Value != "":
		opts = append(opts, java.WithInitializer(javaLiteral(typ, m.Value)))
	}
	if a, ok := s.annotation(annotation.KeyFor(m.Kind), m.Name); ok {
		opts = append(opts, java.WithFieldAnnotations(a))
	}

	field, err := java.NewField(modifier.Private, typ, fieldName, opts...)
	if err != nil {
		return err
	}
	if err = cls.AddField(field); err != nil {
		return err
	}

	p, err := signature.NewParameter(modifier.None, accessorType, m.Name)
	if err != nil {
		return err
	}
	setter, err := java.NewMethod(modifier.Public, "void", "set"+exported(m.Name), p)
	if err != nil {
		return err
	}
	if err = setter.SetBody(fmt.Sprintf("this.%s = %s;", m.Name, m.Name)); err != nil {
		return err
	}
	getter, err := java.NewMethod(modifier.Public, accessorType, "get"+exported(m.Name))
	if err != nil {
		return err
	}
	if err = getter.SetBody(fmt.Sprintf("return this.%s;", m.Name)); err != nil {
		return err
	}
	if err = cls.AddMethod(setter); err != nil {
		return err
	}
	return cls.AddMethod(getter)
}

func javaLiteral(typ, v string) string {
	switch {
	case typ == "String":
		return quote(v)
	case isBigType(typ):
		return "new " + typ + "(" + quote(v) + ")"
	case typ == "long" && !strings.HasSuffix(v, "L"):
		return v + "L"
	case typ == "float" && !strings.HasSuffix(v, "f"):
		return v + "f"
	}
	return v
}

func (s *JavaStrategy) ApplyRestrictions(e workspace.Element, c *container.AttributeContainer) error {
	cls, ok := e.(*java.Class)
	if !ok {
		return errors.IllegalArgumentf("%s is not a Java class", e.Name())
	}
	h := NewRestrictionHelper(JavaDialect)
	for _, m := range c.Members() {
		if m.Restriction.IsZero() {
			continue
		}
		code, err := h.Statements(m, mapType(javaTypes, m.Type))
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

func (s *JavaStrategy) NewSourceFile(e workspace.Element, pkg string) (workspace.File, error) {
	cls, ok := e.(*java.Class)
	if !ok {
		return nil, errors.IllegalArgumentf("%s is not a Java class", e.Name())
	}
	f := java.NewSourceFile(cls.Name(), pkg)
	if err := f.Add(cls); err != nil {
		return nil, err
	}
	return f, nil
}
