package classgen

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/jinzhu/inflection"

	"github.com/cmmoran/srcgen/pkg/annotation"
	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/golang"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

// GoStrategy generates Go structs with exported fields tagged for
// encoding/xml, a constructor applying default values and Get/Set methods.
type GoStrategy struct {
	mapper *annotation.Mapper
}

// NewGoStrategy resolves framework, EncodingXML when empty.
func NewGoStrategy(framework string) (*GoStrategy, error) {
	if framework == "" {
		framework = annotation.EncodingXML
	}
	m, err := annotation.NewMapper(framework)
	if err != nil {
		return nil, err
	}
	if m.Language() != Go {
		return nil, errors.UnsupportedFrameworkf("framework %s targets %s, not %s", framework, m.Language(), Go)
	}
	return &GoStrategy{mapper: m}, nil
}

func (s *GoStrategy) Language() string { return Go }

func (s *GoStrategy) tag(key annotation.Key, name string) map[string]string {
	a, ok := s.mapper.Lookup(key)
	if !ok {
		return nil
	}
	return map[string]string{"xml": a.Text(name)}
}

// fieldName is the exported Go name of m. Arrays are pluralised.
func fieldName(m container.MemberVariable) string {
	name := exported(m.Name)
	if m.Kind == container.ElementArray {
		return inflection.Plural(name)
	}
	return name
}

func receiver(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "t"
}

func (s *GoStrategy) GenerateClassObject(c *container.AttributeContainer) (workspace.Element, error) {
	name := exported(c.Name())
	if name == "" {
		return nil, errors.IllegalArgumentf("struct requires a name")
	}
	recv := receiver(name)

	var (
		fields   []jen.Code
		defaults = jen.Dict{}
		methods  []jen.Code
		seen     = map[string]string{}
	)
	if tag := s.tag(annotation.Root, c.Name()); tag != nil {
		fields = append(fields, jen.Id("XMLName").Qual("encoding/xml", "Name").Tag(tag))
	}
	for _, m := range c.Members() {
		field := fieldName(m)
		if prev, ok := seen[field]; ok {
			return nil, errors.Duplicatef("members %s and %s of %s both map to field %s", prev, m.Name, c.Name(), field)
		}
		seen[field] = m.Name

		typ := mapType(goTypes, m.Type)
		fieldType := jen.Id(typ)
		switch {
		case m.Kind == container.ElementArray && m.Bounded():
			fieldType = jen.Index(jen.Lit(m.Size)).Id(typ)
		case m.Kind == container.ElementArray:
			fieldType = jen.Index().Id(typ)
		case m.Value != "" && typ == "string":
			defaults[jen.Id(field)] = jen.Lit(m.Value)
		case m.Value != "":
			defaults[jen.Id(field)] = jen.Op(m.Value)
		}

		stmt := jen.Id(field).Add(fieldType)
		if tag := s.tag(annotation.KeyFor(m.Kind), m.Name); tag != nil {
			stmt = stmt.Tag(tag)
		}
		fields = append(fields, stmt)

		methods = append(methods,
			jen.Func().Params(jen.Id(recv).Op("*").Id(name)).Id("Set"+field).
				Params(jen.Id("v").Add(fieldType.Clone())).
				Block(jen.Id(recv).Dot(field).Op("=").Id("v")),
			jen.Func().Params(jen.Id(recv).Op("*").Id(name)).Id("Get"+field).
				Params().Add(fieldType.Clone()).
				Block(jen.Return(jen.Id(recv).Dot(field))),
		)
	}

	t := golang.NewType(name,
		jen.Commentf("%s is generated from the %s type.", name, c.Name()),
		jen.Type().Id(name).Struct(fields...),
		jen.Func().Id("New"+name).Params().Op("*").Id(name).Block(
			jen.Return(jen.Op("&").Id(name).Values(defaults)),
		),
	)
	t.Add(methods...)
	return t, nil
}

// ApplyRestrictions is a no-op for Go: generated setters do not return
// errors, so facets are only reported.
func (s *GoStrategy) ApplyRestrictions(e workspace.Element, c *container.AttributeContainer) error {
	if _, ok := e.(*golang.Type); !ok {
		return errors.IllegalArgumentf("%s is not a Go type", e.Name())
	}
	for _, m := range c.Members() {
		if !m.Restriction.IsZero() {
			slog.Warn("restriction facets are not enforced in Go output",
				slog.String("type", c.Name()), slog.String("member", m.Name))
		}
	}
	return nil
}

func (s *GoStrategy) NewSourceFile(e workspace.Element, pkg string) (workspace.File, error) {
	t, ok := e.(*golang.Type)
	if !ok {
		return nil, errors.IllegalArgumentf("%s is not a Go type", e.Name())
	}
	f := golang.NewFile(strings.ToLower(t.Name()), pkg)
	f.SetHeaderComment("Code generated by srcgen. DO NOT EDIT.")
	if err := f.Add(t); err != nil {
		return nil, err
	}
	return f, nil
}
