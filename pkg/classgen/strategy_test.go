package classgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/cmmoran/srcgen/pkg/annotation"
	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/cpp"
	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/golang"
	"github.com/cmmoran/srcgen/pkg/java"
	"github.com/cmmoran/srcgen/pkg/workspace"
)

func build(t *testing.T, b *container.Builder) *container.AttributeContainer {
	t.Helper()
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func carContainer(t *testing.T) *container.AttributeContainer {
	return build(t, container.NewBuilder().SetName("Car").
		AddElement("String", "Model", container.WithValue("TT")))
}

func generate(t *testing.T, s Strategy, c *container.AttributeContainer, pkg string) workspace.File {
	t.Helper()
	e, err := s.GenerateClassObject(c)
	require.NoError(t, err)
	require.NoError(t, s.ApplyRestrictions(e, c))
	f, err := s.NewSourceFile(e, pkg)
	require.NoError(t, err)
	return f
}

func TestGolden(t *testing.T) {
	ar, err := txtar.ParseFile("testdata/golden.txtar")
	require.NoError(t, err)

	javaStrategy, err := New(Java, WithFramework(annotation.Simple))
	require.NoError(t, err)
	cppStrategy, err := New(Cpp)
	require.NoError(t, err)

	holder := build(t, container.NewBuilder().SetName("Holder").AddElementArray("int", "Values", 3))

	files := map[string]workspace.File{
		"Car.java":    generate(t, javaStrategy, carContainer(t), "com.example"),
		"Holder.java": generate(t, javaStrategy, holder, "com.example"),
		"Car.hpp":     generate(t, cppStrategy, carContainer(t), "shop.model"),
	}
	require.Len(t, ar.Files, len(files))
	for _, want := range ar.Files {
		t.Run(want.Name, func(t *testing.T) {
			f, ok := files[want.Name]
			require.True(t, ok, "no generator for %s", want.Name)
			require.Equal(t, want.Name, f.FileName()+f.Extension())
			if diff := cmp.Diff(string(want.Data), f.String()+"\n"); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", want.Name, diff)
			}
		})
	}
}

func TestJavaCar(t *testing.T) {
	s, err := NewJavaStrategy(annotation.Simple)
	require.NoError(t, err)
	e, err := s.GenerateClassObject(carContainer(t))
	require.NoError(t, err)

	cls, ok := e.(*java.Class)
	require.True(t, ok)
	require.Equal(t, "Car", cls.Name())

	model := cls.FieldByName("Model")
	require.NotNil(t, model)
	require.Equal(t, "String", model.Type())
	require.Equal(t, `"TT"`, model.Initializer())
	require.True(t, model.Modifiers().IsPrivate())

	setters := cls.MethodsByName("setModel")
	require.Len(t, setters, 1)
	require.Equal(t, []string{"String"}, setters[0].Signature().Types())
	getters := cls.MethodsByName("getModel")
	require.Len(t, getters, 1)
	require.Equal(t, "String", getters[0].ReturnType())
	require.Equal(t, "return this.Model;", getters[0].Body())

	require.Equal(t, []string{
		"org.simpleframework.xml.Element",
		"org.simpleframework.xml.Root",
	}, cls.Imports())
}

func TestJavaFrameworks(t *testing.T) {
	c := build(t, container.NewBuilder().SetName("Order").
		AddAttribute("string", "id").
		AddUnboundedElementArray("string", "item"))

	tests := []struct {
		framework string
		want      []string
	}{
		{annotation.JAXB, []string{"@XmlRootElement", "@XmlAttribute", "@XmlElement"}},
		{annotation.XStream, []string{`@XStreamAlias("Order")`, "@XStreamAsAttribute", `@XStreamImplicit(itemFieldName = "item")`}},
	}
	for _, tt := range tests {
		t.Run(tt.framework, func(t *testing.T) {
			s, err := NewJavaStrategy(tt.framework)
			require.NoError(t, err)
			e, err := s.GenerateClassObject(c)
			require.NoError(t, err)
			text := e.String()
			for _, w := range tt.want {
				require.Contains(t, text, w)
			}
			require.Contains(t, text, "private String item[];")
			require.Contains(t, text, "public String[] getItem()")
		})
	}
}

func TestJavaLiterals(t *testing.T) {
	c := build(t, container.NewBuilder().SetName("Totals").
		AddElement("decimal", "sum", container.WithValue("1.50")).
		AddElement("long", "count", container.WithValue("7")).
		AddElement("float", "ratio", container.WithValue("0.5")))
	s, err := NewJavaStrategy("")
	require.NoError(t, err)
	e, err := s.GenerateClassObject(c)
	require.NoError(t, err)

	text := e.String()
	require.Contains(t, text, `private java.math.BigDecimal sum = new java.math.BigDecimal("1.50");`)
	require.Contains(t, text, "private long count = 7L;")
	require.Contains(t, text, "private float ratio = 0.5f;")
}

func TestUnknownFrameworkAndLanguage(t *testing.T) {
	_, err := New(Java, WithFramework("Castor"))
	require.True(t, errors.Is(err, errors.ErrUnsupportedFramework))

	_, err = New(Java, WithFramework(annotation.EncodingXML))
	require.True(t, errors.Is(err, errors.ErrUnsupportedFramework))

	_, err = New(Go, WithFramework(annotation.Simple))
	require.True(t, errors.Is(err, errors.ErrUnsupportedFramework))

	_, err = New(Cpp, WithFramework(annotation.Simple))
	require.True(t, errors.Is(err, errors.ErrUnsupportedFramework))

	_, err = New("cobol")
	require.True(t, errors.Is(err, errors.ErrIllegalArgument))
	require.Contains(t, errors.FlattenHints(err), "cpp, go, java")

	s, err := New("JAVA")
	require.NoError(t, err)
	require.Equal(t, Java, s.Language())
	require.Equal(t, []string{Cpp, Go, Java}, Languages())
}

func TestJavaRestrictions(t *testing.T) {
	c := build(t, container.NewBuilder().SetName("Account").
		AddElement("string", "code", container.WithRestriction(&container.Restriction{
			MaxLength:  container.Int(8),
			WhiteSpace: container.Collapse,
		})).
		AddElement("decimal", "balance", container.WithRestriction(&container.Restriction{
			MinInclusive: "0",
		})).
		AddElement("string", "plain"))
	s, err := NewJavaStrategy(annotation.Simple)
	require.NoError(t, err)
	e, err := s.GenerateClassObject(c)
	require.NoError(t, err)
	require.NoError(t, s.ApplyRestrictions(e, c))

	cls := e.(*java.Class)
	require.Equal(t, strings.Join([]string{
		`code = code.replaceAll("[\\t\\n\\r ]+", " ").trim();`,
		"if (code.length() > 8) {",
		`    throw new IllegalArgumentException("code: length must be at most 8");`,
		"}",
		"this.code = code;",
	}, "\n"), cls.MethodsByName("setCode")[0].Body())
	require.Equal(t, strings.Join([]string{
		`if (balance.compareTo(new java.math.BigDecimal("0")) < 0) {`,
		`    throw new IllegalArgumentException("balance: must be >= 0");`,
		"}",
		"this.balance = balance;",
	}, "\n"), cls.MethodsByName("setBalance")[0].Body())
	require.Equal(t, "this.plain = plain;", cls.MethodsByName("setPlain")[0].Body())
}

func TestRestrictionStatements(t *testing.T) {
	member := func(kind container.Kind, name string, r *container.Restriction) container.MemberVariable {
		return container.MemberVariable{Kind: kind, Name: name, Restriction: r}
	}
	tests := []struct {
		name    string
		dialect Dialect
		member  container.MemberVariable
		typ     string
		want    string
	}{
		{
			name:    "cpp exclusive bound",
			dialect: CppDialect,
			member:  member(container.Element, "age", &container.Restriction{MaxExclusive: "150"}),
			typ:     "int",
			want:    "if (age >= 150) {\n    throw std::invalid_argument(\"age: must be < 150\");\n}",
		},
		{
			name:    "cpp array length",
			dialect: CppDialect,
			member:  member(container.ElementArray, "tags", &container.Restriction{Length: container.Int(2)}),
			typ:     "std::string",
			want:    "if (tags.size() != 2) {\n    throw std::invalid_argument(\"tags: length must be 2\");\n}",
		},
		{
			name:    "java array min length",
			dialect: JavaDialect,
			member:  member(container.ElementArray, "tags", &container.Restriction{MinLength: container.Int(1)}),
			typ:     "String",
			want:    "if (tags.length < 1) {\n    throw new IllegalArgumentException(\"tags: length must be at least 1\");\n}",
		},
		{
			name:    "java string enumeration",
			dialect: JavaDialect,
			member:  member(container.Element, "size", &container.Restriction{Enumeration: []string{"S", "M"}}),
			typ:     "String",
			want:    "if (!\"S\".equals(size) && !\"M\".equals(size)) {\n    throw new IllegalArgumentException(\"size: value must be one of [S, M]\");\n}",
		},
		{
			name:    "cpp replace whitespace",
			dialect: CppDialect,
			member:  member(container.Element, "name", &container.Restriction{WhiteSpace: container.Replace}),
			typ:     "std::string",
			want:    `std::replace_if(name.begin(), name.end(), [](char c) { return c == '\t' || c == '\n' || c == '\r'; }, ' ');`,
		},
		{
			name:    "java long bound",
			dialect: JavaDialect,
			member:  member(container.Element, "count", &container.Restriction{MaxInclusive: "3000000000"}),
			typ:     "long",
			want:    "if (count > 3000000000L) {\n    throw new IllegalArgumentException(\"count: must be <= 3000000000\");\n}",
		},
		{
			name:    "java float enumeration",
			dialect: JavaDialect,
			member:  member(container.Element, "ratio", &container.Restriction{Enumeration: []string{"0.5", "1.5"}}),
			typ:     "float",
			want:    "if (ratio != 0.5f && ratio != 1.5f) {\n    throw new IllegalArgumentException(\"ratio: value must be one of [0.5, 1.5]\");\n}",
		},
		{
			name:    "no facets",
			dialect: JavaDialect,
			member:  member(container.Element, "x", nil),
			typ:     "int",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRestrictionHelper(tt.dialect).Statements(tt.member, tt.typ)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRestrictionPatternAndDigits(t *testing.T) {
	m := container.MemberVariable{Kind: container.Element, Name: "zip", Restriction: &container.Restriction{Pattern: `[0-9]{5}`}}
	got, err := NewRestrictionHelper(JavaDialect).Statements(m, "String")
	require.NoError(t, err)
	require.Contains(t, got, `if (!java.util.regex.Pattern.matches("[0-9]{5}", zip)) {`)
	require.Contains(t, got, "} catch (java.util.regex.PatternSyntaxException e) {")

	got, err = NewRestrictionHelper(CppDialect).Statements(m, "std::string")
	require.NoError(t, err)
	require.Contains(t, got, `if (!std::regex_match(zip, std::regex("[0-9]{5}"))) {`)
	require.Contains(t, got, "} catch (const std::regex_error& e) {")

	m = container.MemberVariable{Kind: container.Element, Name: "price", Restriction: &container.Restriction{
		TotalDigits: container.Int(5), FractionDigits: container.Int(2),
	}}
	got, err = NewRestrictionHelper(JavaDialect).Statements(m, "java.math.BigDecimal")
	require.NoError(t, err)
	require.Contains(t, got, `String digits = price.toPlainString().replaceFirst("^-", "");`)
	require.Contains(t, got, "    if (total > 5) {")
	require.Contains(t, got, "    if (fraction > 2) {")
}

func TestRestrictionTypeMismatch(t *testing.T) {
	tests := map[string]*container.Restriction{
		"whitespace": {WhiteSpace: container.Collapse},
		"length":     {Length: container.Int(1)},
		"pattern":    {Pattern: "a"},
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			m := container.MemberVariable{Kind: container.Element, Name: "n", Restriction: r}
			_, err := NewRestrictionHelper(JavaDialect).Statements(m, "int")
			require.True(t, errors.Is(err, errors.ErrCodeValidation))
		})
	}

	m := container.MemberVariable{Kind: container.Element, Name: "s", Restriction: &container.Restriction{MinInclusive: "1"}}
	_, err := NewRestrictionHelper(CppDialect).Statements(m, "std::string")
	require.True(t, errors.Is(err, errors.ErrCodeValidation))
}

func TestCppStrategy(t *testing.T) {
	c := build(t, container.NewBuilder().SetName("Route").
		AddElementArray("string", "stops", 4, container.WithRestriction(&container.Restriction{
			MaxLength: container.Int(4),
		})).
		AddElement("decimal", "distance"))
	s := NewCppStrategy()
	e, err := s.GenerateClassObject(c)
	require.NoError(t, err)
	require.NoError(t, s.ApplyRestrictions(e, c))

	cls := e.(*cpp.Class)
	stops := cls.FieldByName("stops")
	require.NotNil(t, stops)
	require.Equal(t, "std::vector<std::string>", stops.Type())
	require.Equal(t, "std::vector<std::string>(4)", stops.Initializer())
	require.Equal(t, "long double", cls.FieldByName("distance").Type())

	set := cls.MethodsByName("setStops")
	require.Len(t, set, 1)
	require.True(t, strings.HasPrefix(set[0].Body(), "if (stops.size() > 4) {"))

	f, err := s.NewSourceFile(e, "transit")
	require.NoError(t, err)
	text := f.String()
	for _, inc := range []string{"#include <stdexcept>", "#include <string>", "#include <vector>"} {
		require.Contains(t, text, inc)
	}
	require.NotContains(t, text, "#include <regex>")
	require.Contains(t, text, "namespace transit {")
}

func TestGoStrategy(t *testing.T) {
	c := build(t, container.NewBuilder().SetName("car").
		AddAttribute("string", "vin").
		AddElement("String", "model", container.WithValue("TT")).
		AddElementArray("string", "wheel", 4).
		AddUnboundedElementArray("int", "option"))
	s, err := New(Go)
	require.NoError(t, err)
	e, err := s.GenerateClassObject(c)
	require.NoError(t, err)
	require.NoError(t, s.ApplyRestrictions(e, c))
	require.Equal(t, "Car", e.Name())

	f, err := s.NewSourceFile(e, "github.com/acme/model")
	require.NoError(t, err)
	require.Equal(t, "car", f.FileName())
	require.Equal(t, golang.Extension, f.Extension())
	require.Equal(t, "github.com/acme/model.Car", e.FullyQualifiedName())

	text := strings.Join(strings.Fields(f.String()), " ")
	for _, want := range []string{
		"// Code generated by srcgen. DO NOT EDIT.",
		"package model",
		`"encoding/xml"`,
		"type Car struct {",
		"XMLName xml.Name `xml:\"car\"`",
		"Vin string `xml:\"vin,attr\"`",
		"Model string `xml:\"model\"`",
		"Wheels [4]string `xml:\"wheel\"`",
		"Options []int `xml:\"option\"`",
		"func NewCar() *Car {",
		`Model: "TT"`,
		"func (c *Car) SetModel(v string) { c.Model = v }",
		"func (c *Car) GetWheels() [4]string { return c.Wheels }",
	} {
		require.Contains(t, text, want)
	}
}

func TestGoStrategyFieldClash(t *testing.T) {
	c := build(t, container.NewBuilder().SetName("Pair").
		AddElement("int", "value").
		AddElement("int", "Value"))
	s, err := NewGoStrategy("")
	require.NoError(t, err)
	_, err = s.GenerateClassObject(c)
	require.True(t, errors.Is(err, errors.ErrDuplicate))
}

func TestWrongElement(t *testing.T) {
	c := carContainer(t)
	javaStrategy, err := NewJavaStrategy("")
	require.NoError(t, err)
	e, err := NewCppStrategy().GenerateClassObject(c)
	require.NoError(t, err)

	require.True(t, errors.Is(javaStrategy.ApplyRestrictions(e, c), errors.ErrIllegalArgument))
	_, err = javaStrategy.NewSourceFile(e, "x")
	require.True(t, errors.Is(err, errors.ErrIllegalArgument))
}
