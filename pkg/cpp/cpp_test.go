package cpp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/signature"
)

func TestStructRender(t *testing.T) {
	s := NewStruct("pair")
	s.SetInstance("p")
	a, _ := NewVariable(modifier.None, "double", "first")
	b, _ := NewVariable(modifier.None, "char*", "second")
	require.NoError(t, s.AddField(a))
	require.NoError(t, s.AddField(b))

	require.Equal(t, "struct pair {\n    double first;\n    char* second;\n} p;", s.String())

	dup, _ := NewVariable(modifier.None, "int", "first")
	err := s.AddField(dup)
	require.True(t, errors.Is(err, errors.ErrDuplicate), "got %v", err)

	empty := NewStruct("tag")
	require.Equal(t, "struct tag {\n};", empty.String())
}

func TestEnumRender(t *testing.T) {
	e, err := NewEnum("Color", Scoped(), WithUnderlying("uint8_t"))
	require.NoError(t, err)
	require.NoError(t, e.AddConstant("RED = 1"))
	require.NoError(t, e.AddConstant("GREEN"))
	require.Equal(t, "enum class Color : uint8_t {\n    RED = 1,\n    GREEN\n};", e.String())

	err = e.AddConstant("RED")
	require.True(t, errors.Is(err, errors.ErrDuplicate), "got %v", err)
}

func TestFunctionRender(t *testing.T) {
	p, err := signature.NewParameter(modifier.Final, "int", "n")
	require.NoError(t, err)

	f, err := NewFunction(modifier.Static, "int", "twice", []*signature.Parameter{p}, Inline(), WithBody("return n * 2;"))
	require.NoError(t, err)
	require.Equal(t, "static inline int twice(const int n) {\n    return n * 2;\n}", f.String())

	pure, err := NewFunction(modifier.Public|modifier.Abstract, "double", "area", nil, Const())
	require.NoError(t, err)
	require.Equal(t, "virtual double area() const = 0;", pure.String())
	require.True(t, errors.Is(pure.SetBody("return 0;"), errors.ErrCodeValidation))

	_, err = NewFunction(modifier.Synchronized, "void", "run", nil)
	require.True(t, errors.Is(err, errors.ErrInvalidModifier), "got %v", err)

	_, err = NewVariable(modifier.Transient, "int", "x")
	require.True(t, errors.Is(err, errors.ErrInvalidModifier), "got %v", err)
}

func TestNamespaceScope(t *testing.T) {
	outer, err := NewNamespace("shop")
	require.NoError(t, err)
	inner, err := NewNamespace("model")
	require.NoError(t, err)
	require.NoError(t, outer.Add(inner))

	car, err := NewClass("Car")
	require.NoError(t, err)
	require.NoError(t, inner.Add(car))
	require.Equal(t, "shop::model::Car", car.FullyQualifiedName())

	err = outer.Add(car)
	require.True(t, errors.Is(err, errors.ErrDuplicate), "got %v", err)

	other, _ := NewClass("Car")
	err = inner.Add(other)
	require.True(t, errors.Is(err, errors.ErrDuplicate), "got %v", err)

	require.Equal(t, "namespace model {\n\n    class Car {\n    };\n\n} // namespace model", inner.String())
	require.Same(t, car, inner.Lookup("Car"))
}

func TestFileScopeFullyQualifiedName(t *testing.T) {
	f, err := NewSourceFile("types", "app")
	require.NoError(t, err)
	td, _ := NewTypedef("long", "id_t")
	require.NoError(t, f.Add(td))
	require.Equal(t, "app::id_t", td.FullyQualifiedName())
	require.Equal(t, ".cpp", f.Extension())
	require.Equal(t, "app", f.PackageName())
}

func TestFunctionOverloads(t *testing.T) {
	f, _ := NewSourceFile("math", "")
	mk := func(typ, name string) *Function {
		fn, err := NewFunction(modifier.None, typ, "abs", []*signature.Parameter{param(t, typ, name)}, WithBody("return x < 0 ? -x : x;"))
		require.NoError(t, err)
		return fn
	}
	require.NoError(t, f.Add(mk("int", "x")))
	require.NoError(t, f.Add(mk("double", "x")))
	err := f.Add(mk("int", "y"))
	require.True(t, errors.Is(err, errors.ErrDuplicate), "got %v", err)
}

func TestCDialect(t *testing.T) {
	_, err := NewSourceFile("x", "ns", WithDialect(C))
	require.True(t, errors.Is(err, errors.ErrCodeValidation), "got %v", err)

	f, err := NewSourceFile("x", "", WithDialect(C))
	require.NoError(t, err)
	require.Equal(t, ".c", f.Extension())

	cls, _ := NewClass("X")
	err = f.Add(cls)
	require.True(t, errors.Is(err, errors.ErrCodeValidation), "got %v", err)
}

func TestConstructorOwner(t *testing.T) {
	a, _ := NewClass("A")
	b, _ := NewClass("B")
	ctor, err := a.NewConstructor(modifier.Public)
	require.NoError(t, err)

	err = b.AddConstructor(ctor)
	require.True(t, errors.Is(err, errors.ErrCodeValidation), "got %v", err)
	err = a.AddMethod(ctor)
	require.True(t, errors.Is(err, errors.ErrCodeValidation), "got %v", err)

	_, err = a.NewConstructor(modifier.Static)
	require.True(t, errors.Is(err, errors.ErrInvalidModifier), "got %v", err)
}

func TestClassAccessGroups(t *testing.T) {
	c, _ := NewClass("Counter")
	n, _ := NewVariable(modifier.None, "int", "n")
	require.NoError(t, c.AddField(n))
	step, _ := NewVariable(modifier.Protected|modifier.Static|modifier.Final, "int", "step", WithInitializer("1"))
	require.NoError(t, c.AddField(step))

	kind, _ := NewEnum("Kind")
	require.NoError(t, kind.AddConstant("UP"))
	require.NoError(t, c.AddNested(kind))
	require.Equal(t, "Counter::Kind", kind.FullyQualifiedName())

	want := `class Counter {
public:
    enum Kind {
        UP
    };

protected:
    static const int step = 1;

private:
    int n;
};`
	require.Equal(t, want, c.String())
}
