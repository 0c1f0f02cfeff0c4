package cpp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
	"github.com/cmmoran/srcgen/pkg/signature"
)

func param(t *testing.T, typ, name string) *signature.Parameter {
	t.Helper()
	p, err := signature.NewParameter(modifier.None, typ, name)
	require.NoError(t, err)
	return p
}

func carClass(t *testing.T) *Class {
	t.Helper()
	c, err := NewClass("Car")
	require.NoError(t, err)
	require.NoError(t, c.AddBase("public Vehicle"))

	model, err := NewVariable(modifier.Private, "std::string", "Model", WithInitializer(`"TT"`))
	require.NoError(t, err)
	require.NoError(t, c.AddField(model))

	ctor, err := c.NewConstructor(modifier.Public)
	require.NoError(t, err)
	require.NoError(t, c.AddConstructor(ctor))

	set, err := NewFunction(modifier.Public, "void", "setModel",
		[]*signature.Parameter{param(t, "std::string", "Model")},
		WithBody("this->Model = Model;"))
	require.NoError(t, err)
	require.NoError(t, c.AddMethod(set))

	get, err := NewFunction(modifier.Public, "std::string", "getModel", nil, Const(), WithBody("return this->Model;"))
	require.NoError(t, err)
	require.NoError(t, c.AddMethod(get))
	return c
}

func carHeader(t *testing.T) *SourceFile {
	t.Helper()
	f, err := NewSourceFile("car", "shop::model", Header())
	require.NoError(t, err)
	f.AddInclude("string", true)
	f.AddInclude("vehicle.hpp", false)
	f.AddInclude("stdexcept", true)
	f.AddInclude("string", true)

	td, err := NewTypedef("unsigned int", "uint")
	require.NoError(t, err)
	require.NoError(t, f.Add(td))
	require.NoError(t, f.Add(carClass(t)))
	return f
}

func pointHeader(t *testing.T) *SourceFile {
	t.Helper()
	f, err := NewSourceFile("point", "", Header(), WithDialect(C),
		WithFileComment(render.NewComment(render.BlockComment, "Generated.")))
	require.NoError(t, err)
	require.NoError(t, f.Add(NewDefine("DIMENSIONS", "2")))

	s := NewStruct("point")
	s.SetInstance("origin")
	for _, name := range []string{"x", "y"} {
		v, err := NewVariable(modifier.None, "int", name)
		require.NoError(t, err)
		require.NoError(t, s.AddField(v))
	}
	require.NoError(t, f.Add(s))
	return f
}

func TestGolden(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/golden.txtar")
	require.NoError(t, err)

	builders := map[string]func(*testing.T) *SourceFile{
		"car.hpp": carHeader,
		"point.h": pointHeader,
	}
	require.Len(t, archive.Files, len(builders))

	for _, file := range archive.Files {
		t.Run(file.Name, func(t *testing.T) {
			build, ok := builders[file.Name]
			require.True(t, ok, "no builder for %s", file.Name)
			src := build(t)
			require.Equal(t, file.Name, src.FileName()+src.Extension())

			got := src.String() + "\n"
			if diff := cmp.Diff(string(file.Data), got); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
