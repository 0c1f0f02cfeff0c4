package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/srcgen/pkg/errors"
)

type file struct {
	name, pkg, ext, text string
}

func (f file) String() string      { return f.text }
func (f file) FileName() string    { return f.name }
func (f file) PackageName() string { return f.pkg }
func (f file) Extension() string   { return f.ext }

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateWritesFiles(t *testing.T) {
	root := t.TempDir()
	ws := New(WithRoot(root), WithSubdir("gen"))

	require.NoError(t, ws.Add(file{name: "Car", pkg: "com.example", ext: ".java", text: "class Car {}"}))
	require.NoError(t, ws.Add(file{name: "car", pkg: "shop::model", ext: ".hpp", text: "class Car {};"}))
	require.NoError(t, ws.Add(file{name: "car", pkg: "shop::model", ext: ".cpp", text: "// impl"}))
	require.NoError(t, ws.Add(file{name: "README", text: "plain"}))

	paths, err := ws.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "gen", "com", "example", "Car.java"),
		filepath.Join(root, "gen", "shop", "model", "car.hpp"),
		filepath.Join(root, "gen", "shop", "model", "car.cpp"),
		filepath.Join(root, "gen", "README"),
	}, paths)
	require.Equal(t, "class Car {}\n", read(t, paths[0]))
	require.Equal(t, "plain\n", read(t, paths[3]))
}

func TestDuplicateAndLookup(t *testing.T) {
	ws := New()
	car := file{name: "Car", pkg: "com.example", ext: ".java"}
	require.NoError(t, ws.Add(car))

	err := ws.Add(file{name: "Car", pkg: "com.example", ext: ".java", text: "other"})
	require.True(t, errors.Is(err, errors.ErrDuplicate), "got %v", err)

	got, ok := ws.Lookup("com.example.Car")
	require.True(t, ok)
	require.Equal(t, File(car), got)
	_, ok = ws.Lookup("com.example.Car.java")
	require.True(t, ok)
	_, ok = ws.Lookup("com.example.Bus")
	require.False(t, ok)

	require.Len(t, ws.Files(), 1)
	err = ws.Add(file{pkg: "x"})
	require.True(t, errors.Is(err, errors.ErrIllegalArgument), "got %v", err)
}

func TestPackagePrefixLongestWins(t *testing.T) {
	ws := New(
		WithRoot("out"),
		WithPackagePrefix("com", "src"),
		WithPackagePrefixes(map[string]string{"com.example": "example/java"}),
	)
	tests := []struct {
		f    file
		want string
	}{
		{file{name: "Car", pkg: "com.example", ext: ".java"}, filepath.Join("out", "example", "java", "Car.java")},
		{file{name: "Wheel", pkg: "com.example.parts", ext: ".java"}, filepath.Join("out", "example", "java", "parts", "Wheel.java")},
		{file{name: "Other", pkg: "com.other", ext: ".java"}, filepath.Join("out", "src", "other", "Other.java")},
		{file{name: "Plain", pkg: "community", ext: ".java"}, filepath.Join("out", "community", "Plain.java")},
	}
	for _, tt := range tests {
		got, err := ws.Path(tt.f)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestGoFilesUseModulePath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/demo\n\ngo 1.24\n"), 0o644))

	ws := New(WithRoot(root))
	got, err := ws.Path(file{name: "car", pkg: "example.com/demo/models", ext: ".go"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "models", "car.go"), got)

	_, err = ws.Path(file{name: "car", pkg: "example.org/elsewhere", ext: ".go"})
	require.True(t, errors.Is(err, errors.ErrIllegalArgument), "got %v", err)

	override := New(WithRoot(root), WithModulePath("example.com"))
	got, err = override.Path(file{name: "car", pkg: "example.com/demo/models", ext: ".go"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "demo", "models", "car.go"), got)
}

func TestGenerateHonoursContext(t *testing.T) {
	ws := New(WithRoot(t.TempDir()))
	require.NoError(t, ws.Add(file{name: "A", ext: ".java"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := ws.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, paths)
}
