package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/srcgen/pkg/errors"
)

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateJava(t *testing.T) {
	out := t.TempDir()
	res, err := Generate(context.Background(), &Options{
		Schema:   "testdata/shop.yaml",
		Language: "java",
		Out:      out,
		Subdir:   "src",
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "src", "com", "example", "shop", "Car.java")}, res.Written)
	require.Len(t, res.Workspace.Files(), 1)

	text := read(t, res.Written[0])
	require.Contains(t, text, "package com.example.shop;")
	require.Contains(t, text, "public class Car {")
}

func TestGenerateGoWithPrefix(t *testing.T) {
	out := t.TempDir()
	res, err := Generate(context.Background(), &Options{
		Schema:     "testdata/shop.yaml",
		Language:   "Go",
		Out:        out,
		Package:    "example.com/shop/model",
		ModulePath: "example.com/shop",
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "model", "car.go")}, res.Written)

	text := read(t, res.Written[0])
	require.Contains(t, text, "package model")
	require.Contains(t, text, "type Car struct")

	res, err = Generate(context.Background(), &Options{
		Schema:   "testdata/shop.yaml",
		Language: "cpp",
		Out:      out,
		Prefixes: map[string]string{"com.example": "shop"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(out, "shop", "shop", "Car.hpp")}, res.Written)
}

func TestGenerateExcludeTypes(t *testing.T) {
	res, err := Generate(context.Background(), &Options{
		Schema:       "testdata/shop.yaml",
		Language:     "java",
		Out:          t.TempDir(),
		ExcludeTypes: []string{"car"},
	})
	require.NoError(t, err)
	require.Empty(t, res.Written)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(context.Background(), &Options{Schema: "testdata/shop.yaml", Language: "cobol", Out: t.TempDir()})
	require.True(t, errors.Is(err, errors.ErrIllegalArgument), "got %v", err)

	_, err = Generate(context.Background(), &Options{Schema: "testdata/shop.yaml", Language: "java", Framework: "Jackson", Out: t.TempDir()})
	require.True(t, errors.Is(err, errors.ErrUnsupportedFramework), "got %v", err)

	_, err = Generate(context.Background(), &Options{Schema: "testdata/none.yaml", Language: "java", Out: t.TempDir()})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Generate(ctx, &Options{Schema: "testdata/shop.yaml", Language: "java", Out: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNormalize(t *testing.T) {
	o := NewOptions()
	o.Schema = "shop.yaml"
	o.Language = "CPP"
	require.NoError(t, o.Normalize("com.example=src/main", "org=lib"))
	require.Equal(t, "cpp", o.Language)
	require.Equal(t, map[string]string{"com.example": "src/main", "org": "lib"}, o.Prefixes)

	require.Error(t, (&Options{Schema: "s.yaml"}).Normalize("nodir"))
	require.Error(t, (&Options{}).Normalize())
}
