package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

func TestOccurs(t *testing.T) {
	var e Element
	require.NoError(t, yaml.Unmarshal([]byte("name: a\ntype: int\nmaxOccurs: unbounded\n"), &e))
	require.Equal(t, Unbounded, e.MaxOccurs)
	require.True(t, e.Repeated())
	require.Equal(t, container.Unbounded, e.Size())

	require.NoError(t, yaml.Unmarshal([]byte("maxOccurs: 3\n"), &e))
	require.Equal(t, 3, e.Size())

	require.Error(t, yaml.Unmarshal([]byte("maxOccurs: many\n"), &e))

	out, err := yaml.Marshal(&Element{Name: "a", MaxOccurs: Unbounded})
	require.NoError(t, err)
	require.Contains(t, string(out), "maxOccurs: unbounded")
}

func TestKind(t *testing.T) {
	var nilType *Type
	require.Equal(t, KindInvalid, nilType.Kind())
	require.Equal(t, KindSimple, (&Type{Base: "string"}).Kind())
	require.Equal(t, KindComplex, (&Type{Elements: []*Element{{Name: "x", Type: "int"}}}).Kind())
	require.Equal(t, KindComplex, (&Type{}).Kind())
}

func TestResolve(t *testing.T) {
	s := &Schema{Types: []*Type{
		{Name: "Code", Base: "string", Restriction: &container.Restriction{MaxLength: container.Int(8), Pattern: "[A-Z]+"}},
		{Name: "ShortCode", Base: "Code", Restriction: &container.Restriction{MaxLength: container.Int(3)}},
		{Name: "Car", Elements: []*Element{{Name: "code", Type: "ShortCode"}}},
	}}

	typ, r, err := s.Resolve("ShortCode")
	require.NoError(t, err)
	require.Equal(t, "string", typ)
	require.Equal(t, 3, *r.MaxLength)
	require.Equal(t, "[A-Z]+", r.Pattern)

	typ, r, err = s.Resolve("Car")
	require.NoError(t, err)
	require.Equal(t, "Car", typ)
	require.Nil(t, r)

	typ, r, err = s.ResolveInline(&Type{Base: "Code", Restriction: &container.Restriction{Pattern: "[a-z]+"}})
	require.NoError(t, err)
	require.Equal(t, "string", typ)
	require.Equal(t, 8, *r.MaxLength)
	require.Equal(t, "[a-z]+", r.Pattern)

	loop := &Schema{Types: []*Type{{Name: "A", Base: "B"}, {Name: "B", Base: "A"}}}
	_, _, err = loop.Resolve("A")
	require.True(t, errors.Is(err, errors.ErrCodeValidation))
}

func TestValidate(t *testing.T) {
	valid := &Schema{
		Name: "shop",
		Types: []*Type{
			{Name: "Car", Attributes: []*Attribute{{Name: "vin", Type: "string"}}, Elements: []*Element{
				{Name: "model", Type: "string"},
				{Ref: "engine"},
			}},
		},
		Elements: []*Element{
			{Name: "car", Type: "Car"},
			{Name: "engine", ComplexType: &Type{Elements: []*Element{{Name: "power", Type: "int"}}}},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		schema *Schema
		want   error
	}{
		{"unnamed type", &Schema{Types: []*Type{{Base: "string"}}}, errors.ErrIllegalArgument},
		{"duplicate type", &Schema{Types: []*Type{{Name: "A", Base: "int"}, {Name: "A", Base: "int"}}}, errors.ErrDuplicate},
		{"duplicate member", &Schema{Types: []*Type{{Name: "A",
			Attributes: []*Attribute{{Name: "x", Type: "int"}},
			Elements:   []*Element{{Name: "x", Type: "int"}}}}}, errors.ErrDuplicate},
		{"dangling reference", &Schema{Types: []*Type{{Name: "A", Elements: []*Element{{Ref: "missing"}}}}}, errors.ErrNotFound},
		{"two types", &Schema{Elements: []*Element{{Name: "a", Type: "int", SimpleType: &Type{Base: "int"}}}}, errors.ErrCodeValidation},
		{"no type", &Schema{Elements: []*Element{{Name: "a"}}}, errors.ErrCodeValidation},
		{"top-level reference", &Schema{Elements: []*Element{{Ref: "a"}}}, errors.ErrIllegalArgument},
		{"derivation loop", &Schema{Types: []*Type{{Name: "A", Base: "A"}}}, errors.ErrCodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, errors.Is(tt.schema.Validate(), tt.want))
		})
	}
}
