package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

func TestLoadYAML(t *testing.T) {
	s, err := Load("testdata/shop.yaml")
	require.NoError(t, err)
	require.Equal(t, "shop", s.Name)
	require.Equal(t, "com.example.shop", s.Package)
	require.Len(t, s.Types, 2)

	code := s.TypeByName("Code")
	require.Equal(t, model.KindSimple, code.Kind())
	require.Equal(t, container.Collapse, code.Restriction.WhiteSpace)
	require.Equal(t, 8, *code.Restriction.MaxLength)

	car := s.TypeByName("Car")
	require.Equal(t, model.KindComplex, car.Kind())
	require.Equal(t, "A vehicle for sale.", car.Comment)
	require.Equal(t, 17, *car.Attributes[0].Restriction.Length)
	require.Equal(t, "TT", car.Elements[0].Default)
	require.Equal(t, model.Occurs(4), car.Elements[2].MaxOccurs)
	require.Equal(t, "owner", car.Elements[3].Ref)
	require.Equal(t, model.Unbounded, car.Elements[3].MaxOccurs)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want error
	}{
		"empty":          {"", errors.ErrIllegalArgument},
		"dangling ref":   {"name: s\ntypes:\n  - name: A\n    elements:\n      - ref: b\n", errors.ErrNotFound},
		"duplicate type": {"name: s\ntypes:\n  - {name: A, base: int}\n  - {name: A, base: int}\n", errors.ErrDuplicate},
		"bad whitespace": {"name: s\ntypes:\n  - name: A\n    base: string\n    restriction: {whiteSpace: squash}\n", nil},
		"unknown key":    {"name: s\ncolour: red\n", nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			require.Error(t, err)
			if tt.want != nil {
				require.True(t, errors.Is(err, tt.want), "got %v", err)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	s, err := Load("testdata/shop.yaml")
	require.NoError(t, err)
	out, err := MarshalYAML(s)
	require.NoError(t, err)

	again, err := ParseYAML(out)
	require.NoError(t, err)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExcludeTypes(t *testing.T) {
	_, err := Load("testdata/shop.yaml", WithExcludeTypes("code"))
	require.NoError(t, err)

	s, err := Load("testdata/shop.yaml", WithExcludeTypes(" CAR "))
	require.NoError(t, err)
	require.Nil(t, s.TypeByName("Car"))
	require.NotNil(t, s.TypeByName("Code"))
}

func TestLoadGo(t *testing.T) {
	s, err := Load("testdata/models", WithExcludeDeprecated())
	require.NoError(t, err)
	require.Equal(t, "models", s.Name)
	require.Equal(t, "github.com/cmmoran/srcgen/internal/loader/testdata/models", s.Package)

	require.Nil(t, s.TypeByName("Truck"))
	require.Equal(t, "string", s.TypeByName("Code").Base)
	require.Equal(t, []*model.Element{{Name: "car", Type: "Car"}}, s.Elements)

	car := s.TypeByName("Car")
	require.Equal(t, "Car is a vehicle for sale.", car.Comment)
	require.Len(t, car.Attributes, 1)
	require.Equal(t, "vin", car.Attributes[0].Name)
	require.Equal(t, 17, *car.Attributes[0].Restriction.Length)

	var names []string
	for _, e := range car.Elements {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"model", "Wheel", "Option", "dealer"}, names)

	require.Equal(t, "TT", car.Elements[0].Default)
	require.Equal(t, "Wheel", car.Elements[1].Type)
	require.Equal(t, model.Occurs(4), car.Elements[1].MaxOccurs)
	require.Equal(t, model.Unbounded, car.Elements[2].MaxOccurs)
	require.Equal(t, container.Collapse, car.Elements[2].Restriction.WhiteSpace)
	require.Equal(t, "Code", car.Elements[3].Type)
	require.NotNil(t, car.Elements[3].MinOccurs)
	require.Zero(t, *car.Elements[3].MinOccurs)

	wheel := s.TypeByName("Wheel")
	require.Equal(t, "double", wheel.Attributes[0].Type)
	require.Equal(t, "10", wheel.Attributes[0].Restriction.MinInclusive)
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := Load(path)
	require.True(t, errors.Is(err, errors.ErrIllegalArgument))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseFacets(t *testing.T) {
	r, err := parseFacets("maxLength=8; pattern=[A-Z]+ ;enumeration=S|M|L;whiteSpace=replace")
	require.NoError(t, err)
	want := &container.Restriction{
		MaxLength:   container.Int(8),
		Pattern:     "[A-Z]+",
		Enumeration: []string{"S", "M", "L"},
		WhiteSpace:  container.Replace,
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("facets mismatch (-want +got):\n%s", diff)
	}

	r, err = parseFacets("")
	require.NoError(t, err)
	require.Nil(t, r)

	for _, bad := range []string{"maxLength", "maxLength=-1", "colour=red", "whiteSpace=squash"} {
		_, err = parseFacets(bad)
		require.Error(t, err, bad)
	}
}

func TestParseXMLTag(t *testing.T) {
	require.Equal(t, xmlTag{name: "id", attr: true, hasTag: true}, parseXMLTag(`xml:"id,attr"`))
	require.Equal(t, xmlTag{name: "", attr: true, hasTag: true}, parseXMLTag(`xml:",attr,omitempty"`))
	require.Equal(t, xmlTag{omit: true, hasTag: true}, parseXMLTag(`xml:"-"`))
	require.Equal(t, xmlTag{}, parseXMLTag(`json:"x"`))
}
