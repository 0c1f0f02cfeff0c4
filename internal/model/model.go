// Package model describes the schemas the fabric turns into classes: named
// simple and complex types, elements and attributes, in the shape of an XML
// Schema document.
package model

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindSimple       // restricted builtin, no members
	KindComplex      // attributes and elements
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindComplex:
		return "complex"
	}
	return "invalid"
}

// Occurs is a maxOccurs value. Zero means the default of one; Unbounded
// spells "unbounded".
type Occurs int

const Unbounded = Occurs(container.Unbounded)

func (o *Occurs) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.IllegalArgumentf("line %d: maxOccurs must be a scalar", n.Line)
	}
	if strings.EqualFold(n.Value, "unbounded") {
		*o = Unbounded
		return nil
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil || v < 0 {
		return errors.IllegalArgumentf("line %d: invalid maxOccurs %q", n.Line, n.Value)
	}
	*o = Occurs(v)
	return nil
}

func (o Occurs) MarshalYAML() (any, error) {
	if o == Unbounded {
		return "unbounded", nil
	}
	return int(o), nil
}

// Schema is a set of named types and top-level elements. Package is the
// target package or namespace of generated sources.
type Schema struct {
	Name     string     `yaml:"name"`
	Package  string     `yaml:"package,omitempty"`
	Types    []*Type    `yaml:"types,omitempty"`
	Elements []*Element `yaml:"elements,omitempty"`
}

// Type is a simple type (Base plus Restriction) or a complex type
// (Attributes plus Elements). Inline types have no name.
type Type struct {
	Name        string                 `yaml:"name,omitempty"`
	Comment     string                 `yaml:"comment,omitempty"`
	Base        string                 `yaml:"base,omitempty"`
	Restriction *container.Restriction `yaml:"restriction,omitempty"`
	Attributes  []*Attribute           `yaml:"attributes,omitempty"`
	Elements    []*Element             `yaml:"elements,omitempty"`
}

// Kind reports simple for a type with a base and no members.
func (t *Type) Kind() Kind {
	switch {
	case t == nil:
		return KindInvalid
	case t.Base != "" && len(t.Attributes) == 0 && len(t.Elements) == 0:
		return KindSimple
	default:
		return KindComplex
	}
}

type Attribute struct {
	Name        string                 `yaml:"name"`
	Type        string                 `yaml:"type,omitempty"`
	Default     string                 `yaml:"default,omitempty"`
	Restriction *container.Restriction `yaml:"restriction,omitempty"`
	SimpleType  *Type                  `yaml:"simpleType,omitempty"`
}

// Element is a top-level or local element. A reference names a top-level
// element through Ref and carries only occurrence bounds.
type Element struct {
	Name        string                 `yaml:"name,omitempty"`
	Ref         string                 `yaml:"ref,omitempty"`
	Type        string                 `yaml:"type,omitempty"`
	Default     string                 `yaml:"default,omitempty"`
	MinOccurs   *int                   `yaml:"minOccurs,omitempty"`
	MaxOccurs   Occurs                 `yaml:"maxOccurs,omitempty"`
	Restriction *container.Restriction `yaml:"restriction,omitempty"`
	SimpleType  *Type                  `yaml:"simpleType,omitempty"`
	ComplexType *Type                  `yaml:"complexType,omitempty"`
}

func (e *Element) IsReference() bool { return e.Ref != "" }

// Repeated reports maxOccurs above one.
func (e *Element) Repeated() bool { return e.MaxOccurs > 1 }

// Size is the array size of a repeated element.
func (e *Element) Size() int { return int(e.MaxOccurs) }

// TypeByName returns the named type or nil.
func (s *Schema) TypeByName(name string) *Type {
	for _, t := range s.Types {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// ElementByName returns the named top-level element or nil.
func (s *Schema) ElementByName(name string) *Element {
	for _, e := range s.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}
