package model

import (
	"github.com/cmmoran/srcgen/pkg/container"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// Resolve follows typ through named simple types down to a type that is not
// a simple type of s: a builtin or a complex type. The facets met on the way
// are overlaid, the most derived winning.
func (s *Schema) Resolve(typ string) (string, *container.Restriction, error) {
	var chain []*container.Restriction
	seen := map[string]bool{}
	for {
		t := s.TypeByName(typ)
		if t.Kind() != KindSimple {
			break
		}
		if seen[typ] {
			return "", nil, errors.CodeValidationf("simple type %s derives from itself", typ)
		}
		seen[typ] = true
		chain = append(chain, t.Restriction)
		typ = t.Base
	}
	var r *container.Restriction
	for i := len(chain) - 1; i >= 0; i-- {
		r = chain[i].Overlay(r)
	}
	return typ, r, nil
}

// ResolveInline is Resolve for an anonymous simple type.
func (s *Schema) ResolveInline(t *Type) (string, *container.Restriction, error) {
	typ, r, err := s.Resolve(t.Base)
	if err != nil {
		return "", nil, err
	}
	return typ, t.Restriction.Overlay(r), nil
}

// Validate checks names and references: every type and top-level element is
// named and unique, every reference names a top-level element and every
// local element has exactly one of a type, an inline type or a reference.
func (s *Schema) Validate() error {
	types := map[string]bool{}
	for _, t := range s.Types {
		if t.Name == "" {
			return errors.IllegalArgumentf("schema %s: top-level type without a name", s.Name)
		}
		if types[t.Name] {
			return errors.Duplicatef("schema %s: type %s declared twice", s.Name, t.Name)
		}
		types[t.Name] = true
		if t.Kind() == KindSimple {
			if _, _, err := s.Resolve(t.Name); err != nil {
				return err
			}
			continue
		}
		if err := s.validateMembers(t, t.Name); err != nil {
			return err
		}
	}
	elements := map[string]bool{}
	for _, e := range s.Elements {
		if e.Name == "" || e.IsReference() {
			return errors.IllegalArgumentf("schema %s: top-level element must be named and cannot be a reference", s.Name)
		}
		if elements[e.Name] {
			return errors.Duplicatef("schema %s: element %s declared twice", s.Name, e.Name)
		}
		elements[e.Name] = true
		if err := s.validateElement(e, e.Name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validateMembers(t *Type, path string) error {
	names := map[string]bool{}
	for _, a := range t.Attributes {
		if a.Name == "" {
			return errors.IllegalArgumentf("%s: attribute without a name", path)
		}
		if names[a.Name] {
			return errors.Duplicatef("%s: member %s declared twice", path, a.Name)
		}
		names[a.Name] = true
		if a.SimpleType != nil && a.SimpleType.Kind() != KindSimple {
			return errors.CodeValidationf("%s/@%s: attribute types must be simple", path, a.Name)
		}
	}
	for _, e := range t.Elements {
		name := e.Name
		if e.IsReference() {
			if s.ElementByName(e.Ref) == nil {
				return errors.NotFoundf("%s: reference to unknown element %s", path, e.Ref)
			}
			name = e.Ref
		}
		if names[name] {
			return errors.Duplicatef("%s: member %s declared twice", path, name)
		}
		names[name] = true
		if e.IsReference() {
			continue
		}
		if err := s.validateElement(e, path+"/"+name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) validateElement(e *Element, path string) error {
	if e.Name == "" {
		return errors.IllegalArgumentf("%s: element without a name", path)
	}
	n := 0
	for _, set := range []bool{e.Type != "", e.SimpleType != nil, e.ComplexType != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return errors.CodeValidationf("%s: element needs exactly one of type, simpleType or complexType", path)
	}
	if e.SimpleType != nil && e.SimpleType.Kind() != KindSimple {
		return errors.CodeValidationf("%s: simpleType requires a base and no members", path)
	}
	if e.ComplexType != nil {
		return s.validateMembers(e.ComplexType, path)
	}
	return nil
}
