// Package signature models method parameters and ordered parameter lists.
//
// Two signatures are equal when their parameter types match pairwise in
// order; parameter names never take part in that comparison. Inside a single
// signature, parameters are unique by name.
package signature

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
)

// Parameter is a typed, named method parameter.
type Parameter struct {
	modifiers modifier.Modifier
	typ       string
	name      string
}

// NewParameter validates mods against the parameter rules (final only).
func NewParameter(mods modifier.Modifier, typ, name string) (*Parameter, error) {
	if err := modifier.Validate(mods, modifier.KindParameter); err != nil {
		return nil, errors.Wrapf(err, "parameter %s", name)
	}
	if typ == "" || name == "" {
		return nil, errors.IllegalArgumentf("parameter requires a type and a name (type=%q, name=%q)", typ, name)
	}
	return &Parameter{modifiers: mods, typ: typ, name: name}, nil
}

func (p *Parameter) Modifiers() modifier.Modifier { return p.modifiers }
func (p *Parameter) Type() string                 { return p.typ }
func (p *Parameter) Name() string                 { return p.name }

// String renders the parameter as "[final ]Type name".
func (p *Parameter) String() string {
	return p.modifiers.Prefix() + p.typ + " " + p.name
}

// Signature is an ordered list of parameters.
type Signature struct {
	params []*Parameter
}

// New builds a signature from params, rejecting duplicate parameter names.
func New(params ...*Parameter) (*Signature, error) {
	s := &Signature{}
	for _, p := range params {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends p. A parameter whose name is already present is a duplicate.
func (s *Signature) Add(p *Parameter) error {
	if p == nil {
		return errors.IllegalArgumentf("nil parameter")
	}
	if s.Contains(p.name) {
		return errors.Duplicatef("duplicate parameter %q", p.name)
	}
	s.params = append(s.params, p)
	return nil
}

// Contains reports whether a parameter named name is present.
func (s *Signature) Contains(name string) bool {
	return s.Parameter(name) != nil
}

// Parameter returns the parameter named name, or nil.
func (s *Signature) Parameter(name string) *Parameter {
	if s == nil {
		return nil
	}
	for _, p := range s.params {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Parameters returns a copy of the ordered parameter list.
func (s *Signature) Parameters() []*Parameter {
	if s == nil {
		return nil
	}
	return append([]*Parameter(nil), s.params...)
}

func (s *Signature) Len() int {
	if s == nil {
		return 0
	}
	return len(s.params)
}

// Types returns the ordered parameter types.
func (s *Signature) Types() []string {
	out := make([]string, 0, s.Len())
	for _, p := range s.Parameters() {
		out = append(out, p.typ)
	}
	return out
}

// Equal compares parameter types pairwise in order.
func (s *Signature) Equal(o *Signature) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.params[i].typ != o.params[i].typ {
			return false
		}
	}
	return true
}

// String renders "Type a, final Type b".
func (s *Signature) String() string {
	parts := make([]string, 0, s.Len())
	for _, p := range s.Parameters() {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

// Key renders the signature for error messages: "(Type, Type)".
func (s *Signature) Key() string {
	return "(" + strings.Join(s.Types(), ", ") + ")"
}
