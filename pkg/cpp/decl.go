// Package cpp models C and C++ source constructs: structs, classes, enums,
// typedefs, free functions, namespaces, preprocessor directives and the header
// or implementation files that hold them.
//
// Nodes are built by a single caller and are not safe for concurrent
// mutation. Rendering does not mutate and may run concurrently once a tree is
// complete.
package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Decl is a declaration that may appear at file or namespace scope.
type Decl interface {
	Name() string
	Render(sb *strings.Builder, depth int)
	String() string

	base() *decl
}

// scope is a naming context: a namespace or a source file.
type scope interface {
	qualifiedName() string
}

// decl is the shared part of every C++ node: a name, an optional comment and
// the scope it was attached to.
type decl struct {
	name    string
	comment *render.Comment
	scope   scope
}

func (d *decl) base() *decl                  { return d }
func (d *decl) Name() string                 { return d.name }
func (d *decl) Comment() *render.Comment     { return d.comment }
func (d *decl) SetComment(c *render.Comment) { d.comment = c }

// FullyQualifiedName joins the enclosing namespaces and the name with "::".
func (d *decl) FullyQualifiedName() string {
	if d.scope != nil {
		if q := d.scope.qualifiedName(); q != "" {
			return q + "::" + d.name
		}
	}
	return d.name
}

func (d *decl) attach(s scope) error {
	if d.scope != nil {
		return errors.Duplicatef("%s is already declared in scope %q", d.name, d.scope.qualifiedName())
	}
	d.scope = s
	return nil
}

func (d *decl) writeComment(sb *strings.Builder, depth int) {
	if d.comment != nil {
		d.comment.Render(sb, depth)
		sb.WriteByte('\n')
	}
}

// members is an ordered list of declarations with C++ redeclaration rules:
// named declarations are unique by name, functions by name and parameter
// types.
type members struct {
	decls []Decl
}

func (m *members) add(s scope, owner string, d Decl) error {
	if d == nil {
		return errors.IllegalArgumentf("nil declaration for %s", owner)
	}
	if err := m.check(owner, d); err != nil {
		return err
	}
	if err := d.base().attach(s); err != nil {
		return err
	}
	m.decls = append(m.decls, d)
	return nil
}

func (m *members) check(owner string, d Decl) error {
	if d.Name() == "" {
		return nil
	}
	fn, isFunc := d.(*Function)
	for _, o := range m.decls {
		if o.Name() != d.Name() {
			continue
		}
		of, otherFunc := o.(*Function)
		switch {
		case isFunc && otherFunc:
			if fn.sig.Equal(of.sig) {
				return errors.Duplicatef("function %s%s already declared in %s", fn.name, fn.sig.Key(), owner)
			}
		case isFunc != otherFunc:
			continue
		default:
			return errors.Duplicatef("%s already declared in %s", d.Name(), owner)
		}
	}
	return nil
}

func (m *members) byName(name string) Decl {
	for _, d := range m.decls {
		if d.Name() == name {
			return d
		}
	}
	return nil
}

// validate checks mods against the Java-derived table of kind and then against
// the subset of flags C++ can express.
func validate(mods modifier.Modifier, kind modifier.Kind, expressible modifier.Modifier) error {
	if err := modifier.Validate(mods, kind); err != nil {
		return err
	}
	if bad := mods &^ expressible; bad != 0 {
		return &modifier.InvalidModifierError{Kind: kind, Modifiers: bad}
	}
	return nil
}
