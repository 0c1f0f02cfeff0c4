package java

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Type is a class, interface or enum declaration. The set of implementations
// is closed to this package.
type Type interface {
	Name() string
	Modifiers() modifier.Modifier
	FullyQualifiedName() string
	// Parent returns the enclosing type, or nil for a top-level type.
	Parent() Type
	// File returns the source file the outermost enclosing type belongs to.
	File() *SourceFile
	// Imports returns every import required by annotations of the type and
	// its members, sorted.
	Imports() []string
	Render(sb *strings.Builder, depth int)
	String() string

	base() *typeDecl
	collectImports(set map[string]struct{})
}

// typeDecl is the ownership state shared by Class, Interface and Enum: at most
// one parent or one file, each assigned once.
type typeDecl struct {
	decl
	parent Type
	file   *SourceFile
}

func (t *typeDecl) base() *typeDecl { return t }

func (t *typeDecl) Parent() Type { return t.parent }

func (t *typeDecl) File() *SourceFile {
	if t.parent != nil {
		return t.parent.File()
	}
	return t.file
}

func (t *typeDecl) FullyQualifiedName() string {
	if t.parent != nil {
		return t.parent.FullyQualifiedName() + "." + t.name
	}
	if t.file != nil && t.file.pkg != "" {
		return t.file.pkg + "." + t.name
	}
	return t.name
}

func (t *typeDecl) setParent(p Type) error {
	if t.parent != nil {
		return errors.Duplicatef("%s is already nested in %s", t.name, t.parent.FullyQualifiedName())
	}
	if t.file != nil {
		return errors.Duplicatef("%s is already a top-level type of %s", t.name, t.file.FileName())
	}
	for anc := p; anc != nil; anc = anc.Parent() {
		if anc.base() == t {
			return errors.CodeValidationf("%s cannot be nested inside itself", t.name)
		}
	}
	t.parent = p
	return nil
}

func (t *typeDecl) setFile(f *SourceFile) error {
	if t.file != nil {
		return errors.Duplicatef("%s already belongs to %s", t.name, t.file.FileName())
	}
	if t.parent != nil {
		return errors.Duplicatef("%s is already nested in %s", t.name, t.parent.FullyQualifiedName())
	}
	t.file = f
	return nil
}

// nested holds member types of a class or interface.
type nested struct {
	enums      []*Enum
	interfaces []*Interface
	classes    []*Class
}

func (n *nested) nestedByName(name string) Type {
	for _, e := range n.enums {
		if e.name == name {
			return e
		}
	}
	for _, i := range n.interfaces {
		if i.name == name {
			return i
		}
	}
	for _, c := range n.classes {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *nested) adopt(owner, child Type) error {
	if n.nestedByName(child.Name()) != nil {
		return errors.Duplicatef("nested type %s already declared in %s", child.Name(), owner.FullyQualifiedName())
	}
	if err := child.base().setParent(owner); err != nil {
		return err
	}
	switch c := child.(type) {
	case *Enum:
		n.enums = append(n.enums, c)
	case *Interface:
		n.interfaces = append(n.interfaces, c)
	case *Class:
		n.classes = append(n.classes, c)
	}
	return nil
}

func (n *nested) NestedEnums() []*Enum           { return append([]*Enum(nil), n.enums...) }
func (n *nested) NestedInterfaces() []*Interface { return append([]*Interface(nil), n.interfaces...) }
func (n *nested) NestedClasses() []*Class        { return append([]*Class(nil), n.classes...) }

func (n *nested) NestedEnumByName(name string) *Enum {
	e, _ := n.nestedByName(name).(*Enum)
	return e
}

func (n *nested) NestedInterfaceByName(name string) *Interface {
	i, _ := n.nestedByName(name).(*Interface)
	return i
}

func (n *nested) NestedClassByName(name string) *Class {
	c, _ := n.nestedByName(name).(*Class)
	return c
}

func (n *nested) collectNestedImports(set map[string]struct{}) {
	for _, e := range n.enums {
		e.collectImports(set)
	}
	for _, i := range n.interfaces {
		i.collectImports(set)
	}
	for _, c := range n.classes {
		c.collectImports(set)
	}
}

func (n *nested) sections(depth int) []func(*strings.Builder) bool {
	return []func(*strings.Builder) bool{
		func(sb *strings.Builder) bool { return joinTypes(sb, n.enums, depth) },
		func(sb *strings.Builder) bool { return joinTypes(sb, n.interfaces, depth) },
		func(sb *strings.Builder) bool { return joinTypes(sb, n.classes, depth) },
	}
}

func joinTypes[T Type](sb *strings.Builder, types []T, depth int) bool {
	return render.Join(sb, types, depth)
}

// addUnique appends name to list unless present.
func addUnique(list []string, name, what, owner string) ([]string, error) {
	if name == "" {
		return list, errors.IllegalArgumentf("empty %s name for %s", what, owner)
	}
	for _, n := range list {
		if n == name {
			return list, errors.Duplicatef("%s %s already declared for %s", what, name, owner)
		}
	}
	return append(list, name), nil
}
