// Package container describes the members of a future class independently of
// the target language.
//
// A Builder accumulates members by name and produces an immutable
// AttributeContainer. Re-adding a name on a Builder replaces the member in
// place without error; strict duplicate checks happen later, on the
// declaration nodes a strategy produces.
package container

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Unbounded is the size of an element array with no upper bound.
const Unbounded = math.MaxInt

// Kind selects how a member is bound.
type Kind int

const (
	Attribute Kind = iota
	Element
	ElementArray
)

func (k Kind) String() string {
	switch k {
	case Attribute:
		return "attribute"
	case Element:
		return "element"
	case ElementArray:
		return "elementArray"
	}
	return "unknown"
}

// MemberVariable is one member of a container.
type MemberVariable struct {
	Kind Kind
	Type string
	Name string
	// Value is the default value in source form, without quoting.
	Value string
	// Size is the array length of an ElementArray, or Unbounded.
	Size        int
	Restriction *Restriction
}

// Bounded reports whether an element array has a fixed length.
func (m MemberVariable) Bounded() bool {
	return m.Kind == ElementArray && m.Size != Unbounded
}

func (m MemberVariable) clone() MemberVariable {
	m.Restriction = m.Restriction.Clone()
	return m
}

// AttributeContainer is the immutable result of Builder.Build.
type AttributeContainer struct {
	name    string
	members *orderedmap.OrderedMap[string, MemberVariable]
}

func (c *AttributeContainer) Name() string { return c.name }
func (c *AttributeContainer) Len() int     { return c.members.Len() }

// Member returns a copy of the member named name.
func (c *AttributeContainer) Member(name string) (MemberVariable, bool) {
	m, ok := c.members.Get(name)
	if !ok {
		return MemberVariable{}, false
	}
	return m.clone(), true
}

// Members returns copies of all members in insertion order.
func (c *AttributeContainer) Members() []MemberVariable {
	out := make([]MemberVariable, 0, c.members.Len())
	for pair := c.members.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.clone())
	}
	return out
}

func copyMembers(dst, src *orderedmap.OrderedMap[string, MemberVariable]) {
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value.clone())
	}
}
