package container

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/cmmoran/srcgen/pkg/errors"
)

// MemberOption configures a member added to a Builder.
type MemberOption func(*MemberVariable)

// WithValue sets the default value.
func WithValue(v string) MemberOption {
	return func(m *MemberVariable) { m.Value = v }
}

// WithRestriction attaches facet metadata.
func WithRestriction(r *Restriction) MemberOption {
	return func(m *MemberVariable) { m.Restriction = r.Clone() }
}

// Builder accumulates members keyed by name. Adding a name twice replaces the
// first member and keeps its position.
//
// The first usage error, such as a negative array size, sticks: Err reports
// it immediately, later calls are ignored and Build returns it.
type Builder struct {
	name    string
	members *orderedmap.OrderedMap[string, MemberVariable]
	err     error
}

func NewBuilder() *Builder {
	return &Builder{members: orderedmap.New[string, MemberVariable]()}
}

// Err returns the first usage error recorded by the builder.
func (b *Builder) Err() error { return b.err }

func (b *Builder) SetName(name string) *Builder {
	if b.err == nil {
		b.name = name
	}
	return b
}

func (b *Builder) AddAttribute(typ, name string, opts ...MemberOption) *Builder {
	return b.add(MemberVariable{Kind: Attribute, Type: typ, Name: name}, opts)
}

func (b *Builder) AddElement(typ, name string, opts ...MemberOption) *Builder {
	return b.add(MemberVariable{Kind: Element, Type: typ, Name: name}, opts)
}

// AddElementArray adds a repeated element of a fixed size. A negative size is
// a usage error.
func (b *Builder) AddElementArray(typ, name string, size int, opts ...MemberOption) *Builder {
	if b.err == nil && size < 0 {
		b.err = errors.IllegalArgumentf("negative size %d for element array %s", size, name)
		return b
	}
	return b.add(MemberVariable{Kind: ElementArray, Type: typ, Name: name, Size: size}, opts)
}

// AddUnboundedElementArray adds a repeated element without a size.
func (b *Builder) AddUnboundedElementArray(typ, name string, opts ...MemberOption) *Builder {
	return b.add(MemberVariable{Kind: ElementArray, Type: typ, Name: name, Size: Unbounded}, opts)
}

// AddMember adds a fully described member.
func (b *Builder) AddMember(m MemberVariable) *Builder {
	if b.err == nil && m.Kind == ElementArray && m.Size < 0 {
		b.err = errors.IllegalArgumentf("negative size %d for element array %s", m.Size, m.Name)
		return b
	}
	return b.add(m.clone(), nil)
}

func (b *Builder) add(m MemberVariable, opts []MemberOption) *Builder {
	if b.err != nil {
		return b
	}
	if m.Name == "" || m.Type == "" {
		b.err = errors.IllegalArgumentf("%s requires a type and a name (type=%q, name=%q)", m.Kind, m.Type, m.Name)
		return b
	}
	for _, fn := range opts {
		fn(&m)
	}
	b.members.Set(m.Name, m)
	return b
}

// DeleteMember removes name; a missing name is ignored.
func (b *Builder) DeleteMember(name string) *Builder {
	if b.err == nil {
		b.members.Delete(name)
	}
	return b
}

// MergeWith copies the name of c, when set, and every member of c into the
// builder. Members already present are replaced in place.
func (b *Builder) MergeWith(c *AttributeContainer) *Builder {
	if b.err != nil || c == nil {
		return b
	}
	if c.name != "" {
		b.name = c.name
	}
	copyMembers(b.members, c.members)
	return b
}

// Clone returns an independent builder with the same state.
func (b *Builder) Clone() *Builder {
	n := NewBuilder()
	n.name = b.name
	n.err = b.err
	copyMembers(n.members, b.members)
	return n
}

// Build returns an immutable snapshot of the builder.
func (b *Builder) Build() (*AttributeContainer, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := &AttributeContainer{name: b.name, members: orderedmap.New[string, MemberVariable]()}
	copyMembers(c.members, b.members)
	return c, nil
}

// Builder returns a builder seeded with the name and members of c.
func (c *AttributeContainer) Builder() *Builder {
	return NewBuilder().MergeWith(c)
}
