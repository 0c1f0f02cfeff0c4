package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Struct is a plain struct definition, optionally declaring an instance:
//
//	struct tag {
//	    int x;
//	} instance;
type Struct struct {
	decl
	instance string
	fields   []*Variable
}

// NewStruct creates a struct with the given tag. An empty tag declares an
// anonymous struct, which is only useful together with an instance name.
func NewStruct(tag string) *Struct {
	return &Struct{decl: decl{name: tag}}
}

func (s *Struct) Instance() string        { return s.instance }
func (s *Struct) Fields() []*Variable     { return append([]*Variable(nil), s.fields...) }
func (s *Struct) SetInstance(name string) { s.instance = name }

// AddField appends a field. Fields keep insertion order and are unique by
// name.
func (s *Struct) AddField(v *Variable) error {
	if v == nil {
		return errors.IllegalArgumentf("nil field for struct %s", s.name)
	}
	if s.FieldByName(v.name) != nil {
		return errors.Duplicatef("field %s already declared in struct %s", v.name, s.name)
	}
	s.fields = append(s.fields, v)
	return nil
}

func (s *Struct) FieldByName(name string) *Variable {
	for _, f := range s.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

func (s *Struct) Render(sb *strings.Builder, depth int) {
	s.writeComment(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString("struct ")
	if s.name != "" {
		sb.WriteString(s.name)
		sb.WriteByte(' ')
	}
	sb.WriteString("{\n")
	if render.Join(sb, s.fields, depth+1, render.WithSeparator("\n")) {
		sb.WriteByte('\n')
	}
	render.WriteIndent(sb, depth)
	sb.WriteByte('}')
	if s.instance != "" {
		sb.WriteByte(' ')
		sb.WriteString(s.instance)
	}
	sb.WriteByte(';')
}

func (s *Struct) String() string { return render.String(s) }
