package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Typedef introduces alias as another name for typ.
type Typedef struct {
	decl
	typ string
}

func NewTypedef(typ, alias string) (*Typedef, error) {
	if typ == "" || alias == "" {
		return nil, errors.IllegalArgumentf("typedef requires a type and an alias (type=%q, alias=%q)", typ, alias)
	}
	return &Typedef{decl: decl{name: alias}, typ: typ}, nil
}

func (t *Typedef) Type() string { return t.typ }

func (t *Typedef) Render(sb *strings.Builder, depth int) {
	t.writeComment(sb, depth)
	render.WriteIndent(sb, depth)
	sb.WriteString("typedef ")
	sb.WriteString(t.typ)
	sb.WriteByte(' ')
	sb.WriteString(t.name)
	sb.WriteByte(';')
}

func (t *Typedef) String() string { return render.String(t) }
