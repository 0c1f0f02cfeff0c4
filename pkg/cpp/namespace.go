package cpp

import (
	"strings"

	"github.com/cmmoran/srcgen/pkg/errors"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Namespace groups declarations under a name. Nested namespaces are
// qualified with "::".
type Namespace struct {
	decl
	members
}

func NewNamespace(name string) (*Namespace, error) {
	if name == "" {
		return nil, errors.IllegalArgumentf("namespace requires a name")
	}
	return &Namespace{decl: decl{name: name}}, nil
}

func (n *Namespace) qualifiedName() string { return n.FullyQualifiedName() }

// Add declares d inside the namespace. A declaration belongs to one scope.
func (n *Namespace) Add(d Decl) error {
	return n.add(n, n.FullyQualifiedName(), d)
}

func (n *Namespace) Decls() []Decl           { return append([]Decl(nil), n.decls...) }
func (n *Namespace) Lookup(name string) Decl { return n.byName(name) }

func (n *Namespace) Render(sb *strings.Builder, depth int) {
	n.writeComment(sb, depth)
	writeNamespace(sb, n.name, n.decls, depth)
}

func (n *Namespace) String() string { return render.String(n) }

func writeNamespace(sb *strings.Builder, name string, decls []Decl, depth int) {
	render.WriteIndent(sb, depth)
	sb.WriteString("namespace ")
	sb.WriteString(name)
	sb.WriteString(" {\n")
	if len(decls) > 0 {
		sb.WriteByte('\n')
		render.Join(sb, decls, depth+1)
		sb.WriteString("\n\n")
	}
	render.WriteIndent(sb, depth)
	sb.WriteString("} // namespace ")
	sb.WriteString(name)
}
