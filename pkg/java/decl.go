package java

import (
	"sort"
	"strings"

	"github.com/cmmoran/srcgen/pkg/modifier"
	"github.com/cmmoran/srcgen/pkg/render"
)

// Annotation is an annotation usage such as @Element(name = "x") together
// with the import its type needs.
type Annotation struct {
	text string
	imp  string
}

// NewAnnotation builds an annotation; "@" is prepended when missing and imp
// may be empty.
func NewAnnotation(text, imp string) *Annotation {
	if !strings.HasPrefix(text, "@") {
		text = "@" + text
	}
	return &Annotation{text: text, imp: imp}
}

func (a *Annotation) Text() string   { return a.text }
func (a *Annotation) Import() string { return a.imp }

func (a *Annotation) Render(sb *strings.Builder, depth int) {
	render.WriteIndent(sb, depth)
	sb.WriteString(a.text)
}

// decl carries what every declaration has: a name, modifiers, an optional
// comment and annotations.
type decl struct {
	name        string
	modifiers   modifier.Modifier
	comment     *render.Comment
	annotations []*Annotation
}

func (d *decl) Name() string                   { return d.name }
func (d *decl) Modifiers() modifier.Modifier   { return d.modifiers }
func (d *decl) Comment() *render.Comment       { return d.comment }
func (d *decl) SetComment(c *render.Comment)   { d.comment = c }
func (d *decl) Annotations() []*Annotation     { return append([]*Annotation(nil), d.annotations...) }
func (d *decl) AddAnnotation(a ...*Annotation) { d.annotations = append(d.annotations, a...) }

// writeHeader writes the comment and the annotations, each on its own line.
func (d *decl) writeHeader(sb *strings.Builder, depth int) {
	if d.comment != nil {
		d.comment.Render(sb, depth)
		sb.WriteByte('\n')
	}
	for _, a := range d.annotations {
		a.Render(sb, depth)
		sb.WriteByte('\n')
	}
}

func (d *decl) collectImports(set map[string]struct{}) {
	for _, a := range d.annotations {
		if a.imp != "" {
			set[a.imp] = struct{}{}
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
