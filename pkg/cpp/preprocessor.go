package cpp

import (
	"strings"
)

// Directive is a preprocessor line. Directives always start at column zero
// regardless of the depth they are rendered at.
type Directive struct {
	decl
	text string
}

// NewDirective wraps raw directive text; a missing "#" is added.
func NewDirective(text string) *Directive {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	return &Directive{text: text}
}

// NewInclude returns #include <path> for system headers and #include "path"
// otherwise.
func NewInclude(path string, system bool) *Directive {
	if system {
		return NewDirective("#include <" + path + ">")
	}
	return NewDirective(`#include "` + path + `"`)
}

func NewDefine(name, value string) *Directive {
	if value == "" {
		return NewDirective("#define " + name)
	}
	return NewDirective("#define " + name + " " + value)
}

func NewPragma(text string) *Directive {
	return NewDirective("#pragma " + text)
}

func (d *Directive) Text() string { return d.text }

func (d *Directive) Render(sb *strings.Builder, _ int) {
	sb.WriteString(d.text)
}

func (d *Directive) String() string { return d.text }
