// Package render holds the rendering contract shared by every declaration node
// and the indentation helpers used to emit multi-line source text.
package render

import (
	"strings"
)

// Unit is one level of indentation.
const Unit = "    "

// Separator is written between sibling elements.
const Separator = "\n\n"

// Elem is anything that can write itself as source text at an indentation depth.
//
// Render must not mutate the receiver; rendering the same element twice yields
// identical text.
type Elem interface {
	Render(sb *strings.Builder, depth int)
}

// String renders e at depth 0.
func String(e Elem) string {
	var sb strings.Builder
	e.Render(&sb, 0)
	return sb.String()
}

// Indent returns the indentation prefix for depth.
func Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(Unit, depth)
}

// WriteIndent writes the indentation prefix for depth.
func WriteIndent(sb *strings.Builder, depth int) {
	sb.WriteString(Indent(depth))
}

// IndentBlock re-indents a multi-line blob of source code. Every line holding
// code is prefixed with depth units; blank and whitespace-only lines become
// empty. A trailing newline in text is kept; otherwise no
// newline is appended after the last line.
func IndentBlock(text string, depth int) string {
	if text == "" {
		return ""
	}
	trailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	prefix := Indent(depth)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = prefix + line
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// WriteBlock writes text re-indented at depth and guarantees the output ends
// with a newline, so a closing brace can follow directly.
func WriteBlock(sb *strings.Builder, text string, depth int) {
	if text == "" {
		return
	}
	block := IndentBlock(text, depth)
	sb.WriteString(block)
	if !strings.HasSuffix(block, "\n") {
		sb.WriteByte('\n')
	}
}

type joinOptions struct {
	separator string
	trailing  bool
}

// JoinOption configures Join.
type JoinOption func(*joinOptions)

// WithSeparator replaces the default two-newline separator.
func WithSeparator(sep string) JoinOption {
	return func(o *joinOptions) { o.separator = sep }
}

// WithTrailingSeparator emits the separator after the last element as well.
func WithTrailingSeparator() JoinOption {
	return func(o *joinOptions) { o.trailing = true }
}

// Join renders elems at depth separated by Separator. It reports whether
// anything was written.
func Join[E Elem](sb *strings.Builder, elems []E, depth int, opts ...JoinOption) bool {
	o := joinOptions{separator: Separator}
	for _, fn := range opts {
		fn(&o)
	}
	for i, e := range elems {
		e.Render(sb, depth)
		if i < len(elems)-1 || o.trailing {
			sb.WriteString(o.separator)
		}
	}
	return len(elems) > 0
}

// Sections writes each non-empty section in order, separated by Separator.
// A section is a function that renders a group of siblings and reports whether
// it wrote anything.
func Sections(sb *strings.Builder, sections ...func(*strings.Builder) bool) {
	first := true
	for _, section := range sections {
		var part strings.Builder
		if !section(&part) {
			continue
		}
		if !first {
			sb.WriteString(Separator)
		}
		sb.WriteString(part.String())
		first = false
	}
}
