package render

import (
	"strings"
)

// CommentStyle selects how a Comment is delimited.
type CommentStyle int

const (
	LineComment CommentStyle = iota
	BlockComment
	DocComment
)

// Comment is a C-family source comment attached to a declaration or a file.
type Comment struct {
	style CommentStyle
	text  string
}

func NewComment(style CommentStyle, text string) *Comment {
	return &Comment{style: style, text: text}
}

// NewDoc returns a /** */ comment.
func NewDoc(text string) *Comment {
	return NewComment(DocComment, text)
}

func (c *Comment) Style() CommentStyle { return c.style }
func (c *Comment) Text() string        { return c.text }

func (c *Comment) Render(sb *strings.Builder, depth int) {
	lines := strings.Split(strings.TrimRight(c.text, "\n"), "\n")
	indent := Indent(depth)
	switch c.style {
	case LineComment:
		for i, l := range lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(strings.TrimRight(indent+"// "+l, " "))
		}
	case BlockComment, DocComment:
		open := "/*"
		if c.style == DocComment {
			open = "/**"
		}
		if c.style == BlockComment && len(lines) == 1 {
			sb.WriteString(indent + "/* " + lines[0] + " */")
			return
		}
		sb.WriteString(indent + open + "\n")
		for _, l := range lines {
			sb.WriteString(strings.TrimRight(indent+" * "+l, " ") + "\n")
		}
		sb.WriteString(indent + " */")
	}
}

func (c *Comment) String() string { return String(c) }
