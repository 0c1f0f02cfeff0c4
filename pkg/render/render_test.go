package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type line string

func (l line) Render(sb *strings.Builder, depth int) {
	WriteIndent(sb, depth)
	sb.WriteString(string(l))
}

func TestIndentBlock(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		depth int
		want  string
	}{
		{name: "empty", text: "", depth: 2, want: ""},
		{name: "single line", text: "return x;", depth: 1, want: "    return x;"},
		{name: "keeps trailing newline", text: "a;\nb;\n", depth: 1, want: "    a;\n    b;\n"},
		{name: "no trailing newline appended", text: "a;\nb;", depth: 2, want: "        a;\n        b;"},
		{name: "blank lines stay blank", text: "a;\n\nb;", depth: 1, want: "    a;\n\n    b;"},
		{name: "whitespace-only lines are emptied", text: "a;\n  \t\nb;\n", depth: 1, want: "    a;\n\n    b;\n"},
		{name: "depth zero", text: "a;\nb;", depth: 0, want: "a;\nb;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IndentBlock(tt.text, tt.depth))
		})
	}
}

func TestWriteBlockEndsWithNewline(t *testing.T) {
	var sb strings.Builder
	WriteBlock(&sb, "x = 1;", 1)
	require.Equal(t, "    x = 1;\n", sb.String())
}

func TestJoin(t *testing.T) {
	elems := []line{"a", "b", "c"}

	var sb strings.Builder
	require.True(t, Join(&sb, elems, 1))
	require.Equal(t, "    a\n\n    b\n\n    c", sb.String())

	sb.Reset()
	Join(&sb, elems, 0, WithTrailingSeparator())
	require.Equal(t, "a\n\nb\n\nc\n\n", sb.String())

	sb.Reset()
	Join(&sb, elems, 0, WithSeparator(", "))
	require.Equal(t, "a, b, c", sb.String())

	sb.Reset()
	require.False(t, Join(&sb, []line{}, 0))
	require.Empty(t, sb.String())
}

func TestSectionsSkipsEmpty(t *testing.T) {
	var sb strings.Builder
	Sections(&sb,
		func(b *strings.Builder) bool { return Join(b, []line{"x"}, 0) },
		func(b *strings.Builder) bool { return Join(b, []line{}, 0) },
		func(b *strings.Builder) bool { return Join(b, []line{"y", "z"}, 0) },
	)
	require.Equal(t, "x\n\ny\n\nz", sb.String())
}

func TestStringIsIdempotent(t *testing.T) {
	l := line("same")
	require.Equal(t, String(l), String(l))
}
