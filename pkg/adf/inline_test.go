package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markTypes(n *Node) []string {
	var types []string
	for _, m := range n.Marks {
		types = append(types, m.Type)
	}
	return types
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		texts []string
		marks [][]string
	}{
		{
			name:  "plain text",
			input: "nothing special",
			texts: []string{"nothing special"},
			marks: [][]string{nil},
		},
		{
			name:  "code span",
			input: "Use `npm install` now",
			texts: []string{"Use ", "npm install", " now"},
			marks: [][]string{nil, {MarkCode}, nil},
		},
		{
			name:  "bold",
			input: "a **big** deal",
			texts: []string{"a ", "big", " deal"},
			marks: [][]string{nil, {MarkStrong}, nil},
		},
		{
			name:  "italic",
			input: "a *small* deal",
			texts: []string{"a ", "small", " deal"},
			marks: [][]string{nil, {MarkEm}, nil},
		},
		{
			name:  "bold then italic",
			input: "**x** and *y*",
			texts: []string{"x", " and ", "y"},
			marks: [][]string{{MarkStrong}, nil, {MarkEm}},
		},
		{
			name:  "code span wins over emphasis",
			input: "run `rm **all**` carefully",
			texts: []string{"run ", "rm **all**", " carefully"},
			marks: [][]string{nil, {MarkCode}, nil},
		},
		{
			name:  "leading code span",
			input: "`go test` runs tests",
			texts: []string{"go test", " runs tests"},
			marks: [][]string{{MarkCode}, nil},
		},
		{
			name:  "adjacent code spans",
			input: "`a``b`",
			texts: []string{"a", "b"},
			marks: [][]string{{MarkCode}, {MarkCode}},
		},
		{
			name:  "unmatched backtick stays literal",
			input: "odd ` tick",
			texts: []string{"odd ` tick"},
			marks: [][]string{nil},
		},
		{
			name:  "unmatched asterisk stays literal",
			input: "2 * 3 = 6",
			texts: []string{"2 * 3 = 6"},
			marks: [][]string{nil},
		},
		{
			name:  "empty emphasis stays literal",
			input: "a ** b",
			texts: []string{"a ** b"},
			marks: [][]string{nil},
		},
		{
			name:  "no nesting inside bold",
			input: "**has *inner* stars**",
			texts: []string{"has *inner* stars"},
			marks: [][]string{{MarkStrong}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nodes := parseInline(tc.input)
			require.Len(t, nodes, len(tc.texts))
			for i, node := range nodes {
				assert.Equal(t, NodeText, node.Type)
				assert.Equal(t, tc.texts[i], node.Text)
				assert.Equal(t, tc.marks[i], markTypes(node))
			}
		})
	}
}
