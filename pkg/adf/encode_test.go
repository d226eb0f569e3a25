package adf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTextEmptyInput(t *testing.T) {
	doc := FromText("")

	require.NotNil(t, doc)
	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, NodeDoc, doc.Type)
	assert.Empty(t, doc.Content)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"type":"doc","content":[]}`, string(data))
}

func TestFromTextBlankOnlyInput(t *testing.T) {
	// Whitespace-only input is not empty input: it yields a single
	// empty paragraph instead of an empty content sequence.
	for _, input := range []string{"\n", "\n\n", "   ", " \n \n "} {
		doc := FromText(input)
		require.Len(t, doc.Content, 1, "input %q", input)
		assert.Equal(t, NodeParagraph, doc.Content[0].Type)
		assert.Empty(t, doc.Content[0].Content)
	}
}

func TestFromTextSingleParagraph(t *testing.T) {
	doc := FromText("Hello World")

	require.Len(t, doc.Content, 1)
	para := doc.Content[0]
	assert.Equal(t, NodeParagraph, para.Type)
	require.Len(t, para.Content, 1)
	assert.Equal(t, NodeText, para.Content[0].Type)
	assert.Equal(t, "Hello World", para.Content[0].Text)
	assert.Empty(t, para.Content[0].Marks)
}

func TestFromTextBlankLineSplitsParagraphs(t *testing.T) {
	doc := FromText("Line 1\n\nLine 2")

	require.Len(t, doc.Content, 2)
	for i, want := range []string{"Line 1", "Line 2"} {
		para := doc.Content[i]
		assert.Equal(t, NodeParagraph, para.Type)
		require.Len(t, para.Content, 1)
		assert.Equal(t, want, para.Content[0].Text)
	}
}

func TestFromTextConsecutiveLinesJoinParagraph(t *testing.T) {
	doc := FromText("first\nsecond")

	require.Len(t, doc.Content, 1)
	para := doc.Content[0]
	require.Len(t, para.Content, 3)
	assert.Equal(t, "first", para.Content[0].Text)
	assert.Equal(t, "\n", para.Content[1].Text)
	assert.Equal(t, "second", para.Content[2].Text)
}

func TestFromTextHeadings(t *testing.T) {
	doc := FromText("# Title\nBody")

	require.Len(t, doc.Content, 2)

	heading := doc.Content[0]
	assert.Equal(t, NodeHeading, heading.Type)
	assert.Equal(t, 1, heading.Attrs["level"])
	require.Len(t, heading.Content, 1)
	assert.Equal(t, "Title", heading.Content[0].Text)

	para := doc.Content[1]
	assert.Equal(t, NodeParagraph, para.Type)
	require.Len(t, para.Content, 1)
	assert.Equal(t, "Body", para.Content[0].Text)
}

func TestFromTextHeadingLevels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		level int
		text  string
	}{
		{name: "level three", input: "### Deep", level: 3, text: "Deep"},
		{name: "level six", input: "###### Deepest", level: 6, text: "Deepest"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := FromText(tc.input)
			require.Len(t, doc.Content, 1)
			assert.Equal(t, NodeHeading, doc.Content[0].Type)
			assert.Equal(t, tc.level, doc.Content[0].Attrs["level"])
			assert.Equal(t, tc.text, doc.Content[0].Content[0].Text)
		})
	}
}

func TestFromTextHeadingRequiresSpaceAndText(t *testing.T) {
	// Seven hashes, no space, or no text: all plain paragraphs.
	for _, input := range []string{"####### nope", "#nope", "# "} {
		doc := FromText(input)
		require.Len(t, doc.Content, 1, "input %q", input)
		assert.Equal(t, NodeParagraph, doc.Content[0].Type, "input %q", input)
	}
}

func TestFromTextBulletLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  string
		text  string
	}{
		{name: "dash bullet", input: "- first thing", kind: NodeBulletList, text: "first thing"},
		{name: "star bullet", input: "* starred", kind: NodeBulletList, text: "starred"},
		{name: "ordered", input: "1. step one", kind: NodeOrderedList, text: "step one"},
		{name: "ordered two digit", input: "12. step twelve", kind: NodeOrderedList, text: "step twelve"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := FromText(tc.input)
			require.Len(t, doc.Content, 1)

			list := doc.Content[0]
			assert.Equal(t, tc.kind, list.Type)
			require.Len(t, list.Content, 1)

			item := list.Content[0]
			assert.Equal(t, NodeListItem, item.Type)
			require.Len(t, item.Content, 1)

			para := item.Content[0]
			assert.Equal(t, NodeParagraph, para.Type)
			require.Len(t, para.Content, 1)
			assert.Equal(t, tc.text, para.Content[0].Text)
		})
	}
}

func TestFromTextEachListLineBecomesOwnList(t *testing.T) {
	// Consecutive list lines are deliberately not grouped into one
	// multi-item list.
	doc := FromText("- a\n- b")

	require.Len(t, doc.Content, 2)
	for _, list := range doc.Content {
		assert.Equal(t, NodeBulletList, list.Type)
		assert.Len(t, list.Content, 1)
	}
}

func TestFromTextStarWithoutSpaceIsNotBullet(t *testing.T) {
	doc := FromText("*emphasis* only")

	require.Len(t, doc.Content, 1)
	para := doc.Content[0]
	assert.Equal(t, NodeParagraph, para.Type)
	require.NotEmpty(t, para.Content)
	require.Len(t, para.Content[0].Marks, 1)
	assert.Equal(t, MarkEm, para.Content[0].Marks[0].Type)
}

func TestFromTextCodeBlock(t *testing.T) {
	doc := FromText("```\ncode line\n```")

	require.Len(t, doc.Content, 1)
	block := doc.Content[0]
	assert.Equal(t, NodeCodeBlock, block.Type)
	assert.Equal(t, "plain", block.Attrs["language"])
	require.Len(t, block.Content, 1)
	assert.Equal(t, "code line", block.Content[0].Text)
}

func TestFromTextCodeBlockLanguageTag(t *testing.T) {
	doc := FromText("```go\nfmt.Println()\n```")

	require.Len(t, doc.Content, 1)
	assert.Equal(t, "go", doc.Content[0].Attrs["language"])
}

func TestFromTextFenceCapturesVerbatim(t *testing.T) {
	// No heading, list, or inline mark detection inside a fence.
	doc := FromText("```\n# not a heading\n- not a list\n*raw*\n```")

	require.Len(t, doc.Content, 1)
	block := doc.Content[0]
	require.Len(t, block.Content, 1)
	assert.Equal(t, "# not a heading\n- not a list\n*raw*", block.Content[0].Text)
	assert.Empty(t, block.Content[0].Marks)
}

func TestFromTextEmptyFence(t *testing.T) {
	doc := FromText("```\n```")

	require.Len(t, doc.Content, 1)
	block := doc.Content[0]
	assert.Equal(t, NodeCodeBlock, block.Type)
	assert.Empty(t, block.Content)
}

func TestFromTextUnterminatedFence(t *testing.T) {
	doc := FromText("```sh\necho hi")

	require.Len(t, doc.Content, 1)
	block := doc.Content[0]
	assert.Equal(t, NodeCodeBlock, block.Type)
	assert.Equal(t, "sh", block.Attrs["language"])
	require.Len(t, block.Content, 1)
	assert.Equal(t, "echo hi", block.Content[0].Text)
}

func TestFromTextFenceClosesOpenParagraph(t *testing.T) {
	doc := FromText("intro\n```\nx\n```")

	require.Len(t, doc.Content, 2)

	para := doc.Content[0]
	assert.Equal(t, NodeParagraph, para.Type)
	// The synthetic break separating "intro" from the next line must
	// not trail once the fence closes the paragraph.
	require.Len(t, para.Content, 1)
	assert.Equal(t, "intro", para.Content[0].Text)

	assert.Equal(t, NodeCodeBlock, doc.Content[1].Type)
}

func TestFromTextTrailingNewlineDoesNotDangle(t *testing.T) {
	doc := FromText("only line\n")

	require.Len(t, doc.Content, 1)
	para := doc.Content[0]
	require.Len(t, para.Content, 1)
	assert.Equal(t, "only line", para.Content[0].Text)
}

func TestFromTextMixedBlocks(t *testing.T) {
	doc := FromText("# Release\nShip it\n\n- task\n1. verify\n```diff\n+added\n```")

	require.Len(t, doc.Content, 5)
	assert.Equal(t, NodeHeading, doc.Content[0].Type)
	assert.Equal(t, NodeParagraph, doc.Content[1].Type)
	assert.Equal(t, NodeBulletList, doc.Content[2].Type)
	assert.Equal(t, NodeOrderedList, doc.Content[3].Type)
	assert.Equal(t, NodeCodeBlock, doc.Content[4].Type)
}
